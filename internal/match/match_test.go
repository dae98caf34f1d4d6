package match

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jlsnow301/payroll-app/internal/model"
)

func timedOrder(employee string, at time.Time) model.Order {
	return model.Order{Employee: employee, DateTime: at, Ready: 0.5}
}

func shift(first, last string, in time.Time, hours, miles float64) model.TimeActivity {
	return model.TimeActivity{
		FirstName: first,
		LastName:  last,
		InTime:    in,
		OutTime:   in.Add(time.Duration(hours * float64(time.Hour))),
		Hours:     hours,
		Miles:     miles,
	}
}

var noon = time.Date(2025, time.March, 14, 12, 0, 0, 0, time.UTC)

func TestCrossReference_MatchWithinPrecision(t *testing.T) {
	orders := []model.Order{timedOrder("Alice Smith", noon)}
	activities := []model.TimeActivity{shift("Alice", "Smith", noon.Add(20*time.Minute), 4, 12.5)}

	result := CrossReference(orders, activities, 1)

	assert.Equal(t, 1, result.Matched)
	assert.Equal(t, 0, result.Skipped)
	require.Len(t, result.Rows, 1)

	row := result.Rows[0]
	require.NotNil(t, row.SuggestedIn)
	assert.True(t, row.SuggestedIn.Equal(noon.Add(20*time.Minute)))
	require.NotNil(t, row.SuggestedOut)
	assert.InDelta(t, 4.0, row.Hours, 0.001)
	assert.InDelta(t, 12.5, row.Miles, 0.001)
}

func TestCrossReference_OutsidePrecision(t *testing.T) {
	orders := []model.Order{timedOrder("Alice Smith", noon)}
	activities := []model.TimeActivity{shift("Alice", "Smith", noon.Add(3*time.Hour), 4, 0)}

	result := CrossReference(orders, activities, 2)

	assert.Equal(t, 0, result.Matched)
	require.Len(t, result.Rows, 1)
	assert.Nil(t, result.Rows[0].SuggestedIn)
	assert.Zero(t, result.Rows[0].Hours)
}

func TestCrossReference_PrecisionBoundaryInclusive(t *testing.T) {
	orders := []model.Order{timedOrder("Alice Smith", noon)}
	activities := []model.TimeActivity{shift("Alice", "Smith", noon.Add(2*time.Hour), 4, 0)}

	result := CrossReference(orders, activities, 2)
	assert.Equal(t, 1, result.Matched)
}

func TestCrossReference_ShiftConsumedOnce(t *testing.T) {
	orders := []model.Order{
		timedOrder("Alice Smith", noon),
		timedOrder("Alice Smith", noon.Add(30*time.Minute)),
	}
	activities := []model.TimeActivity{shift("Alice", "Smith", noon, 4, 0)}

	result := CrossReference(orders, activities, 2)

	assert.Equal(t, 1, result.Matched)
	require.Len(t, result.Rows, 2)
	assert.NotNil(t, result.Rows[0].SuggestedIn)
	assert.Nil(t, result.Rows[1].SuggestedIn, "a shift never pays out twice")
}

func TestCrossReference_SkipsInvalidAssignees(t *testing.T) {
	orders := []model.Order{
		timedOrder("Patio Party", noon),
		timedOrder("Pickup", noon),
		timedOrder("", noon),
	}

	result := CrossReference(orders, nil, 2)

	assert.Equal(t, 3, result.Skipped)
	assert.Equal(t, 0, result.Matched)
	assert.Len(t, result.Rows, 3, "skipped orders stay in the output")
}

func TestCrossReference_ExpandedMatchesOnFirstName(t *testing.T) {
	orders := Expand([]model.Order{timedOrder("Alice Smith, Bob Jones", noon)})
	require.Len(t, orders, 2)

	activities := []model.TimeActivity{
		shift("Bob", "Jones", noon, 4, 0),
		shift("Alice", "Smith", noon, 5, 0),
	}

	result := CrossReference(orders, activities, 2)

	assert.Equal(t, 2, result.Matched)
	// Expanded rows carry bare first names; each matched its own shift.
	assert.InDelta(t, 4.0, result.Rows[0].Hours, 0.001)
	assert.InDelta(t, 5.0, result.Rows[1].Hours, 0.001)
}

func TestCrossReference_PlainMatchesOnLastName(t *testing.T) {
	orders := []model.Order{timedOrder("Alice Smith", noon)}
	activities := []model.TimeActivity{
		shift("Wrong", "Person", noon, 1, 0),
		shift("Alice", "Smith", noon, 4, 0),
	}

	result := CrossReference(orders, activities, 2)

	assert.Equal(t, 1, result.Matched)
	assert.InDelta(t, 4.0, result.Rows[0].Hours, 0.001)
}
