package backend

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/jlsnow301/payroll-app/internal/common"
	"github.com/jlsnow301/payroll-app/internal/export"
	"github.com/jlsnow301/payroll-app/internal/ingest"
	"github.com/jlsnow301/payroll-app/internal/match"
	"github.com/jlsnow301/payroll-app/internal/model"
	"github.com/jlsnow301/payroll-app/internal/stats"
)

// Service is the in-process Commander. The parsed inputs are the only
// state it holds; everything else is computed per command.
type Service struct {
	outputPath string
	orders     []model.Order
	activities []model.TimeActivity
	mu         sync.Mutex
}

// NewService creates a backend writing its reports to outputPath.
func NewService(outputPath string) *Service {
	return &Service{outputPath: outputPath}
}

var _ Commander = (*Service)(nil)

// Headers implements Commander.
func (s *Service) Headers(_ context.Context) model.ExpectedHeaders {
	return ingest.ExpectedHeaders()
}

// CatereaseInput implements Commander.
func (s *Service) CatereaseInput(_ context.Context, path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", common.ErrFileNotFound
	}

	orders, err := ingest.ReadOrders(path)
	if err != nil {
		common.LogError(err, "Failed to read order export", common.Fields{"file": filepath.Base(path)})
		return "", common.NewUserError("Couldn't read the orders export", err)
	}

	if err := ingest.ValidateOrders(orders); err != nil {
		return "", err
	}

	s.mu.Lock()
	s.orders = orders
	s.mu.Unlock()

	common.LogInfo("Linked order export", common.Fields{
		"file":   filepath.Base(path),
		"orders": len(orders),
	})

	return fileLabel(path), nil
}

// IntuitInput implements Commander.
func (s *Service) IntuitInput(_ context.Context, path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", common.ErrFileNotFound
	}

	activities, err := ingest.ReadTimeActivities(path)
	if err != nil {
		common.LogError(err, "Failed to read timesheet export", common.Fields{"file": filepath.Base(path)})
		return "", common.NewUserError("Couldn't read the timesheet export", err)
	}

	if err := ingest.ValidateTimeActivities(activities); err != nil {
		return "", err
	}

	s.mu.Lock()
	s.activities = activities
	s.mu.Unlock()

	common.LogInfo("Linked timesheet export", common.Fields{
		"file":   filepath.Base(path),
		"shifts": len(activities),
	})

	return fileLabel(path), nil
}

// Submit implements Commander.
func (s *Service) Submit(ctx context.Context, precision int) (model.ProcessResult, error) {
	reference, expanded, err := s.crossReference(ctx, precision)
	if err != nil {
		return model.ProcessResult{}, err
	}

	if err := export.WriteWorkbook(s.outputPath, reference.Rows); err != nil {
		return model.ProcessResult{}, err
	}

	result := model.ProcessResult{
		DriverStats: stats.Compute(reference.Rows),
		Expanded:    expanded,
		Matched:     reference.Matched,
		Skipped:     reference.Skipped,
		Total:       len(reference.Rows),
	}

	slog.Info("Processed batch",
		"total", result.Total,
		"matched", result.Matched,
		"skipped", result.Skipped,
		"output", s.outputPath)

	return result, nil
}

// ManualReview implements Commander.
func (s *Service) ManualReview(ctx context.Context, precision int) (model.ReferenceResult, error) {
	reference, _, err := s.crossReference(ctx, precision)
	return reference, err
}

// ManualInput implements Commander.
func (s *Service) ManualInput(_ context.Context, rows []model.ReviewRow) (string, error) {
	prepared := make([]model.PreparedRow, len(rows))
	for i, row := range rows {
		prepared[i] = row.PreparedRow
	}

	if err := export.WriteWorkbook(s.outputPath, prepared); err != nil {
		return "", err
	}

	slog.Info("Committed reviewed batch", "rows", len(rows), "output", s.outputPath)

	return fmt.Sprintf("Wrote %d rows to %s", len(rows), s.outputPath), nil
}

// Reset discards the linked inputs.
func (s *Service) Reset() {
	s.mu.Lock()
	s.orders = nil
	s.activities = nil
	s.mu.Unlock()
}

// crossReference snapshots the linked inputs and runs expansion plus
// matching at the given precision. The timesheet copy keeps match
// consumption from leaking between commands.
func (s *Service) crossReference(ctx context.Context, precision int) (model.ReferenceResult, int, error) {
	if err := ctx.Err(); err != nil {
		return model.ReferenceResult{}, 0, err
	}

	if precision < 1 || precision > 5 {
		return model.ReferenceResult{}, 0, common.ErrInvalidPrecision
	}

	s.mu.Lock()
	orders := s.orders
	activities := make([]model.TimeActivity, len(s.activities))
	copy(activities, s.activities)
	s.mu.Unlock()

	if len(orders) == 0 || len(activities) == 0 {
		return model.ReferenceResult{}, 0, common.ErrNotLinked
	}

	expanded := match.Expand(orders)
	reference := match.CrossReference(expanded, activities, precision)

	return reference, len(expanded) - len(orders), nil
}

// fileLabel derives the display label from an uploaded file's name.
func fileLabel(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}
