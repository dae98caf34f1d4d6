// Package intake tracks the upload lifecycle of one required input file.
package intake

import (
	"strings"

	"github.com/jlsnow301/payroll-app/internal/async"
)

// SpreadsheetExt is the only file extension the intakes accept.
const SpreadsheetExt = ".xlsx"

// Machine is the state machine for a single required input. It moves
// Idle -> Pending -> Succeeded/Failed; a resolved machine accepts a new
// attempt or an explicit reset. The Succeeded payload is the label the
// backend confirmed for the file.
type Machine struct {
	name string
	call async.Call[string]
}

// NewMachine returns an idle machine for the named input.
func NewMachine(name string) *Machine {
	return &Machine{name: name}
}

// Name identifies the input this machine tracks, for error labeling.
func (m *Machine) Name() string { return m.name }

// Accept filters a dropped path list down to the first usable path.
// A drop with no paths, or whose first path has the wrong extension, is a
// validation failure and is ignored without surfacing an error.
func (m *Machine) Accept(paths []string) (string, bool) {
	if len(paths) == 0 {
		return "", false
	}

	path := paths[0]
	if !strings.HasSuffix(strings.ToLower(path), SpreadsheetExt) {
		return "", false
	}

	return path, true
}

// Begin records a new upload attempt.
func (m *Machine) Begin() {
	m.call.Begin()
}

// Resolve marks the attempt succeeded with the backend's confirmed label.
func (m *Machine) Resolve(label string) {
	m.call.Succeed(label)
}

// Reject marks the attempt failed.
func (m *Machine) Reject(err error) {
	m.call.Fail(err)
}

// Reset forces the machine back to Idle.
func (m *Machine) Reset() {
	m.call.Reset()
}

// Phase returns the current lifecycle position.
func (m *Machine) Phase() async.Phase { return m.call.Phase() }

// Succeeded reports whether the input has been validated by the backend.
func (m *Machine) Succeeded() bool { return m.call.IsSuccess() }

// Pending reports whether an upload attempt is in flight.
func (m *Machine) Pending() bool { return m.call.IsPending() }

// Failed reports whether the latest attempt was rejected.
func (m *Machine) Failed() bool { return m.call.IsError() }

// Label returns the backend-confirmed label of a succeeded upload.
func (m *Machine) Label() string { return m.call.Value() }

// Err returns the rejection error of a failed upload, or nil.
func (m *Machine) Err() error { return m.call.Err() }
