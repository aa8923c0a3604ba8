package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for callers that match with errors.Is.
var (
	ErrStormNotFound  = errors.New("storm not found")
	ErrUnknownDataset = errors.New("unknown dataset")
)

// StormNotFoundError reports that a target identifier is absent from a
// source's identifier universe. It is surfaced before iteration begins and
// is never folded into an empty-track result.
type StormNotFoundError struct {
	Dataset string
	StormID string
	Mode    IDMode
}

func (e *StormNotFoundError) Error() string {
	if e.Dataset == "" {
		return fmt.Sprintf("storm %q (%s) not found", e.StormID, e.Mode)
	}
	return fmt.Sprintf("storm %q (%s) not found in dataset %q", e.StormID, e.Mode, e.Dataset)
}

func (e *StormNotFoundError) Unwrap() error { return ErrStormNotFound }

// UnknownDatasetError reports a request for a dataset the service has not
// registered.
type UnknownDatasetError struct {
	Dataset string
}

func (e *UnknownDatasetError) Error() string {
	return fmt.Sprintf("unknown dataset %q", e.Dataset)
}

func (e *UnknownDatasetError) Unwrap() error { return ErrUnknownDataset }
