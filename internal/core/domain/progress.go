// Package domain contains the core types shared across the library.
package domain

import "fmt"

// ProgressUpdate is the payload for updating the progress of a single worker
// slot or of the aggregate progress. Every field is optional: a nil field
// means "leave the previous value unchanged".
type ProgressUpdate struct {
	// Status is the displayed status text. Overwrites the previous text if set.
	Status *string

	// Value is the current progress value. Overwrites the previous value if set.
	Value *int

	// Maximum is the maximum progress value. A maximum of 0 signals
	// indeterminate progress.
	Maximum *int
}

// ProgressStatus returns an update that only changes the status text.
func ProgressStatus(text string) ProgressUpdate {
	return ProgressUpdate{Status: &text}
}

// ProgressValue returns an update that only changes the value and maximum.
func ProgressValue(value, maximum int) ProgressUpdate {
	return ProgressUpdate{Value: &value, Maximum: &maximum}
}

// NewProgress returns an update setting all three fields.
func NewProgress(text string, value, maximum int) ProgressUpdate {
	return ProgressUpdate{Status: &text, Value: &value, Maximum: &maximum}
}

// IndeterminateProgress returns an update that switches the consumer to
// indeterminate mode (maximum 0) with the given status text.
func IndeterminateProgress(text string) ProgressUpdate {
	zero := 0
	return ProgressUpdate{Status: &text, Maximum: &zero}
}

// Merge folds u onto prev: fields set in u overwrite, nil fields keep the
// previous value.
func (u ProgressUpdate) Merge(prev ProgressUpdate) ProgressUpdate {
	merged := prev
	if u.Status != nil {
		merged.Status = u.Status
	}
	if u.Value != nil {
		merged.Value = u.Value
	}
	if u.Maximum != nil {
		merged.Maximum = u.Maximum
	}
	return merged
}

// Indeterminate reports whether the update signals indeterminate progress.
func (u ProgressUpdate) Indeterminate() bool {
	return u.Maximum != nil && *u.Maximum == 0
}

// String renders the update for logs. Unset fields are printed as "-".
func (u ProgressUpdate) String() string {
	status, value, maximum := "-", "-", "-"
	if u.Status != nil {
		status = *u.Status
	}
	if u.Value != nil {
		value = fmt.Sprintf("%d", *u.Value)
	}
	if u.Maximum != nil {
		maximum = fmt.Sprintf("%d", *u.Maximum)
	}
	return fmt.Sprintf("%s (%s/%s)", status, value, maximum)
}
