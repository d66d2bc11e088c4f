package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.seluk.ch/corekit/internal/core/domain"
)

func TestProgressUpdate_Merge(t *testing.T) {
	prev := domain.NewProgress("extracting", 3, 10)

	// Only the value changes, status and maximum are carried over.
	merged := domain.ProgressValue(4, 10).Merge(prev)
	assert.Equal(t, "extracting", *merged.Status)
	assert.Equal(t, 4, *merged.Value)
	assert.Equal(t, 10, *merged.Maximum)

	// A status-only update leaves the counters alone.
	merged = domain.ProgressStatus("done").Merge(merged)
	assert.Equal(t, "done", *merged.Status)
	assert.Equal(t, 4, *merged.Value)
}

func TestProgressUpdate_MergeEmpty(t *testing.T) {
	prev := domain.NewProgress("working", 1, 2)

	merged := domain.ProgressUpdate{}.Merge(prev)
	assert.Equal(t, prev, merged)
}

func TestProgressUpdate_Indeterminate(t *testing.T) {
	u := domain.IndeterminateProgress("loading")
	assert.True(t, u.Indeterminate())
	assert.Nil(t, u.Value)

	assert.False(t, domain.ProgressValue(1, 10).Indeterminate())
	assert.False(t, domain.ProgressStatus("no maximum set").Indeterminate())
}

func TestProgressUpdate_String(t *testing.T) {
	assert.Equal(t, "copying (2/5)", domain.NewProgress("copying", 2, 5).String())
	assert.Equal(t, "- (-/-)", domain.ProgressUpdate{}.String())
}
