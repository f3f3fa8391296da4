package diary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeOutput() Output {
	return Output{
		Title:         "Daily Internship Diary - 2025-03-14",
		WorkSummary:   "Worked.",
		HoursWorked:   "8",
		Learnings:     "Learned.",
		Blockers:      "None",
		SkillsUsed:    []string{"Go"},
		ReferenceLink: "https://github.com/me/api",
	}
}

func TestOutputValidate(t *testing.T) {
	require.NoError(t, completeOutput().Validate())

	o := completeOutput()
	o.ReferenceLink = ""
	assert.NoError(t, o.Validate())

	o = completeOutput()
	o.Title = " "
	o.Blockers = ""
	err := o.Validate()
	require.Error(t, err)
	assert.ErrorContains(t, err, "title: empty")
	assert.ErrorContains(t, err, "blockers: empty")
}

func TestOutputClone(t *testing.T) {
	o := completeOutput()
	cp := o.Clone()
	cp.SkillsUsed[0] = "Rust"
	assert.Equal(t, []string{"Go"}, o.SkillsUsed)
}
