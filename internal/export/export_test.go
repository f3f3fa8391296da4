package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sant0-9/diary/internal/diary"
)

func sample() diary.Output {
	return diary.Output{
		Title:         "Daily Internship Diary - 2025-03-14",
		WorkSummary:   "Built the API.",
		HoursWorked:   "8",
		Learnings:     "Learned routing.",
		Blockers:      "None",
		SkillsUsed:    []string{"MongoDB", "Node.js"},
		ReferenceLink: "https://github.com/me/api",
	}
}

func TestText(t *testing.T) {
	want := `Daily Internship Diary - 2025-03-14

Work Summary:
Built the API.

Hours Worked: 8

Learnings / Outcomes:
Learned routing.

Blockers / Risks:
None

Skills Used:
MongoDB, Node.js

Reference Links:
https://github.com/me/api`

	assert.Equal(t, want, Text(sample()))
}

func TestFile(t *testing.T) {
	got := File(sample())

	lines := strings.Split(got, "\n")
	assert.Equal(t, "Daily Internship Diary - 2025-03-14", lines[0])
	assert.Equal(t, strings.Repeat("-", 39), lines[1])
	assert.Contains(t, got, "HOURS WORKED: 8\n")
	assert.Contains(t, got, "SKILLS USED:\nMongoDB, Node.js\n")
}

func TestMarkdown(t *testing.T) {
	got := Markdown(sample())
	assert.True(t, strings.HasPrefix(got, "# Daily Internship Diary - 2025-03-14\n"))
	assert.Contains(t, got, "- MongoDB\n- Node.js\n")
	assert.Contains(t, got, "## Blockers / Risks\n\nNone\n")
}

func TestFileName(t *testing.T) {
	date := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Diary_2025-03-14.txt", FileName(date, FormatText))
	assert.Equal(t, "Diary_2025-03-14.md", FileName(date, FormatMarkdown))
	assert.Equal(t, "Diary_2025-03-14.pdf", FileName(date, FormatPDF))
}

func TestSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	date := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

	path, err := Save(dir, date, FormatText, sample())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Diary_2025-03-14.txt"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, File(sample()), string(data))

	_, err = Save(dir, date, "docx", sample())
	assert.ErrorContains(t, err, "unknown export format")
}

func TestPDF(t *testing.T) {
	o := sample()
	o.Learnings = "Learned routing – and café-grade error handling."

	data, err := PDF(o)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
	assert.Greater(t, len(data), 500)
	assert.True(t, bytes.Contains(data, []byte("%%EOF")))
}

func TestSavePDF(t *testing.T) {
	dir := t.TempDir()
	date := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

	path, err := Save(dir, date, FormatPDF, sample())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Diary_2025-03-14.pdf"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}
