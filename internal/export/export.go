// Package export renders diary output for the clipboard and for files.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"

	"github.com/sant0-9/diary/internal/diary"
)

type Format string

const (
	FormatText     Format = "txt"
	FormatMarkdown Format = "md"
	FormatPDF      Format = "pdf"
)

// Text is the clipboard layout
func Text(o diary.Output) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", o.Title)
	fmt.Fprintf(&b, "Work Summary:\n%s\n\n", o.WorkSummary)
	fmt.Fprintf(&b, "Hours Worked: %s\n\n", o.HoursWorked)
	fmt.Fprintf(&b, "Learnings / Outcomes:\n%s\n\n", o.Learnings)
	fmt.Fprintf(&b, "Blockers / Risks:\n%s\n\n", o.Blockers)
	fmt.Fprintf(&b, "Skills Used:\n%s\n\n", strings.Join(o.SkillsUsed, ", "))
	fmt.Fprintf(&b, "Reference Links:\n%s", o.ReferenceLink)
	return b.String()
}

// File is the plain text download layout
func File(o diary.Output) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s\n", o.Title, strings.Repeat("-", 39))
	fmt.Fprintf(&b, "WORK SUMMARY:\n%s\n\n", o.WorkSummary)
	fmt.Fprintf(&b, "HOURS WORKED: %s\n\n", o.HoursWorked)
	fmt.Fprintf(&b, "LEARNINGS / OUTCOMES:\n%s\n\n", o.Learnings)
	fmt.Fprintf(&b, "BLOCKERS / RISKS:\n%s\n\n", o.Blockers)
	fmt.Fprintf(&b, "SKILLS USED:\n%s\n\n", strings.Join(o.SkillsUsed, ", "))
	fmt.Fprintf(&b, "REFERENCE LINKS:\n%s\n", o.ReferenceLink)
	return b.String()
}

func Markdown(o diary.Output) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", o.Title)
	fmt.Fprintf(&b, "**Hours Worked:** %s\n\n", o.HoursWorked)
	fmt.Fprintf(&b, "## Work Summary\n\n%s\n\n", o.WorkSummary)
	fmt.Fprintf(&b, "## Learnings / Outcomes\n\n%s\n\n", o.Learnings)
	fmt.Fprintf(&b, "## Blockers / Risks\n\n%s\n\n", o.Blockers)
	b.WriteString("## Skills Used\n\n")
	for _, s := range o.SkillsUsed {
		fmt.Fprintf(&b, "- %s\n", s)
	}
	fmt.Fprintf(&b, "\n## Reference Links\n\n%s\n", o.ReferenceLink)
	return b.String()
}

// FileName returns Diary_2006-01-02.<ext>
func FileName(date time.Time, f Format) string {
	return fmt.Sprintf("Diary_%s.%s", date.Format(diary.DateLayout), f)
}

// Render picks the layout for a file format
func Render(f Format, o diary.Output) ([]byte, error) {
	switch f {
	case FormatText:
		return []byte(File(o)), nil
	case FormatMarkdown:
		return []byte(Markdown(o)), nil
	case FormatPDF:
		return PDF(o)
	default:
		return nil, fmt.Errorf("unknown export format: %q", f)
	}
}

// Save writes o into dir and returns the file path. An empty dir means
// the working directory.
func Save(dir string, date time.Time, f Format, o diary.Output) (string, error) {
	content, err := Render(f, o)
	if err != nil {
		return "", err
	}

	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	path := filepath.Join(dir, FileName(date, f))
	if err := os.WriteFile(path, content, 0644); err != nil {
		return "", fmt.Errorf("save diary: %w", err)
	}
	return path, nil
}

// Copy puts the clipboard layout on the system clipboard
func Copy(o diary.Output) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard not available")
	}
	return clipboard.WriteAll(Text(o))
}
