package prompts

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/goccy/go-json"

	"github.com/sant0-9/diary/internal/diary"
)

//go:embed system.md
var systemText string

//go:embed user.md
var userText string

var (
	systemTmpl = template.Must(template.New("system").Parse(systemText))
	userTmpl   = template.Must(template.New("user").Funcs(template.FuncMap{
		"json": toJSON,
	}).Parse(userText))
)

// data is what both templates see
type data struct {
	diary.Request
	SkillList []string
}

// Build renders the system and user prompts for a diary request
func Build(req diary.Request) (system, user string, err error) {
	d := data{Request: req, SkillList: splitSkills(req.Skills)}

	if system, err = render(systemTmpl, d); err != nil {
		return "", "", err
	}
	if user, err = render(userTmpl, d); err != nil {
		return "", "", err
	}
	return system, user, nil
}

func render(t *template.Template, d data) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, d); err != nil {
		return "", fmt.Errorf("render %s prompt: %w", t.Name(), err)
	}
	return strings.TrimSpace(buf.String()), nil
}

func splitSkills(s string) []string {
	out := []string{}
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func toJSON(v any) (string, error) {
	b, err := json.Marshal(v)
	return string(b), err
}
