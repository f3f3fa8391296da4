package skill

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRules(t *testing.T) {
	rs, err := Default()
	require.NoError(t, err)

	assert.Positive(t, rs.Version())
	assert.NotZero(t, rs.Catalog().Count())
	assert.NotEmpty(t, rs.Rules())

	for _, r := range rs.Rules() {
		assert.True(t, rs.Catalog().Contains(r.Skill), "rule %q not in catalog", r.Skill)
	}

	aliases := rs.Aliases()
	require.Len(t, aliases, 1)
	assert.Equal(t, Alias{Canonical: "React", Alias: "React.js"}, aliases[0])

	r, ok := rs.Rule("SQL")
	require.True(t, ok)
	assert.Contains(t, r.Exclude, "mysql")
}

func TestParseRejectsInvalidTables(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name: "skill not in catalog",
			yaml: `
catalog: [Go]
rules:
  - skill: Rust
    keywords: [rust]
`,
			wantErr: `rule "Rust": skill not in catalog`,
		},
		{
			name: "no keywords",
			yaml: `
catalog: [Go]
rules:
  - skill: Go
`,
			wantErr: `rule "Go": no keywords`,
		},
		{
			name: "uppercase keyword",
			yaml: `
catalog: [Go]
rules:
  - skill: Go
    keywords: [Golang]
`,
			wantErr: "must be lowercase",
		},
		{
			name: "uppercase exclude",
			yaml: `
catalog: [Go]
rules:
  - skill: Go
    keywords: [golang]
    exclude: [Pokemon]
`,
			wantErr: "must be lowercase",
		},
		{
			name: "short unpadded keyword",
			yaml: `
catalog: [Go]
rules:
  - skill: Go
    keywords: [go]
`,
			wantErr: "must be space padded",
		},
		{
			name: "duplicate rule",
			yaml: `
catalog: [Go]
rules:
  - skill: Go
    keywords: [golang]
  - skill: Go
    keywords: [goroutine]
`,
			wantErr: "duplicate rule",
		},
		{
			name: "duplicate catalog entry",
			yaml: `
catalog: [Go, Go]
rules:
  - skill: Go
    keywords: [golang]
`,
			wantErr: `duplicate skill "Go"`,
		},
		{
			name: "alias outside catalog",
			yaml: `
catalog: [Go]
aliases:
  - canonical: Go
    alias: Golang
rules:
  - skill: Go
    keywords: [golang]
`,
			wantErr: `alias "Golang": not in catalog`,
		},
		{
			name:    "malformed yaml",
			yaml:    "catalog: [Go",
			wantErr: "parse rules",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseAcceptsPaddedShortKeyword(t *testing.T) {
	rs, err := Parse([]byte(`
catalog: [Go]
rules:
  - skill: Go
    keywords: [" go "]
`))
	require.NoError(t, err)
	assert.Equal(t, []string{"Go"}, NewClassifier(rs).Classify("go"))
}

func TestLoad(t *testing.T) {
	rs, err := Load("")
	require.NoError(t, err)
	assert.True(t, rs.Catalog().Contains("React"))

	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
version: 7
catalog: [Go]
rules:
  - skill: Go
    keywords: [golang]
`), 0644))

	rs, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, rs.Version())
	assert.Equal(t, []string{"Go"}, rs.Catalog().Names())

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
