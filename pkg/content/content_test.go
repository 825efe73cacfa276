package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/navarrastar/devfolio/pkg/models"
)

func TestDefaultContent(t *testing.T) {
	site, err := Default()
	require.NoError(t, err)

	assert.Len(t, site.Projects, 6)
	assert.Equal(t, "AuthFlow API", site.Projects[0].Title)
	assert.Equal(t, []string{"REST API", "JWT", "Redis", "PostgreSQL"}, site.Projects[0].Tags)
	assert.Len(t, site.Stack, 12)
	assert.Len(t, site.Terminal, 5)
	assert.Equal(t, 4400, site.Terminal[4].Delay)
	assert.Equal(t, []models.NavLink{
		{Label: "Work", Href: "#projects"},
		{Label: "Stack", Href: "#stack"},
		{Label: "Contact", Href: "#contact"},
	}, site.Nav)
	assert.Len(t, site.Socials, 2)
}

func TestLoadEmptyPathUsesDefault(t *testing.T) {
	site, err := Load("")
	require.NoError(t, err)
	assert.NotEmpty(t, site.Projects)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
title: "Custom"
projects:
  - title: "Only Project"
    tags: ["Go"]
terminal:
  - { text: "$ go run .", delay: 0 }
`), 0o644))

	site, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Custom", site.Title)
	require.Len(t, site.Projects, 1)
	assert.Equal(t, "Only Project", site.Projects[0].Title)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "reading content file")
}

func TestParseRejectsInvalidContent(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"malformed yaml", "projects: [", "parsing site content"},
		{"no projects", "title: x", "at least one project is required"},
		{"untitled project", "projects: [{description: d}]", "project 0: title is required"},
		{"unnamed badge", "projects: [{title: p}]\nstack: [{icon: x}]", "stack badge 0: name is required"},
		{"negative delay", "projects: [{title: p}]\nterminal: [{text: a, delay: -1}]", "negative delay"},
		{"decreasing delay", "projects: [{title: p}]\nterminal: [{text: a, delay: 500}, {text: b, delay: 100}]", "before previous line"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestMarqueeRepeatsBadges(t *testing.T) {
	badges := []models.TechBadge{{Name: "Go"}, {Name: "Redis"}}

	got := Marquee(badges)
	assert.Equal(t, []models.TechBadge{{Name: "Go"}, {Name: "Redis"}, {Name: "Go"}, {Name: "Redis"}}, got)
	assert.Len(t, badges, 2, "input must not be modified")
}
