// Package content loads the portfolio page copy: projects, tech badges,
// terminal lines and the rest of the static sections.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/navarrastar/devfolio/pkg/models"
)

//go:embed site.yaml
var defaultSite []byte

// Default returns the content compiled into the binary
func Default() (*models.Site, error) {
	return Parse(defaultSite)
}

// Load reads site content from path, or the embedded default when path is empty
func Load(path string) (*models.Site, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading content file: %w", err)
	}
	site, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return site, nil
}

// Parse decodes and checks YAML site content
func Parse(data []byte) (*models.Site, error) {
	var site models.Site
	if err := yaml.Unmarshal(data, &site); err != nil {
		return nil, fmt.Errorf("parsing site content: %w", err)
	}
	if err := Validate(&site); err != nil {
		return nil, err
	}
	return &site, nil
}

// Validate rejects content the page cannot render sensibly
func Validate(site *models.Site) error {
	var errs []error

	if len(site.Projects) == 0 {
		errs = append(errs, errors.New("at least one project is required"))
	}
	for i, p := range site.Projects {
		if p.Title == "" {
			errs = append(errs, fmt.Errorf("project %d: title is required", i))
		}
	}
	for i, b := range site.Stack {
		if b.Name == "" {
			errs = append(errs, fmt.Errorf("stack badge %d: name is required", i))
		}
	}

	last := 0
	for i, line := range site.Terminal {
		if line.Delay < 0 {
			errs = append(errs, fmt.Errorf("terminal line %d: negative delay %d", i, line.Delay))
			continue
		}
		if line.Delay < last {
			errs = append(errs, fmt.Errorf("terminal line %d: delay %d is before previous line's %d", i, line.Delay, last))
		}
		last = line.Delay
	}

	return errors.Join(errs...)
}

// Marquee returns the badges twice in a row so the scrolling track loops seamlessly
func Marquee(badges []models.TechBadge) []models.TechBadge {
	out := make([]models.TechBadge, 0, 2*len(badges))
	out = append(out, badges...)
	return append(out, badges...)
}
