package templates

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"text/template"

	"github.com/vango-dev/hyperflex/internal/errors"
)

// Config contains template configuration.
type Config struct {
	// Title is used for page titles and headings.
	Title string

	// Description is a short line of body text.
	Description string

	// Lang is the document language.
	Lang string
}

// Template is a named set of starter files.
type Template struct {
	// Name is the template name.
	Name string

	// Description describes the template.
	Description string

	// Files maps relative paths to text/template sources.
	Files map[string]string
}

var templates = map[string]*Template{
	"minimal": minimalTemplate(),
	"page":    pageTemplate(),
	"json":    jsonTemplate(),
}

// Get returns a template by name.
func Get(name string) (*Template, error) {
	tmpl, ok := templates[name]
	if !ok {
		return nil, errors.New("E041").
			WithDetailf("template %q not found", name).
			WithSuggestion("Available templates: json, minimal, page")
	}
	return tmpl, nil
}

// List returns the template names in order.
func List() []string {
	names := make([]string, 0, len(templates))
	for name := range templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Paths returns the template's file paths in order.
func (t *Template) Paths() []string {
	paths := make([]string, 0, len(t.Files))
	for p := range t.Files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Create writes the template into dir. Existing files are left alone and
// reported unless force is set.
func (t *Template) Create(dir string, cfg Config, force bool) ([]string, error) {
	if cfg.Title == "" {
		cfg.Title = "Hello"
	}
	if cfg.Lang == "" {
		cfg.Lang = "en"
	}

	paths := t.Paths()
	if !force {
		for _, rel := range paths {
			full := filepath.Join(dir, rel)
			if _, err := os.Stat(full); err == nil {
				return nil, errors.New("E042").WithDetail(full)
			}
		}
	}

	written := make([]string, 0, len(paths))
	for _, rel := range paths {
		tmpl, err := template.New(rel).Parse(t.Files[rel])
		if err != nil {
			return written, errors.Newf(errors.CategoryCLI, "invalid template %s: %v", rel, err)
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, cfg); err != nil {
			return written, errors.Newf(errors.CategoryCLI, "template execute error %s: %v", rel, err)
		}

		full := filepath.Join(dir, rel)
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			return written, err
		}
		if err := os.WriteFile(full, buf.Bytes(), 0644); err != nil {
			return written, err
		}
		written = append(written, full)
	}
	return written, nil
}

const configFile = `{
  "render": {
    "pretty": true,
    "indent": "  "
  },
  "server": {
    "host": "localhost",
    "port": 8080
  },
  "log": {
    "level": "info",
    "format": "text"
  }
}
`

func minimalTemplate() *Template {
	return &Template{
		Name:        "minimal",
		Description: "A config file and a single element document",
		Files: map[string]string{
			"hyperflex.json": configFile,
			"index.yaml": `selector: main#app.container
childNodes:
  - selector: h1.title
    text: {{printf "%q" .Title}}
{{- if .Description}}
  - selector: p.lead
    text: {{printf "%q" .Description}}
{{- end}}
`,
		},
	}
}

func pageTemplate() *Template {
	return &Template{
		Name:        "page",
		Description: "A page layout with navigation, content and footer",
		Files: map[string]string{
			"hyperflex.json": configFile,
			"page.yaml": `selector: div#page.layout
attributes:
  lang: {{.Lang}}
childNodes:
  - selector: header.site-header
    childNodes:
      - selector: nav.nav
        attributes: {role: navigation}
        childNodes:
          - selector: a.nav-link
            attributes: {href: /}
            text: Home
          - selector: a.nav-link
            attributes: {href: /about}
            text: About
  - selector: main.content
    childNodes:
      - selector: h1
        text: {{printf "%q" .Title}}
      - selector: p
        text: {{printf "%q" (or .Description "Edit page.yaml and run hyperflex render --watch page.yaml")}}
      - selector: button.btn.btn-primary
        attributes: {type: button}
        properties: {disabled: false}
        styles: {marginTop: 1rem}
        text: Get started
  - selector: footer.site-footer
    styles: {textAlign: center}
    text: Built with hyperflex
`,
		},
	}
}

func jsonTemplate() *Template {
	return &Template{
		Name:        "json",
		Description: "A single element document in JSON",
		Files: map[string]string{
			"hyperflex.json": configFile,
			"index.json": `{
  "selector": "main#app.container",
  "childNodes": [
    {"selector": "h1.title", "text": {{printf "%q" .Title}}},
    {"selector": "p.lead", "text": {{printf "%q" (or .Description "Hello from hyperflex")}}}
  ]
}
`,
		},
	}
}
