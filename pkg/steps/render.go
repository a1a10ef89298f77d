package steps

import (
	"fmt"
	"io"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/systemstart/kickstart/pkg/api"
)

// TemplateData builds the data rendered template files receive.
func TemplateData(projectName, templateID, packageManager string) map[string]any {
	return map[string]any{
		"ProjectName":    projectName,
		"Template":       templateID,
		"PackageManager": packageManager,
	}
}

// renderFilter selects the template files that are executed while they are
// written. Paths are slash separated and relative to the template root.
type renderFilter struct {
	include []string
	exclude []string
}

func newRenderFilter(f api.FileFilter) renderFilter {
	return renderFilter{include: f.Include, exclude: f.Exclude}
}

func (f renderFilter) selects(path string) bool {
	return matchesAny(f.include, path) && !matchesAny(f.exclude, path)
}

// render executes content as a text/template with the sprig functions.
func render(w io.Writer, path string, content []byte, data map[string]any) error {
	tmpl, err := template.New(path).Funcs(sprig.FuncMap()).Parse(string(content))
	if err != nil {
		return fmt.Errorf("parsing template: %w", err)
	}
	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("executing template: %w", err)
	}
	return nil
}
