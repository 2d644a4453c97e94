package renderers

import (
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/rios0rios0/gradlediff/internal/domain/entities"
	"github.com/rios0rios0/gradlediff/internal/domain/repositories"
)

//go:embed templates/report.html.tmpl
var reportTemplate string

// HTMLRenderer writes a standalone HTML report of the diff.
type HTMLRenderer struct {
	template *template.Template
}

var _ repositories.RendererRepository = (*HTMLRenderer)(nil)

// NewHTMLRenderer parses the embedded report template.
func NewHTMLRenderer() (*HTMLRenderer, error) {
	tmpl, err := template.New("report").Funcs(template.FuncMap{
		"transitive": joinVersions,
	}).Parse(reportTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse report template: %w", err)
	}
	return &HTMLRenderer{template: tmpl}, nil
}

func (it *HTMLRenderer) Name() string { return "html" }

func (it *HTMLRenderer) Render(w io.Writer, records []entities.DiffRecord) error {
	document := struct {
		Summary summary
		Records []entities.DiffRecord
	}{
		Summary: summarize(records),
		Records: records,
	}

	if err := it.template.Execute(w, document); err != nil {
		return fmt.Errorf("failed to render HTML report: %w", err)
	}
	return nil
}

func (it *HTMLRenderer) RenderSnapshot(_ io.Writer, _ *entities.Snapshot) error {
	return fmt.Errorf("%w: html renders diffs only", ErrUnsupportedDocument)
}

func joinVersions(versions []entities.Version) string {
	texts := make([]string, 0, len(versions))
	for _, version := range versions {
		texts = append(texts, version.String())
	}
	return strings.Join(texts, ", ")
}
