package renderers

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"

	"github.com/rios0rios0/gradlediff/internal/domain/entities"
	"github.com/rios0rios0/gradlediff/internal/domain/repositories"
	"github.com/rios0rios0/gradlediff/internal/versioning"
)

const (
	changedColor = "#D7AF00"
	addedColor   = "#5FAF5F"
	removedColor = "#D75F5F"
	cellPadding  = 2
)

// TableRenderer writes an aligned terminal table, one row per dependency configuration.
type TableRenderer struct{}

var _ repositories.RendererRepository = (*TableRenderer)(nil)

// NewTableRenderer creates a table renderer.
func NewTableRenderer() *TableRenderer {
	return &TableRenderer{}
}

func (it *TableRenderer) Name() string { return "table" }

func (it *TableRenderer) Render(w io.Writer, records []entities.DiffRecord) error {
	var (
		rows   [][]string
		styles []lipgloss.Style
	)

	cellStyle := lipgloss.NewStyle().Align(lipgloss.Left)
	for _, record := range records {
		for _, configuration := range record.Configurations {
			rows = append(rows, []string{
				record.Namespace + ":" + record.Name,
				configuration.Configuration,
				configuration.VersionBefore,
				configuration.VersionAfter,
				string(configuration.Bump),
			})
			styles = append(styles, rowStyle(cellStyle, configuration))
		}
	}

	t := newTable(func(row int) lipgloss.Style {
		if row < 0 || row >= len(styles) {
			return cellStyle
		}
		return styles[row]
	}).
		Headers("DEPENDENCY", "CONFIGURATION", "BEFORE", "AFTER", "CHANGE").
		Rows(rows...)

	s := summarize(records)
	_, err := fmt.Fprintf(w, "%s\n%d dependencies, %d changed\n", t, s.Total, s.Changed)
	return err
}

func (it *TableRenderer) RenderSnapshot(w io.Writer, snapshot *entities.Snapshot) error {
	var rows [][]string
	for _, dependency := range snapshot.Dependencies() {
		for _, entry := range dependency.Entries {
			rows = append(rows, []string{
				dependency.Namespace + ":" + dependency.Name,
				entry.Configuration,
				joinVersions(entry.Versions.Transitive),
				entry.Versions.Pinned.String(),
			})
		}
	}

	cellStyle := lipgloss.NewStyle().Align(lipgloss.Left)
	t := newTable(func(int) lipgloss.Style { return cellStyle }).
		Headers("DEPENDENCY", "CONFIGURATION", "TRANSITIVE", "PINNED").
		Rows(rows...)

	_, err := fmt.Fprintf(w, "%s\n%d dependencies\n", t, snapshot.Len())
	return err
}

func newTable(styleOf func(row int) lipgloss.Style) *table.Table {
	headerStyle := lipgloss.NewStyle().Align(lipgloss.Left).Bold(true)

	return table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := headerStyle
			if row != table.HeaderRow {
				style = styleOf(row)
			}
			if col > 0 {
				style = style.PaddingLeft(cellPadding)
			}
			return style
		})
}

func rowStyle(base lipgloss.Style, configuration entities.ConfigurationDiff) lipgloss.Style {
	switch {
	case !configuration.Changed():
		return base
	case configuration.VersionBefore == versioning.NotApplicable:
		return base.Foreground(lipgloss.Color(addedColor))
	case configuration.VersionAfter == versioning.NotApplicable:
		return base.Foreground(lipgloss.Color(removedColor))
	default:
		return base.Foreground(lipgloss.Color(changedColor))
	}
}
