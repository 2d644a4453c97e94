package repositories

import (
	"io"

	"github.com/rios0rios0/gradlediff/internal/domain/entities"
)

// RendererRepository writes diff records (and single snapshots) in one output format.
type RendererRepository interface {
	// Name returns the format identifier (e.g. "json", "html").
	Name() string

	// Render writes the diff records.
	Render(w io.Writer, records []entities.DiffRecord) error

	// RenderSnapshot writes a single parsed snapshot.
	RenderSnapshot(w io.Writer, snapshot *entities.Snapshot) error
}
