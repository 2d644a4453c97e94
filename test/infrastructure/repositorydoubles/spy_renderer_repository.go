//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"io"

	"github.com/rios0rios0/gradlediff/internal/domain/entities"
	"github.com/rios0rios0/gradlediff/internal/domain/repositories"
)

// SpyRendererRepository implements repositories.RendererRepository and records what it was asked to render.
type SpyRendererRepository struct {
	RendererName string
	Output       string
	RenderErr    error

	// spy
	RenderedRecords   [][]entities.DiffRecord
	RenderedSnapshots []*entities.Snapshot
}

var _ repositories.RendererRepository = (*SpyRendererRepository)(nil)

func (r *SpyRendererRepository) Name() string { return r.RendererName }

func (r *SpyRendererRepository) Render(w io.Writer, records []entities.DiffRecord) error {
	r.RenderedRecords = append(r.RenderedRecords, records)
	if r.RenderErr != nil {
		return r.RenderErr
	}
	_, err := io.WriteString(w, r.Output)
	return err
}

func (r *SpyRendererRepository) RenderSnapshot(w io.Writer, snapshot *entities.Snapshot) error {
	r.RenderedSnapshots = append(r.RenderedSnapshots, snapshot)
	if r.RenderErr != nil {
		return r.RenderErr
	}
	_, err := io.WriteString(w, r.Output)
	return err
}
