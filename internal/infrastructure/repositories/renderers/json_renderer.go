package renderers

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/rios0rios0/gradlediff/internal/domain/entities"
	"github.com/rios0rios0/gradlediff/internal/domain/repositories"
)

// JSONRenderer writes pretty-printed JSON.
type JSONRenderer struct{}

var _ repositories.RendererRepository = (*JSONRenderer)(nil)

// NewJSONRenderer creates a JSON renderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

func (it *JSONRenderer) Name() string { return "json" }

func (it *JSONRenderer) Render(w io.Writer, records []entities.DiffRecord) error {
	return encodeJSON(w, nonNil(records))
}

func (it *JSONRenderer) RenderSnapshot(w io.Writer, snapshot *entities.Snapshot) error {
	return encodeJSON(w, nonNil(snapshot.Dependencies()))
}

func encodeJSON(w io.Writer, document any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(document); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
