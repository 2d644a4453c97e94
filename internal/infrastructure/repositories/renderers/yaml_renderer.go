package renderers

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/gradlediff/internal/domain/entities"
	"github.com/rios0rios0/gradlediff/internal/domain/repositories"
)

const yamlIndent = 2

// YAMLRenderer writes YAML documents.
type YAMLRenderer struct{}

var _ repositories.RendererRepository = (*YAMLRenderer)(nil)

// NewYAMLRenderer creates a YAML renderer.
func NewYAMLRenderer() *YAMLRenderer {
	return &YAMLRenderer{}
}

func (it *YAMLRenderer) Name() string { return "yaml" }

func (it *YAMLRenderer) Render(w io.Writer, records []entities.DiffRecord) error {
	return encodeYAML(w, nonNil(records))
}

func (it *YAMLRenderer) RenderSnapshot(w io.Writer, snapshot *entities.Snapshot) error {
	return encodeYAML(w, nonNil(snapshot.Dependencies()))
}

func encodeYAML(w io.Writer, document any) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(yamlIndent)
	if err := encoder.Encode(document); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return encoder.Close()
}
