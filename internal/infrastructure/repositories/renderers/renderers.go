package renderers

import (
	"errors"

	"github.com/rios0rios0/gradlediff/internal/domain/entities"
)

// ErrUnsupportedDocument is returned by renderers that cannot render a given kind of document.
var ErrUnsupportedDocument = errors.New("document not supported by this format")

// summary counts what a diff report shows.
type summary struct {
	Total     int
	Changed   int
	Unchanged int
}

func summarize(records []entities.DiffRecord) summary {
	result := summary{Total: len(records)}
	for _, record := range records {
		if record.Changed {
			result.Changed++
		}
	}
	result.Unchanged = result.Total - result.Changed
	return result
}

// nonNil keeps empty collections encoded as [] instead of null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
