package entities

import "fmt"

// ReportSource locates one dependency report.
type ReportSource struct {
	Path     string // File path, or path inside the repository when Revision is set
	Revision string // Git revision (branch, tag, SHA, HEAD~1); empty means the working tree file
}

// String renders the source the way Git does for blobs ("rev:path").
func (it ReportSource) String() string {
	if it.Revision == "" {
		return it.Path
	}
	return fmt.Sprintf("%s:%s", it.Revision, it.Path)
}
