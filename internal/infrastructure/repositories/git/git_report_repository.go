package git

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gradlediff/internal/domain/entities"
	"github.com/rios0rios0/gradlediff/internal/domain/repositories"
	"github.com/rios0rios0/gradlediff/internal/infrastructure/repositories/file"
)

// ErrOutsideRepository is returned when the report path is not inside the enclosing Git work tree.
var ErrOutsideRepository = errors.New("report is outside the git repository")

// ReportRepository reads a dependency report as it was committed at a given revision.
type ReportRepository struct{}

var _ repositories.ReportRepository = (*ReportRepository)(nil)

// NewReportRepository creates a Git revision report repository.
func NewReportRepository() *ReportRepository {
	return &ReportRepository{}
}

// Name returns the repository identifier.
func (it *ReportRepository) Name() string { return "git" }

// Supports returns true for sources bound to a revision.
func (it *ReportRepository) Supports(source entities.ReportSource) bool {
	return source.Revision != ""
}

// Lines opens the repository enclosing source.Path and reads the file at source.Revision.
// A relative path names the file from the root of the repository enclosing the working directory.
func (it *ReportRepository) Lines(ctx context.Context, source entities.ReportSource) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	repo, relPath, err := openRepository(source.Path)
	if err != nil {
		return nil, err
	}

	hash, err := repo.ResolveRevision(plumbing.Revision(source.Revision))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve revision %q: %w", source.Revision, err)
	}

	commit, err := repo.CommitObject(*hash)
	if err != nil {
		return nil, fmt.Errorf("failed to load commit %s: %w", hash, err)
	}
	logger.Debugf("Reading %q from commit %s", relPath, commit.Hash.String())

	blob, err := commit.File(filepath.ToSlash(relPath))
	if err != nil {
		return nil, fmt.Errorf("failed to find %q at %s: %w", relPath, source.Revision, err)
	}

	content, err := blob.Contents()
	if err != nil {
		return nil, fmt.Errorf("failed to read %q at %s: %w", relPath, source.Revision, err)
	}

	return file.ReadLines(ctx, strings.NewReader(content))
}

// openRepository finds the repository holding path and returns path relative to its work tree root.
func openRepository(path string) (*gogit.Repository, string, error) {
	if !filepath.IsAbs(path) {
		return openFromWorkingDirectory(path)
	}

	absPath := resolveSymlinks(filepath.Clean(path))
	repo, err := gogit.PlainOpenWithOptions(filepath.Dir(absPath), &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, "", fmt.Errorf("failed to open git repository for %q: %w", path, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return nil, "", fmt.Errorf("failed to open work tree: %w", err)
	}

	relPath, err := filepath.Rel(resolveSymlinks(worktree.Filesystem.Root()), absPath)
	if err != nil || isOutside(relPath) {
		return nil, "", fmt.Errorf("%w: %s", ErrOutsideRepository, path)
	}
	return repo, relPath, nil
}

func openFromWorkingDirectory(path string) (*gogit.Repository, string, error) {
	relPath := filepath.Clean(path)
	if isOutside(relPath) {
		return nil, "", fmt.Errorf("%w: %s", ErrOutsideRepository, path)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get the working directory: %w", err)
	}

	repo, err := gogit.PlainOpenWithOptions(cwd, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, "", fmt.Errorf("failed to open git repository for %q: %w", path, err)
	}
	return repo, relPath, nil
}

func isOutside(relPath string) bool {
	return relPath == ".." || strings.HasPrefix(relPath, ".."+string(filepath.Separator))
}

// resolveSymlinks evaluates the longest existing prefix of path, so that temporary directories
// behind symlinks compare equal to the work tree root.
func resolveSymlinks(path string) string {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		return resolved
	}
	dir, base := filepath.Split(path)
	if resolved, err := filepath.EvalSymlinks(dir); err == nil {
		return filepath.Join(resolved, base)
	}
	return path
}
