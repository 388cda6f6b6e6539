package testutil

import (
	"context"
	"fmt"
	"path"
	"slices"
	"strings"

	"overlay/internal/ports"
)

var _ ports.ManifestRepository = (*FakeManifestRepository)(nil)

// FakeManifestRepository is an in-memory manifest repository. Files are
// keyed by their slash separated path; directories exist implicitly.
type FakeManifestRepository struct {
	Files    map[string]string
	Failures map[string]error
	Calls    map[string]int
}

func NewFakeManifestRepository(files map[string]string) *FakeManifestRepository {
	if files == nil {
		files = make(map[string]string)
	}
	return &FakeManifestRepository{
		Files:    files,
		Failures: make(map[string]error),
		Calls:    make(map[string]int),
	}
}

// Fail makes every call for p return err.
func (r *FakeManifestRepository) Fail(p string, err error) {
	r.Failures[p] = err
}

func (r *FakeManifestRepository) ListDirectories(_ context.Context, dir string) ([]string, error) {
	return r.children(dir, true)
}

func (r *FakeManifestRepository) ListFiles(_ context.Context, dir string) ([]string, error) {
	return r.children(dir, false)
}

func (r *FakeManifestRepository) ReadFile(_ context.Context, p string) ([]byte, error) {
	r.Calls[p]++
	if err, ok := r.Failures[p]; ok {
		return nil, err
	}
	content, ok := r.Files[p]
	if !ok {
		return nil, fmt.Errorf("%s: %w", p, ports.ErrNotFound)
	}
	return []byte(content), nil
}

func (r *FakeManifestRepository) children(dir string, directories bool) ([]string, error) {
	r.Calls[dir]++
	if err, ok := r.Failures[dir]; ok {
		return nil, err
	}

	prefix := ""
	if dir != "" {
		prefix = strings.TrimSuffix(dir, "/") + "/"
	}

	found := false
	var names []string
	for p := range r.Files {
		rest, ok := strings.CutPrefix(p, prefix)
		if !ok {
			continue
		}
		found = true
		first, _, nested := strings.Cut(rest, "/")
		if nested == directories && !slices.Contains(names, first) {
			names = append(names, first)
		}
	}
	if !found {
		return nil, fmt.Errorf("%s: %w", path.Clean("/"+dir), ports.ErrNotFound)
	}
	slices.Sort(names)
	return names, nil
}
