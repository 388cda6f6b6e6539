package ports

import (
	"context"
	"errors"
)

// ErrNotFound is returned, possibly wrapped, when a path does not exist in
// the manifest repository.
var ErrNotFound = errors.New("not found")

// ManifestRepository reads the tree of the remote manifest repository.
// Paths are slash separated and relative to the repository root; an empty
// path denotes the root itself.
type ManifestRepository interface {
	// ListDirectories returns the names of the directories directly under path.
	ListDirectories(ctx context.Context, path string) ([]string, error)
	// ListFiles returns the names of the files directly under path.
	ListFiles(ctx context.Context, path string) ([]string, error)
	// ReadFile returns the decoded content of the file at path.
	ReadFile(ctx context.Context, path string) ([]byte, error)
}

// TreeEntry places a previously created blob at a path of a new tree.
type TreeEntry struct {
	Path    string
	BlobSHA string
}

// ManifestRepositoryWriter creates git objects in the remote manifest repository.
type ManifestRepositoryWriter interface {
	DefaultBranch(ctx context.Context) (string, error)
	LatestCommit(ctx context.Context, branch string) (string, error)
	TreeOf(ctx context.Context, commitSHA string) (string, error)
	CreateBlob(ctx context.Context, content []byte) (string, error)
	CreateTree(ctx context.Context, baseTreeSHA string, entries []TreeEntry) (string, error)
	CreateCommit(ctx context.Context, message, treeSHA, parentSHA string) (string, error)
	UpdateRef(ctx context.Context, branch, commitSHA string) error
}
