package github

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"path"
	"time"

	"overlay/internal/core/domain"
	"overlay/internal/ports"

	gh "github.com/google/go-github/v66/github"
	"golang.org/x/oauth2"
)

const (
	requestTimeout = 5 * time.Second
	fileMode       = "100644"
)

var (
	_ ports.ManifestRepository       = (*Repository)(nil)
	_ ports.ManifestRepositoryWriter = (*Repository)(nil)
)

// Repository reads and writes the cluster manifest repository through the
// GitHub REST API.
type Repository struct {
	client *gh.Client
	owner  string
	name   string
	ref    string
}

// ProvideRepository creates a Repository for options.ClusterRepo. Reads use
// options.Branch when set and the default branch otherwise.
func ProvideRepository(options domain.Options) (*Repository, error) {
	owner, name, err := options.RepositoryCoordinates()
	if err != nil {
		return nil, err
	}
	repository := NewRepository(gh.NewClient(newHTTPClient(options.Token)), owner, name)
	repository.ref = options.Branch
	return repository, nil
}

func NewRepository(client *gh.Client, owner, name string) *Repository {
	return &Repository{client: client, owner: owner, name: name}
}

func newHTTPClient(token string) *http.Client {
	base := &http.Client{Timeout: requestTimeout}
	if token == "" {
		return base
	}
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, base)
	client := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}))
	client.Timeout = requestTimeout
	return client
}

func (r *Repository) ListDirectories(ctx context.Context, dir string) ([]string, error) {
	return r.list(ctx, dir, "dir")
}

func (r *Repository) ListFiles(ctx context.Context, dir string) ([]string, error) {
	return r.list(ctx, dir, "file")
}

func (r *Repository) list(ctx context.Context, dir, entryType string) ([]string, error) {
	file, entries, _, err := r.client.Repositories.GetContents(ctx, r.owner, r.name, dir, r.contentOptions())
	if err != nil {
		return nil, r.wrap(dir, err)
	}
	if file != nil {
		return nil, fmt.Errorf("%s is a file: %w", r.display(dir), ports.ErrNotFound)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.GetType() == entryType {
			names = append(names, entry.GetName())
		}
	}
	return names, nil
}

func (r *Repository) ReadFile(ctx context.Context, p string) ([]byte, error) {
	file, _, _, err := r.client.Repositories.GetContents(ctx, r.owner, r.name, p, r.contentOptions())
	if err != nil {
		return nil, r.wrap(p, err)
	}
	if file == nil {
		return nil, fmt.Errorf("%s is a directory: %w", r.display(p), ports.ErrNotFound)
	}

	// Files above the contents API size limit come without inline content.
	if file.GetEncoding() == "none" {
		content, _, err := r.client.Git.GetBlobRaw(ctx, r.owner, r.name, file.GetSHA())
		if err != nil {
			return nil, r.wrap(p, err)
		}
		return content, nil
	}

	content, err := file.GetContent()
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", r.display(p), err)
	}
	return []byte(content), nil
}

func (r *Repository) DefaultBranch(ctx context.Context) (string, error) {
	repository, _, err := r.client.Repositories.Get(ctx, r.owner, r.name)
	if err != nil {
		return "", r.wrap("", err)
	}
	return repository.GetDefaultBranch(), nil
}

func (r *Repository) LatestCommit(ctx context.Context, branch string) (string, error) {
	ref, _, err := r.client.Git.GetRef(ctx, r.owner, r.name, "heads/"+branch)
	if err != nil {
		return "", r.wrap("refs/heads/"+branch, err)
	}
	return ref.GetObject().GetSHA(), nil
}

func (r *Repository) TreeOf(ctx context.Context, commitSHA string) (string, error) {
	commit, _, err := r.client.Git.GetCommit(ctx, r.owner, r.name, commitSHA)
	if err != nil {
		return "", r.wrap(commitSHA, err)
	}
	return commit.GetTree().GetSHA(), nil
}

func (r *Repository) CreateBlob(ctx context.Context, content []byte) (string, error) {
	blob, _, err := r.client.Git.CreateBlob(ctx, r.owner, r.name, &gh.Blob{
		Content:  gh.String(base64.StdEncoding.EncodeToString(content)),
		Encoding: gh.String("base64"),
	})
	if err != nil {
		return "", err
	}
	return blob.GetSHA(), nil
}

func (r *Repository) CreateTree(ctx context.Context, baseTreeSHA string, entries []ports.TreeEntry) (string, error) {
	treeEntries := make([]*gh.TreeEntry, 0, len(entries))
	for _, entry := range entries {
		treeEntries = append(treeEntries, &gh.TreeEntry{
			Path: gh.String(entry.Path),
			Mode: gh.String(fileMode),
			Type: gh.String("blob"),
			SHA:  gh.String(entry.BlobSHA),
		})
	}

	tree, _, err := r.client.Git.CreateTree(ctx, r.owner, r.name, baseTreeSHA, treeEntries)
	if err != nil {
		return "", err
	}
	return tree.GetSHA(), nil
}

func (r *Repository) CreateCommit(ctx context.Context, message, treeSHA, parentSHA string) (string, error) {
	commit, _, err := r.client.Git.CreateCommit(ctx, r.owner, r.name, &gh.Commit{
		Message: gh.String(message),
		Tree:    &gh.Tree{SHA: gh.String(treeSHA)},
		Parents: []*gh.Commit{{SHA: gh.String(parentSHA)}},
	}, nil)
	if err != nil {
		return "", err
	}
	return commit.GetSHA(), nil
}

func (r *Repository) UpdateRef(ctx context.Context, branch, commitSHA string) error {
	_, _, err := r.client.Git.UpdateRef(ctx, r.owner, r.name, &gh.Reference{
		Ref:    gh.String("refs/heads/" + branch),
		Object: &gh.GitObject{SHA: gh.String(commitSHA)},
	}, false)
	return err
}

func (r *Repository) contentOptions() *gh.RepositoryContentGetOptions {
	if r.ref == "" {
		return nil
	}
	return &gh.RepositoryContentGetOptions{Ref: r.ref}
}

func (r *Repository) display(p string) string {
	return path.Join(r.owner, r.name, p)
}

// wrap maps a 404 response to ports.ErrNotFound.
func (r *Repository) wrap(p string, err error) error {
	var response *gh.ErrorResponse
	if errors.As(err, &response) && response.Response != nil && response.Response.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s: %w", r.display(p), ports.ErrNotFound)
	}
	return fmt.Errorf("%s: %w", r.display(p), err)
}
