package core

import (
	"context"
	"fmt"

	"overlay/internal/cli/output"
	"overlay/internal/core/domain"
	"overlay/internal/core/template"
	"overlay/internal/ports"
)

// OverlayCommitter writes a template set to the manifest repository as a
// single commit. The steps are not transactional: a failure after blobs or
// the tree were created leaves unreferenced objects behind, which git
// garbage collection removes.
type OverlayCommitter struct {
	writer  ports.ManifestRepositoryWriter
	options domain.Options
	printer *output.Printer
}

func ProvideOverlayCommitter(
	writer ports.ManifestRepositoryWriter,
	options domain.Options,
	printer *output.Printer,
) *OverlayCommitter {
	return &OverlayCommitter{
		writer:  writer,
		options: options,
		printer: printer,
	}
}

// CommitMessage describes the overlay created by a run.
func CommitMessage(options domain.Options) string {
	return fmt.Sprintf("Create %s in namespace '%s' with image %s", options.Service, options.Namespace, options.Image())
}

// Commit creates one blob per template, layers them over the tree of the
// latest commit and advances the branch. It returns the new commit SHA.
func (c *OverlayCommitter) Commit(ctx context.Context, set *template.Set) (string, error) {
	c.printer.Info(fmt.Sprintf("Creating overlays for '%s' in GitHub repository %s...", c.options.Namespace, c.options.ClusterRepo))

	branch := c.options.Branch
	if branch == "" {
		defaultBranch, err := c.writer.DefaultBranch(ctx)
		if err != nil {
			return "", fmt.Errorf("failed to determine default branch: %w", err)
		}
		branch = defaultBranch
	}

	latestCommit, err := c.writer.LatestCommit(ctx, branch)
	if err != nil {
		return "", fmt.Errorf("failed to read latest commit of %s: %w", branch, err)
	}

	baseTree, err := c.writer.TreeOf(ctx, latestCommit)
	if err != nil {
		return "", fmt.Errorf("failed to read tree of commit %s: %w", latestCommit, err)
	}

	entries := make([]ports.TreeEntry, 0, set.Len())
	for _, t := range set.Templates() {
		content, err := template.Render(t)
		if err != nil {
			return "", err
		}
		sha, err := c.writer.CreateBlob(ctx, content)
		if err != nil {
			return "", fmt.Errorf("failed to create blob for %s: %w", t.Path(), err)
		}
		c.printer.Step(t.Path())
		entries = append(entries, ports.TreeEntry{Path: t.Path(), BlobSHA: sha})
	}

	tree, err := c.writer.CreateTree(ctx, baseTree, entries)
	if err != nil {
		return "", fmt.Errorf("failed to create tree: %w", err)
	}

	commit, err := c.writer.CreateCommit(ctx, CommitMessage(c.options), tree, latestCommit)
	if err != nil {
		return "", fmt.Errorf("failed to create commit: %w", err)
	}

	if err := c.writer.UpdateRef(ctx, branch, commit); err != nil {
		return "", fmt.Errorf("failed to update %s to %s: %w", branch, commit, err)
	}

	return commit, nil
}
