package core

import (
	"context"
	"errors"
	"fmt"
	"path"
	"path/filepath"

	"overlay/internal/cli/output"
	"overlay/internal/core/domain"
	"overlay/internal/core/template"
	"overlay/internal/ports"
)

// WorkDirMarker is written into every work directory a built preview uses.
// Only directories carrying it are wiped by later previews.
const WorkDirMarker = ".overlay-preview"

// ErrWorkDirInUse is returned when the configured work directory holds files
// that were not written by a preview.
var ErrWorkDirInUse = errors.New("work directory is not empty and was not created by a preview")

// PreviewRenderer shows a template set without committing it.
type PreviewRenderer struct {
	repository ports.ManifestRepository
	index      *ManifestIndex
	fileSystem ports.FileSystem
	kustomize  ports.KustomizeClient
	options    domain.Options
	printer    *output.Printer
}

func ProvidePreviewRenderer(
	repository ports.ManifestRepository,
	index *ManifestIndex,
	fileSystem ports.FileSystem,
	kustomize ports.KustomizeClient,
	options domain.Options,
	printer *output.Printer,
) *PreviewRenderer {
	return &PreviewRenderer{
		repository: repository,
		index:      index,
		fileSystem: fileSystem,
		kustomize:  kustomize,
		options:    options,
		printer:    printer,
	}
}

// Print writes every template as a YAML document.
func (r *PreviewRenderer) Print(set *template.Set) error {
	if !r.announce(set) {
		return nil
	}
	for _, t := range set.Templates() {
		if err := r.printDocument(t); err != nil {
			return err
		}
	}
	r.printer.Println()
	return nil
}

// Build materializes the base manifests of services and the templates in
// the work directory, then prints the kustomize build of every overlay
// directory. The Flux manifest, having no overlay, is printed as is.
func (r *PreviewRenderer) Build(ctx context.Context, set *template.Set, services []string) error {
	if !r.announce(set) {
		return nil
	}

	workDir, cleanup, err := r.prepareWorkDir()
	if err != nil {
		return err
	}
	defer cleanup()

	for _, service := range services {
		for _, file := range r.index.BaseFiles(ctx, service) {
			repositoryPath := path.Join(BaseDirectory(service), file)
			content, err := r.repository.ReadFile(ctx, repositoryPath)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", repositoryPath, err)
			}
			if err := r.fileSystem.WriteFile(filepath.Join(workDir, filepath.FromSlash(repositoryPath)), content, ports.ReadWrite); err != nil {
				return fmt.Errorf("failed to write %s: %w", repositoryPath, err)
			}
		}
	}

	for _, t := range set.Templates() {
		content, err := template.Render(t)
		if err != nil {
			return err
		}
		if err := r.fileSystem.WriteFile(filepath.Join(workDir, filepath.FromSlash(t.Path())), content, ports.ReadWrite); err != nil {
			return fmt.Errorf("failed to write %s: %w", t.Path(), err)
		}
	}

	if flux, ok := set.Find(template.KindFlux); ok {
		if err := r.printDocument(flux); err != nil {
			return err
		}
	}

	for _, dir := range set.Directories() {
		if len(dir) == 0 {
			continue
		}
		built, err := r.kustomize.Build(filepath.Join(append([]string{workDir}, dir...)...))
		if err != nil {
			return err
		}
		r.printer.Println("---")
		r.printer.Println(string(built))
	}

	r.printer.Println()
	return nil
}

// prepareWorkDir returns an empty directory to build in. Without a configured
// work directory a fresh temporary one is created and removed by cleanup. A
// configured directory is only wiped when it carries the marker of an earlier
// preview; any other non-empty directory is refused.
func (r *PreviewRenderer) prepareWorkDir() (string, func(), error) {
	if r.options.WorkDir == "" {
		workDir, err := r.fileSystem.MkdirTemp("overlay-" + r.options.Namespace + "-")
		if err != nil {
			return "", nil, err
		}
		cleanup := func() {
			if err := r.fileSystem.RemoveAll(workDir); err != nil {
				r.printer.Warning(fmt.Sprintf("failed to remove work directory %s: %v", workDir, err))
			}
		}
		return workDir, cleanup, nil
	}

	workDir := r.options.WorkDir
	exists, err := r.fileSystem.FileExists(workDir)
	if err != nil {
		return "", nil, fmt.Errorf("failed to inspect work directory %s: %w", workDir, err)
	}
	if exists {
		if err := r.clearWorkDir(workDir); err != nil {
			return "", nil, err
		}
	}

	if err := r.fileSystem.MkdirAll(workDir, ports.ReadWriteExecute); err != nil {
		return "", nil, fmt.Errorf("failed to create work directory %s: %w", workDir, err)
	}
	if err := r.fileSystem.WriteFile(filepath.Join(workDir, WorkDirMarker), nil, ports.ReadWrite); err != nil {
		return "", nil, fmt.Errorf("failed to mark work directory %s: %w", workDir, err)
	}
	return workDir, func() {}, nil
}

func (r *PreviewRenderer) clearWorkDir(workDir string) error {
	marked, err := r.fileSystem.FileExists(filepath.Join(workDir, WorkDirMarker))
	if err != nil {
		return fmt.Errorf("failed to inspect work directory %s: %w", workDir, err)
	}
	if !marked {
		empty, err := r.fileSystem.IsEmptyDir(workDir)
		if err != nil {
			return fmt.Errorf("failed to inspect work directory %s: %w", workDir, err)
		}
		if !empty {
			return fmt.Errorf("%w: %s", ErrWorkDirInUse, workDir)
		}
		return nil
	}
	if err := r.fileSystem.RemoveAll(workDir); err != nil {
		return fmt.Errorf("failed to clean work directory %s: %w", workDir, err)
	}
	return nil
}

func (r *PreviewRenderer) announce(set *template.Set) bool {
	if set.Len() == 0 {
		r.printer.Info("No yaml files to print!")
		return false
	}
	r.printer.Info("Printing yaml files...")
	r.printer.Println()
	return true
}

func (r *PreviewRenderer) printDocument(t template.Template) error {
	content, err := template.Render(t)
	if err != nil {
		return err
	}
	r.printer.Println("# " + t.Path())
	r.printer.Println(string(content))
	return nil
}
