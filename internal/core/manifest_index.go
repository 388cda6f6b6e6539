package core

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"overlay/internal/cli/output"
	"overlay/internal/core/domain"
	"overlay/internal/core/template"
	"overlay/internal/ports"
)

const BaseDir = "base"

// ManifestIndex answers which base and overlay manifests a service has.
// Listings are fetched once per service and location for the lifetime of
// the index. A failed listing counts as no manifests; failures other than a
// missing directory are reported once as a warning.
type ManifestIndex struct {
	repository ports.ManifestRepository
	printer    *output.Printer
	namespace  string
	listings   map[string][]string
}

func ProvideManifestIndex(
	repository ports.ManifestRepository,
	options domain.Options,
	printer *output.Printer,
) *ManifestIndex {
	return &ManifestIndex{
		repository: repository,
		printer:    printer,
		namespace:  options.Namespace,
		listings:   make(map[string][]string),
	}
}

// BaseDirectory returns the repository path of the base manifests of service.
func BaseDirectory(service string) string {
	return path.Join(service, BaseDir)
}

// OverlayDirectory returns the repository path of the overlay of service.
func OverlayDirectory(service, namespace string) string {
	return path.Join(service, template.OverlaysDir, namespace)
}

// BaseFiles returns the file names in the base directory of service.
func (i *ManifestIndex) BaseFiles(ctx context.Context, service string) []string {
	return i.list(ctx, BaseDirectory(service))
}

// BaseManifestNames returns the manifest kinds in the base of service.
func (i *ManifestIndex) BaseManifestNames(ctx context.Context, service string) []string {
	return manifestNames(i.BaseFiles(ctx, service))
}

// OverlayManifestNames returns the manifest kinds already present in the
// overlay of service for the run namespace.
func (i *ManifestIndex) OverlayManifestNames(ctx context.Context, service string) []string {
	return manifestNames(i.list(ctx, OverlayDirectory(service, i.namespace)))
}

func (i *ManifestIndex) list(ctx context.Context, dir string) []string {
	if files, ok := i.listings[dir]; ok {
		return files
	}

	files, err := i.repository.ListFiles(ctx, dir)
	if err != nil {
		if !errors.Is(err, ports.ErrNotFound) {
			i.printer.Warning(fmt.Sprintf("could not list %s, assuming it is empty: %v", dir, err))
		}
		files = []string{}
	}
	i.listings[dir] = files
	return files
}

// manifestNames strips the YAML extension from file names.
func manifestNames(files []string) []string {
	names := make([]string, 0, len(files))
	for _, f := range files {
		switch ext := path.Ext(f); ext {
		case ".yaml", ".yml":
			names = append(names, strings.TrimSuffix(f, ext))
		default:
			names = append(names, f)
		}
	}
	return names
}
