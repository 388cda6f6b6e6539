package core

import (
	"context"
	"fmt"

	"overlay/internal/cli/output"
	"overlay/internal/core/template"
	"overlay/internal/ports"

	"gopkg.in/yaml.v3"
	"k8s.io/apimachinery/pkg/api/equality"
)

// FluxGeneratorMerger builds the .flux.yaml of a run from the manifest
// already committed to the repository root.
type FluxGeneratorMerger struct {
	repository ports.ManifestRepository
	printer    *output.Printer
}

func ProvideFluxGeneratorMerger(repository ports.ManifestRepository, printer *output.Printer) *FluxGeneratorMerger {
	return &FluxGeneratorMerger{repository: repository, printer: printer}
}

// Seed returns the generators of the existing .flux.yaml. A missing or
// unparsable file yields no generators.
func (m *FluxGeneratorMerger) Seed(ctx context.Context) []template.Generator {
	content, err := m.repository.ReadFile(ctx, template.FluxFileName+".yaml")
	if err != nil {
		return nil
	}

	var manifest template.FluxManifest
	if err := yaml.Unmarshal(content, &manifest); err != nil {
		m.printer.Warning(fmt.Sprintf("ignoring unparsable %s.yaml: %v", template.FluxFileName, err))
		return nil
	}
	return manifest.CommandUpdated.Generators
}

// Build returns the Flux template listing one build command per known
// service on top of the existing generators.
func (m *FluxGeneratorMerger) Build(ctx context.Context, topology Topology, namespace string) *template.Flux {
	m.printer.Info("Creating Flux generators...")
	generators := MergeGenerators(m.Seed(ctx), topology.Services, namespace)
	return template.NewFlux(topology.Target, namespace, generators)
}

// MergeGenerators appends a kustomize build command for every service to
// seed and drops structurally equal duplicates, keeping the first occurrence.
func MergeGenerators(seed []template.Generator, services []string, namespace string) []template.Generator {
	combined := append([]template.Generator{}, seed...)
	for _, service := range services {
		combined = append(combined, template.CommandGenerator(BuildCommand(service, namespace)))
	}

	unique := make([]template.Generator, 0, len(combined))
	for _, candidate := range combined {
		duplicate := false
		for _, kept := range unique {
			if equality.Semantic.DeepEqual(kept, candidate) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			unique = append(unique, candidate)
		}
	}
	return unique
}

// BuildCommand is the command Flux runs to render the overlay of service.
func BuildCommand(service, namespace string) string {
	return fmt.Sprintf("kustomize build ./%s/overlays/%s", service, namespace)
}
