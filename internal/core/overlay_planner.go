package core

import (
	"context"
	"fmt"
	"slices"

	"overlay/internal/cli/output"
	"overlay/internal/core/domain"
	"overlay/internal/core/template"
)

// OverlayPlanner decides which overlay templates a run must generate.
type OverlayPlanner struct {
	index   *ManifestIndex
	ingress *IngressHostResolver
	options domain.Options
	printer *output.Printer
}

func ProvideOverlayPlanner(
	index *ManifestIndex,
	ingress *IngressHostResolver,
	options domain.Options,
	printer *output.Printer,
) *OverlayPlanner {
	return &OverlayPlanner{
		index:   index,
		ingress: ingress,
		options: options,
		printer: printer,
	}
}

// Plan builds the templates for every supporting service without an
// overlay in the namespace, the namespace itself when no existing overlay
// declares it, and the overlay of the target service.
func (p *OverlayPlanner) Plan(ctx context.Context, topology Topology) *template.Set {
	set := template.NewSet()
	for _, service := range topology.Supporting() {
		p.planSupporting(ctx, set, service)
	}
	p.planNamespace(ctx, set, topology)
	p.planPrimary(ctx, set, topology.Target)
	return set
}

func (p *OverlayPlanner) planSupporting(ctx context.Context, set *template.Set, service string) {
	if len(p.index.OverlayManifestNames(ctx, service)) > 0 {
		p.printer.Step(fmt.Sprintf("Using existing manifests for %s", service))
		return
	}

	p.printer.Step(fmt.Sprintf("Creating %s manifests pointing to %s.default.svc.cluster.local...", service, service))

	if p.includesService(ctx, service) {
		set.Add(p.ingressPatch(ctx, service))
		set.Add(template.NewServiceStub(service, p.options.Namespace))
	}
	set.Add(template.NewKustomization(service, p.options.Namespace, set))
}

func (p *OverlayPlanner) planNamespace(ctx context.Context, set *template.Set, topology Topology) {
	for _, service := range topology.Supporting() {
		if slices.Contains(p.index.OverlayManifestNames(ctx, service), template.NamespaceFileName) {
			p.printer.Step(fmt.Sprintf("Using existing namespace '%s'", p.options.Namespace))
			return
		}
	}

	p.printer.Step(fmt.Sprintf("Creating namespace '%s'...", p.options.Namespace))
	set.Add(template.NewNamespace(topology.Target, p.options.Namespace))
}

func (p *OverlayPlanner) planPrimary(ctx context.Context, set *template.Set, service string) {
	p.printer.Step(fmt.Sprintf("Creating %s manifests with %s...", service, p.options.Image()))

	if p.includesService(ctx, service) {
		set.Add(p.ingressPatch(ctx, service))
	}
	set.Add(template.NewKustomization(
		service,
		p.options.Namespace,
		set,
		template.WithImage(p.options.TargetImage, p.options.Tag),
	))
}

// includesService reports whether the base of service has a Service
// manifest. It gates both the ingress patch and the service stub.
func (p *OverlayPlanner) includesService(ctx context.Context, service string) bool {
	return slices.Contains(p.index.BaseManifestNames(ctx, service), template.ServiceFileName)
}

func (p *OverlayPlanner) ingressPatch(ctx context.Context, service string) *template.IngressPatch {
	base := p.ingress.Resolve(ctx, service)
	return template.NewIngressPatch(service, p.options.Namespace, base.Hosts, base.APIVersion)
}
