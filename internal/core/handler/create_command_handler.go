package handler

import (
	"context"
	"fmt"

	"overlay/internal/cli/output"
	"overlay/internal/core"
	"overlay/internal/core/domain"
	"overlay/internal/ports"
)

type CreateCommandHandler struct {
	repository ports.ManifestRepository
	planner    *core.OverlayPlanner
	flux       *core.FluxGeneratorMerger
	committer  *core.OverlayCommitter
	preview    *core.PreviewRenderer
	options    domain.Options
	printer    *output.Printer
}

func ProvideCreateCommandHandler(
	repository ports.ManifestRepository,
	planner *core.OverlayPlanner,
	flux *core.FluxGeneratorMerger,
	committer *core.OverlayCommitter,
	preview *core.PreviewRenderer,
	options domain.Options,
	printer *output.Printer,
) CreateCommandHandler {
	return CreateCommandHandler{
		repository: repository,
		planner:    planner,
		flux:       flux,
		committer:  committer,
		preview:    preview,
		options:    options,
		printer:    printer,
	}
}

// Handle plans the overlays of the configured service and either commits
// them or previews them.
func (h *CreateCommandHandler) Handle(ctx context.Context) error {
	h.printer.Info("Collecting known services...")
	topology, err := core.ResolveTopology(ctx, h.repository, h.options.Service)
	if err != nil {
		return err
	}

	h.printer.Info(fmt.Sprintf("Planning overlays for namespace '%s'...", h.options.Namespace))
	set := h.planner.Plan(ctx, topology)
	if h.options.Flux {
		set.Add(h.flux.Build(ctx, topology, h.options.Namespace))
	}

	if err := set.Validate(); err != nil {
		return fmt.Errorf("generated overlays are invalid: %w", err)
	}

	if h.options.DryRun {
		if h.options.Built {
			return h.preview.Build(ctx, set, topology.Services)
		}
		return h.preview.Print(set)
	}

	sha, err := h.committer.Commit(ctx, set)
	if err != nil {
		return err
	}
	h.printer.Success(fmt.Sprintf("Committed %d %s to %s as %s",
		set.Len(), output.Plural(set.Len(), "manifest", "manifests"), h.options.ClusterRepo, sha))
	return nil
}
