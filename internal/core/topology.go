package core

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"overlay/internal/ports"
)

// UnknownServiceError is returned when the requested service has no
// directory in the manifest repository.
type UnknownServiceError struct {
	Service string
	Known   []string
}

func (e *UnknownServiceError) Error() string {
	return fmt.Sprintf("unknown service '%s'. Please choose one of %v", e.Service, e.Known)
}

// Topology is the set of services known to the manifest repository, in
// listing order, together with the service being deployed.
type Topology struct {
	Target   string
	Services []string
}

// Supporting returns every known service except the target.
func (t Topology) Supporting() []string {
	return SupportingServices(t.Services, t.Target)
}

// SupportingServices returns services without target, preserving order.
func SupportingServices(services []string, target string) []string {
	supporting := make([]string, 0, len(services))
	for _, s := range services {
		if s != target {
			supporting = append(supporting, s)
		}
	}
	return supporting
}

// ResolveTopology lists the top level directories of the repository as the
// known services. Hidden directories such as .github are not services.
func ResolveTopology(ctx context.Context, repository ports.ManifestRepository, target string) (Topology, error) {
	dirs, err := repository.ListDirectories(ctx, "")
	if err != nil {
		return Topology{}, fmt.Errorf("failed to list services: %w", err)
	}

	services := make([]string, 0, len(dirs))
	for _, d := range dirs {
		if !strings.HasPrefix(d, ".") {
			services = append(services, d)
		}
	}

	if !slices.Contains(services, target) {
		return Topology{}, &UnknownServiceError{Service: target, Known: services}
	}

	return Topology{Target: target, Services: services}, nil
}
