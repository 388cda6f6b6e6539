package core

import (
	"context"
	"path"

	"overlay/internal/core/template"
	"overlay/internal/ports"

	networkingv1 "k8s.io/api/networking/v1"
	"sigs.k8s.io/yaml"
)

// BaseIngress is what the overlay needs to know about a service's base ingress.
type BaseIngress struct {
	APIVersion string
	Hosts      []string
}

// IngressHostResolver reads the hosts of the base ingress of a service.
type IngressHostResolver struct {
	repository ports.ManifestRepository
}

func ProvideIngressHostResolver(repository ports.ManifestRepository) *IngressHostResolver {
	return &IngressHostResolver{repository: repository}
}

// Resolve reads <service>/base/ingress.yaml. Any failure to read or parse it
// yields an empty BaseIngress.
func (r *IngressHostResolver) Resolve(ctx context.Context, service string) BaseIngress {
	content, err := r.repository.ReadFile(ctx, path.Join(BaseDirectory(service), template.IngressFileName+".yaml"))
	if err != nil {
		return BaseIngress{}
	}
	return parseBaseIngress(content)
}

func parseBaseIngress(content []byte) BaseIngress {
	var ingress networkingv1.Ingress
	if err := yaml.Unmarshal(content, &ingress); err != nil {
		return BaseIngress{}
	}

	hosts := make([]string, 0, len(ingress.Spec.Rules))
	for _, rule := range ingress.Spec.Rules {
		hosts = append(hosts, rule.Host)
	}
	return BaseIngress{APIVersion: ingress.APIVersion, Hosts: hosts}
}
