package core

import (
	"context"
	"testing"

	"overlay/internal/core/template"

	"github.com/stretchr/testify/assert"
)

func TestIngressHostResolver_ResolvesHostsAndAPIVersion(t *testing.T) {
	resolver := ProvideIngressHostResolver(newTestRepository())

	ingress := resolver.Resolve(context.Background(), "cart")

	assert.Equal(t, "extensions/v1beta1", ingress.APIVersion)
	assert.Equal(t, []string{"cart.example.com", "cart.internal.example.com"}, ingress.Hosts)
}

func TestIngressHostResolver_MissingIngressYieldsNoHosts(t *testing.T) {
	resolver := ProvideIngressHostResolver(newTestRepository())

	ingress := resolver.Resolve(context.Background(), "worker")

	assert.Equal(t, BaseIngress{}, ingress)
}

func TestIngressHostResolver_UnparsableIngressYieldsNoHosts(t *testing.T) {
	repository := newTestRepository()
	repository.Files["worker/base/ingress.yaml"] = "spec: [this is: not an ingress"
	resolver := ProvideIngressHostResolver(repository)

	ingress := resolver.Resolve(context.Background(), "worker")

	assert.Empty(t, ingress.Hosts)
}

func TestIngressHostResolver_PatchForNamespace(t *testing.T) {
	repository := newTestRepository()
	repository.Files["api/base/ingress.yaml"] = "apiVersion: networking.k8s.io/v1\nkind: Ingress\nspec:\n  rules:\n    - host: api.example.com\n"
	resolver := ProvideIngressHostResolver(repository)

	ingress := resolver.Resolve(context.Background(), "api")
	patch := template.NewIngressPatch("api", "pr-42", ingress.Hosts, ingress.APIVersion)

	assert.Equal(t, []template.PatchOperation{
		{Op: "replace", Path: "/spec/rules/0/host", Value: "pr-42.api.example.com"},
	}, patch.Operations())
}
