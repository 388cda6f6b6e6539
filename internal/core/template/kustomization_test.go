package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKustomization_PrimaryWithImageAndNamespace(t *testing.T) {
	set := NewSet()
	set.Add(NewNamespace("checkout", "pr-42"))
	set.Add(NewIngressPatch("checkout", "pr-42", []string{"checkout.example.com"}, "extensions/v1beta1"))

	k := NewKustomization("checkout", "pr-42", set, WithImage("registry/svc", "abc1234"))

	assert.Equal(t, KustomizationManifest{
		Kind:       "Kustomization",
		APIVersion: "kustomize.config.k8s.io/v1beta1",
		Namespace:  "pr-42",
		Bases:      []string{"../../base/"},
		Resources:  []string{"namespace.yaml"},
		Patches:    []string{},
		PatchesJson6902: []JSON6902Patch{
			{
				Target: PatchTarget{Kind: "Ingress", Group: "extensions", Version: "v1beta1", Name: "checkout"},
				Path:   "ingress.yaml",
			},
		},
		Images: []Image{{Name: "registry/svc", NewTag: "abc1234"}},
	}, k.Manifest())
}

func TestKustomization_WithoutImageReferencesServiceStub(t *testing.T) {
	set := NewSet()
	set.Add(NewIngressPatch("cart", "pr-42", nil, ""))
	set.Add(NewServiceStub("cart", "pr-42"))

	k := NewKustomization("cart", "pr-42", set)

	manifest := k.Manifest().(KustomizationManifest)
	assert.Equal(t, []string{"service.yaml"}, manifest.Patches)
	assert.Empty(t, manifest.Resources)
	assert.Empty(t, manifest.Images)
	require.Len(t, manifest.PatchesJson6902, 1)
	assert.Equal(t, "cart", manifest.PatchesJson6902[0].Target.Name)
	assert.Equal(t, "networking.k8s.io", manifest.PatchesJson6902[0].Target.Group)
}

func TestKustomization_IgnoresTemplatesOfOtherServices(t *testing.T) {
	set := NewSet()
	set.Add(NewIngressPatch("cart", "pr-42", nil, ""))
	set.Add(NewServiceStub("cart", "pr-42"))

	k := NewKustomization("payments", "pr-42", set)

	manifest := k.Manifest().(KustomizationManifest)
	assert.Empty(t, manifest.Patches)
	assert.Empty(t, manifest.PatchesJson6902)
}

func TestKustomization_IgnoresSiblingsAddedLater(t *testing.T) {
	set := NewSet()
	k := NewKustomization("checkout", "pr-42", set)
	set.Add(NewNamespace("checkout", "pr-42"))

	manifest := k.Manifest().(KustomizationManifest)
	assert.Empty(t, manifest.Resources)
}

func TestRender_KustomizationKeyOrder(t *testing.T) {
	set := NewSet()
	set.Add(NewServiceStub("cart", "pr-42"))

	rendered, err := Render(NewKustomization("cart", "pr-42", set))

	require.NoError(t, err)
	assert.Equal(t, `kind: Kustomization
apiVersion: kustomize.config.k8s.io/v1beta1
namespace: pr-42
bases:
  - ../../base/
resources: []
patches:
  - service.yaml
patchesJson6902: []
images: []
`, string(rendered))
}
