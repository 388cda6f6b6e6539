package template

import (
	"encoding/json"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch/v5"
	"k8s.io/apimachinery/pkg/runtime/schema"
)

const (
	IngressFileName = "ingress"
	// DefaultIngressAPIVersion is used when the base ingress does not state
	// its apiVersion.
	DefaultIngressAPIVersion = "networking.k8s.io/v1"
)

// PatchOperation is a single RFC 6902 operation.
type PatchOperation struct {
	Op    string `yaml:"op" json:"op"`
	Path  string `yaml:"path" json:"path"`
	Value any    `yaml:"value" json:"value"`
}

// IngressPatch prefixes every base ingress host with the overlay namespace.
// Its manifest is a list of JSON patch operations rather than a map.
type IngressPatch struct {
	overlay
	hosts        []string
	groupVersion schema.GroupVersion
}

// NewIngressPatch creates the patch for the hosts of the base ingress of
// service. Empty hosts keep their rule index but produce no operation.
// apiVersion is the apiVersion of the base ingress and selects the patch
// target; an unparsable or empty value falls back to DefaultIngressAPIVersion.
func NewIngressPatch(service, namespace string, hosts []string, apiVersion string) *IngressPatch {
	gv, err := schema.ParseGroupVersion(apiVersion)
	if err != nil || gv.Empty() {
		gv, _ = schema.ParseGroupVersion(DefaultIngressAPIVersion)
	}
	return &IngressPatch{
		overlay:      overlay{service: service, namespace: namespace},
		hosts:        append([]string{}, hosts...),
		groupVersion: gv,
	}
}

func (i *IngressPatch) Kind() Kind {
	return KindIngressPatch
}

func (i *IngressPatch) FileName() string {
	return IngressFileName
}

func (i *IngressPatch) Path() string {
	return joinPath(i.Directory(), i.FileName())
}

// GroupVersion is the API group and version of the patched ingress.
func (i *IngressPatch) GroupVersion() schema.GroupVersion {
	return i.groupVersion
}

func (i *IngressPatch) Operations() []PatchOperation {
	operations := []PatchOperation{}
	for index, host := range i.hosts {
		if host == "" {
			continue
		}
		operations = append(operations, PatchOperation{
			Op:    "replace",
			Path:  fmt.Sprintf("/spec/rules/%d/host", index),
			Value: i.namespace + "." + host,
		})
	}
	return operations
}

func (i *IngressPatch) Manifest() any {
	return i.Operations()
}

// Validate checks that the operations form a well formed JSON patch.
func (i *IngressPatch) Validate() error {
	raw, err := json.Marshal(i.Operations())
	if err != nil {
		return fmt.Errorf("failed to encode ingress patch for %s: %w", i.service, err)
	}
	patch, err := jsonpatch.DecodePatch(raw)
	if err != nil {
		return fmt.Errorf("invalid ingress patch for %s: %w", i.service, err)
	}
	for _, operation := range patch {
		if _, err := operation.Path(); err != nil {
			return fmt.Errorf("invalid ingress patch for %s: %w", i.service, err)
		}
	}
	return nil
}
