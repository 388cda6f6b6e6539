// Package template holds the overlay documents generated for a namespace:
// the Namespace, the ExternalName service stub, the ingress host patch, the
// kustomization aggregating them and the Flux automation manifest.
package template

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	OverlaysDir   = "overlays"
	fileExtension = ".yaml"
)

// Kind identifies a template variant.
type Kind int

const (
	KindNamespace Kind = iota
	KindServiceStub
	KindIngressPatch
	KindKustomization
	KindFlux
)

func (k Kind) String() string {
	switch k {
	case KindNamespace:
		return "Namespace"
	case KindServiceStub:
		return "ServiceStub"
	case KindIngressPatch:
		return "IngressPatch"
	case KindKustomization:
		return "Kustomization"
	case KindFlux:
		return "Flux"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Template is a generated overlay document together with its location in
// the manifest repository.
type Template interface {
	Kind() Kind
	Service() string
	Namespace() string
	// FileName is the file name without extension.
	FileName() string
	// Directory is the output directory as path segments relative to the
	// repository root.
	Directory() []string
	// Path is the slash separated output path relative to the repository root.
	Path() string
	// Manifest returns the YAML serializable document.
	Manifest() any
}

// IsKind reports whether t is of the given variant.
func IsKind(t Template, kind Kind) bool {
	return t != nil && t.Kind() == kind
}

// FileNameWithExtension returns the file name the template is written to.
func FileNameWithExtension(t Template) string {
	return t.FileName() + fileExtension
}

// Render serializes the manifest of t as a YAML document.
func Render(t Template) ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(t.Manifest()); err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", t.Path(), err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", t.Path(), err)
	}
	return buf.Bytes(), nil
}

// overlay carries the attributes shared by every template living in
// <service>/overlays/<namespace>.
type overlay struct {
	service   string
	namespace string
}

func (o overlay) Service() string {
	return o.service
}

func (o overlay) Namespace() string {
	return o.namespace
}

func (o overlay) Directory() []string {
	return []string{o.service, OverlaysDir, o.namespace}
}

func joinPath(directory []string, fileName string) string {
	return strings.Join(append(append([]string{}, directory...), fileName+fileExtension), "/")
}

type metadata struct {
	Name string `yaml:"name"`
}
