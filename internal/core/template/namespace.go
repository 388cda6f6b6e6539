package template

const NamespaceFileName = "namespace"

type NamespaceManifest struct {
	Kind       string   `yaml:"kind"`
	APIVersion string   `yaml:"apiVersion"`
	Metadata   metadata `yaml:"metadata"`
}

// Namespace creates the overlay namespace. It lives next to the primary
// service's kustomization.
type Namespace struct {
	overlay
}

func NewNamespace(service, namespace string) *Namespace {
	return &Namespace{overlay{service: service, namespace: namespace}}
}

func (n *Namespace) Kind() Kind {
	return KindNamespace
}

func (n *Namespace) FileName() string {
	return NamespaceFileName
}

func (n *Namespace) Path() string {
	return joinPath(n.Directory(), n.FileName())
}

func (n *Namespace) Manifest() any {
	return NamespaceManifest{
		Kind:       "Namespace",
		APIVersion: "v1",
		Metadata:   metadata{Name: n.namespace},
	}
}
