package template

const (
	KustomizationFileName = "kustomization"
	kustomizeAPIVersion   = "kustomize.config.k8s.io/v1beta1"
	baseReference         = "../../base/"
)

// KustomizationManifest is the subset of the kustomization.yaml schema the
// overlays use.
type KustomizationManifest struct {
	Kind            string          `yaml:"kind"`
	APIVersion      string          `yaml:"apiVersion"`
	Namespace       string          `yaml:"namespace"`
	Bases           []string        `yaml:"bases"`
	Resources       []string        `yaml:"resources"`
	Patches         []string        `yaml:"patches"`
	PatchesJson6902 []JSON6902Patch `yaml:"patchesJson6902"`
	Images          []Image         `yaml:"images"`
}

// JSON6902Patch references a file of JSON patch operations and the resource
// they apply to.
type JSON6902Patch struct {
	Target PatchTarget `yaml:"target"`
	Path   string      `yaml:"path"`
}

type PatchTarget struct {
	Kind    string `yaml:"kind"`
	Group   string `yaml:"group"`
	Version string `yaml:"version"`
	Name    string `yaml:"name"`
}

// Image overrides the tag of a container image.
type Image struct {
	Name   string `yaml:"name"`
	NewTag string `yaml:"newTag"`
}

type KustomizationOption func(*Kustomization)

// WithImage makes the kustomization override the tag of image.
func WithImage(name, tag string) KustomizationOption {
	return func(k *Kustomization) {
		k.images = append(k.images, Image{Name: name, NewTag: tag})
	}
}

// Kustomization aggregates the templates of one overlay directory.
type Kustomization struct {
	overlay
	resources       []string
	patches         []string
	patchesJson6902 []JSON6902Patch
	images          []Image
}

// NewKustomization derives the resource and patch lists from the templates
// already added to set for the same overlay directory. It must therefore be
// created after its siblings.
func NewKustomization(service, namespace string, set *Set, opts ...KustomizationOption) *Kustomization {
	k := &Kustomization{
		overlay:         overlay{service: service, namespace: namespace},
		resources:       []string{},
		patches:         []string{},
		patchesJson6902: []JSON6902Patch{},
		images:          []Image{},
	}
	for _, opt := range opts {
		opt(k)
	}

	for _, sibling := range set.ForService(service) {
		switch t := sibling.(type) {
		case *Namespace:
			k.resources = append(k.resources, FileNameWithExtension(t))
		case *ServiceStub:
			k.patches = append(k.patches, FileNameWithExtension(t))
		case *IngressPatch:
			gv := t.GroupVersion()
			k.patchesJson6902 = append(k.patchesJson6902, JSON6902Patch{
				Target: PatchTarget{
					Kind:    "Ingress",
					Group:   gv.Group,
					Version: gv.Version,
					Name:    service,
				},
				Path: FileNameWithExtension(t),
			})
		}
	}

	return k
}

func (k *Kustomization) Kind() Kind {
	return KindKustomization
}

func (k *Kustomization) FileName() string {
	return KustomizationFileName
}

func (k *Kustomization) Path() string {
	return joinPath(k.Directory(), k.FileName())
}

func (k *Kustomization) Manifest() any {
	return KustomizationManifest{
		Kind:            "Kustomization",
		APIVersion:      kustomizeAPIVersion,
		Namespace:       k.namespace,
		Bases:           []string{baseReference},
		Resources:       k.resources,
		Patches:         k.patches,
		PatchesJson6902: k.patchesJson6902,
		Images:          k.images,
	}
}
