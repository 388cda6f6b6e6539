package ports

// KustomizeClient renders overlay directories with the kustomize build tool.
type KustomizeClient interface {
	// Build runs the build for the kustomization in dir and returns the
	// rendered multi-document YAML.
	Build(dir string) ([]byte, error)
}
