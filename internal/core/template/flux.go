package template

const FluxFileName = ".flux"

// Generator is one entry of the Flux commandUpdated generators. Seeds read
// from an existing manifest may carry keys besides command.
type Generator map[string]any

// CommandGenerator returns a generator running command.
func CommandGenerator(command string) Generator {
	return Generator{"command": command}
}

type FluxManifest struct {
	Version        int            `yaml:"version"`
	CommandUpdated CommandUpdated `yaml:"commandUpdated"`
}

type CommandUpdated struct {
	Generators []Generator `yaml:"generators"`
}

// Flux is the repository root .flux.yaml listing the commands that build
// every overlay.
type Flux struct {
	service    string
	namespace  string
	generators []Generator
}

func NewFlux(service, namespace string, generators []Generator) *Flux {
	return &Flux{
		service:    service,
		namespace:  namespace,
		generators: append([]Generator{}, generators...),
	}
}

func (f *Flux) Kind() Kind {
	return KindFlux
}

func (f *Flux) Service() string {
	return f.service
}

func (f *Flux) Namespace() string {
	return f.namespace
}

func (f *Flux) FileName() string {
	return FluxFileName
}

func (f *Flux) Directory() []string {
	return []string{}
}

func (f *Flux) Path() string {
	return joinPath(f.Directory(), f.FileName())
}

func (f *Flux) Generators() []Generator {
	return f.generators
}

func (f *Flux) Manifest() any {
	return FluxManifest{
		Version:        1,
		CommandUpdated: CommandUpdated{Generators: f.generators},
	}
}
