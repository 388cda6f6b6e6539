//go:build wireinject
// +build wireinject

package app

import (
	"overlay/internal/adapters/command_runner"
	"overlay/internal/adapters/filesystem"
	"overlay/internal/adapters/github"
	"overlay/internal/adapters/keyring"
	"overlay/internal/adapters/kustomize"
	"overlay/internal/adapters/terminal"
	"overlay/internal/cli/output"
	"overlay/internal/core"
	"overlay/internal/core/domain"
	"overlay/internal/core/handler"
	"overlay/internal/ports"

	"github.com/google/wire"
)

var Adapter = wire.NewSet(
	command_runner.ProvideOsCommandRunner,
	wire.Bind(new(ports.CommandRunner), new(*command_runner.OsCommandRunner)),
	kustomize.ProvideKustomizeClient,
	wire.Bind(new(ports.KustomizeClient), new(*kustomize.Client)),
	filesystem.ProvideOsFileSystem,
	wire.Bind(new(ports.FileSystem), new(*filesystem.OsFileSystem)),
	keyring.ProvideZalandoKeyring,
	terminal.ProvideTerminalInput,
	wire.Bind(new(ports.TerminalInput), new(*terminal.TerminalInput)),
	output.ProvidePrinter,
)

// RepositorySet provides the GitHub backed manifest repository for both
// reading and committing.
var RepositorySet = wire.NewSet(
	github.ProvideRepository,
	wire.Bind(new(ports.ManifestRepository), new(*github.Repository)),
	wire.Bind(new(ports.ManifestRepositoryWriter), new(*github.Repository)),
)

// CoreSet provides domain/core dependencies
var CoreSet = wire.NewSet(
	core.ProvideManifestIndex,
	core.ProvideIngressHostResolver,
	core.ProvideOverlayPlanner,
	core.ProvideFluxGeneratorMerger,
	core.ProvideOverlayCommitter,
	core.ProvidePreviewRenderer,
	core.ProvideTokenStore,
)

func InjectTokenStore() *core.TokenStore {
	wire.Build(
		keyring.ProvideZalandoKeyring,
		core.ProvideTokenStore,
	)
	return &core.TokenStore{}
}

func InjectTokenCommandHandler() (handler.TokenCommandHandler, error) {
	wire.Build(
		Adapter,
		CoreSet,
		handler.ProvideTokenCommandHandler,
	)
	return handler.TokenCommandHandler{}, nil
}

func InjectCreateCommandHandler(options domain.Options) (handler.CreateCommandHandler, error) {
	wire.Build(
		Adapter,
		RepositorySet,
		CoreSet,
		handler.ProvideCreateCommandHandler,
	)
	return handler.CreateCommandHandler{}, nil
}
