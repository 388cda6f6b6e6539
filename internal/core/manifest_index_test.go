package core

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestManifestIndex_BaseManifestNamesStripsExtensions(t *testing.T) {
	repository := newTestRepository()
	repository.Files["worker/base/config.yml"] = "kind: ConfigMap\n"
	repository.Files["worker/base/README"] = "docs\n"
	printer := newTestPrinter()
	index := ProvideManifestIndex(repository, testOptions(), printer.Printer)

	names := index.BaseManifestNames(context.Background(), "worker")

	assert.Equal(t, []string{"README", "config", "deployment"}, names)
}

func TestManifestIndex_ListingsAreMemoized(t *testing.T) {
	repository := newTestRepository()
	printer := newTestPrinter()
	index := ProvideManifestIndex(repository, testOptions(), printer.Printer)
	ctx := context.Background()

	index.BaseManifestNames(ctx, "cart")
	index.BaseFiles(ctx, "cart")
	index.OverlayManifestNames(ctx, "cart")
	index.OverlayManifestNames(ctx, "cart")

	assert.Equal(t, 1, repository.Calls["cart/base"])
	assert.Equal(t, 1, repository.Calls["cart/overlays/pr-42"])
}

func TestManifestIndex_MissingOverlayIsEmpty(t *testing.T) {
	repository := newTestRepository()
	printer := newTestPrinter()
	index := ProvideManifestIndex(repository, testOptions(), printer.Printer)

	names := index.OverlayManifestNames(context.Background(), "cart")

	assert.Empty(t, names)
	assert.Empty(t, printer.errOut.String())
}

func TestManifestIndex_FailureIsWarnedOnce(t *testing.T) {
	repository := newTestRepository()
	repository.Fail("cart/base", errors.New("connection reset"))
	printer := newTestPrinter()
	index := ProvideManifestIndex(repository, testOptions(), printer.Printer)

	assert.Empty(t, index.BaseManifestNames(context.Background(), "cart"))
	assert.Empty(t, index.BaseManifestNames(context.Background(), "cart"))

	assert.Equal(t, "! could not list cart/base, assuming it is empty: connection reset\n", printer.errOut.String())
}

func TestOverlayDirectory(t *testing.T) {
	assert.Equal(t, "cart/overlays/pr-42", OverlayDirectory("cart", "pr-42"))
	assert.Equal(t, "cart/base", BaseDirectory("cart"))
}
