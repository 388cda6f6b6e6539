package core

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"overlay/internal/core/template"
	"overlay/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func previewSet() *template.Set {
	set := template.NewSet()
	set.Add(template.NewNamespace("checkout", "pr-42"))
	set.Add(template.NewKustomization("checkout", "pr-42", set, template.WithImage("registry/svc", "abc1234")))
	return set
}

func newPreviewRenderer(t *testing.T, kustomize *testutil.MockKustomizeClient) (*PreviewRenderer, *testutil.TestFileSystem, testPrinter) {
	t.Helper()
	repository := newTestRepository()
	options := testOptions()
	options.WorkDir = "/work"
	printer := newTestPrinter()
	fileSystem := testutil.NewTestFileSystem(t)
	index := ProvideManifestIndex(repository, options, printer.Printer)
	return ProvidePreviewRenderer(repository, index, fileSystem, kustomize, options, printer.Printer), fileSystem, printer
}

func TestPreviewRenderer_PrintWritesEveryTemplate(t *testing.T) {
	sut, _, printer := newPreviewRenderer(t, new(testutil.MockKustomizeClient))

	err := sut.Print(previewSet())

	require.NoError(t, err)
	out := printer.out.String()
	assert.Contains(t, out, "Printing yaml files...")
	assert.Contains(t, out, "# checkout/overlays/pr-42/namespace.yaml\nkind: Namespace\n")
	assert.Contains(t, out, "# checkout/overlays/pr-42/kustomization.yaml\nkind: Kustomization\n")
}

func TestPreviewRenderer_PrintEmptySet(t *testing.T) {
	sut, _, printer := newPreviewRenderer(t, new(testutil.MockKustomizeClient))

	err := sut.Print(template.NewSet())

	require.NoError(t, err)
	assert.Equal(t, "* No yaml files to print!\n", printer.out.String())
}

func TestPreviewRenderer_BuildRunsKustomizePerOverlay(t *testing.T) {
	kustomize := new(testutil.MockKustomizeClient)
	sut, fileSystem, printer := newPreviewRenderer(t, kustomize)
	kustomize.On("Build", filepath.Join("/work", "checkout", "overlays", "pr-42")).Return([]byte("kind: Namespace\n"), nil)
	set := previewSet()
	set.Add(template.NewFlux("checkout", "pr-42", []template.Generator{template.CommandGenerator("kustomize build ./checkout/overlays/pr-42")}))

	err := sut.Build(context.Background(), set, []string{"checkout", "worker"})

	require.NoError(t, err)
	for _, p := range []string{
		"/work/checkout/base/deployment.yaml",
		"/work/checkout/base/ingress.yaml",
		"/work/worker/base/deployment.yaml",
		"/work/checkout/overlays/pr-42/namespace.yaml",
		"/work/checkout/overlays/pr-42/kustomization.yaml",
		"/work/.flux.yaml",
	} {
		exists, err := fileSystem.FileExists(p)
		require.NoError(t, err)
		assert.True(t, exists, p)
	}
	content, err := fileSystem.ReadFile("/work/checkout/base/ingress.yaml")
	require.NoError(t, err)
	assert.Equal(t, checkoutIngress, string(content))

	out := printer.out.String()
	assert.Contains(t, out, "# .flux.yaml\nversion: 1\n")
	assert.Contains(t, out, "---\nkind: Namespace\n")
	kustomize.AssertExpectations(t)
}

func TestPreviewRenderer_BuildClearsPreviousRun(t *testing.T) {
	kustomize := new(testutil.MockKustomizeClient)
	sut, fileSystem, _ := newPreviewRenderer(t, kustomize)
	kustomize.On("Build", mock.Anything).Return([]byte{}, nil)
	require.NoError(t, fileSystem.WriteFile("/work/"+WorkDirMarker, nil, 0))
	require.NoError(t, fileSystem.WriteFile("/work/stale/overlays/pr-42/kustomization.yaml", []byte("stale"), 0))

	err := sut.Build(context.Background(), previewSet(), []string{"checkout"})

	require.NoError(t, err)
	exists, err := fileSystem.FileExists("/work/stale")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestPreviewRenderer_BuildRefusesForeignWorkDir(t *testing.T) {
	kustomize := new(testutil.MockKustomizeClient)
	sut, fileSystem, _ := newPreviewRenderer(t, kustomize)
	require.NoError(t, fileSystem.WriteFile("/work/main.go", []byte("package main\n"), 0))

	err := sut.Build(context.Background(), previewSet(), []string{"checkout"})

	assert.ErrorIs(t, err, ErrWorkDirInUse)
	content, err := fileSystem.ReadFile("/work/main.go")
	require.NoError(t, err)
	assert.Equal(t, "package main\n", string(content))
	exists, err := fileSystem.FileExists("/work/checkout")
	require.NoError(t, err)
	assert.False(t, exists)
	kustomize.AssertNotCalled(t, "Build", mock.Anything)
}

func TestPreviewRenderer_BuildUsesEmptyExistingWorkDir(t *testing.T) {
	kustomize := new(testutil.MockKustomizeClient)
	sut, fileSystem, _ := newPreviewRenderer(t, kustomize)
	kustomize.On("Build", filepath.Join("/work", "checkout", "overlays", "pr-42")).Return([]byte{}, nil)
	require.NoError(t, fileSystem.MkdirAll("/work", 0))

	err := sut.Build(context.Background(), previewSet(), []string{"checkout"})

	require.NoError(t, err)
	exists, err := fileSystem.FileExists("/work/" + WorkDirMarker)
	require.NoError(t, err)
	assert.True(t, exists)
	kustomize.AssertExpectations(t)
}

func TestPreviewRenderer_BuildWithoutWorkDirUsesRemovedTempDir(t *testing.T) {
	repository := newTestRepository()
	options := testOptions()
	printer := newTestPrinter()
	fileSystem := testutil.NewTestFileSystem(t)
	kustomize := new(testutil.MockKustomizeClient)
	var builtDir string
	kustomize.On("Build", mock.Anything).Run(func(args mock.Arguments) {
		builtDir = args.String(0)
	}).Return([]byte{}, nil)
	sut := ProvidePreviewRenderer(repository, ProvideManifestIndex(repository, options, printer.Printer), fileSystem, kustomize, options, printer.Printer)

	err := sut.Build(context.Background(), previewSet(), []string{"checkout"})

	require.NoError(t, err)
	workDir := filepath.Dir(filepath.Dir(filepath.Dir(builtDir)))
	assert.Equal(t, "/tmp", filepath.Dir(workDir))
	assert.True(t, strings.HasPrefix(filepath.Base(workDir), "overlay-pr-42-"), workDir)
	exists, err := fileSystem.FileExists(workDir)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestPreviewRenderer_BuildPropagatesKustomizeFailure(t *testing.T) {
	kustomize := new(testutil.MockKustomizeClient)
	sut, _, _ := newPreviewRenderer(t, kustomize)
	kustomize.On("Build", mock.Anything).Return(nil, errors.New("kustomize build failed: accumulating resources"))

	err := sut.Build(context.Background(), previewSet(), []string{"checkout"})

	assert.ErrorContains(t, err, "accumulating resources")
}

func TestPreviewRenderer_BuildEmptySet(t *testing.T) {
	kustomize := new(testutil.MockKustomizeClient)
	sut, _, printer := newPreviewRenderer(t, kustomize)

	err := sut.Build(context.Background(), template.NewSet(), []string{"checkout"})

	require.NoError(t, err)
	assert.Contains(t, printer.out.String(), "No yaml files to print!")
	kustomize.AssertNotCalled(t, "Build", mock.Anything)
}

func TestPreviewRenderer_BuildFailsWhenWorkDirCannotBeCleaned(t *testing.T) {
	repository := newTestRepository()
	options := testOptions()
	options.WorkDir = "/work"
	printer := newTestPrinter()
	fileSystem := new(testutil.MockFileSystem)
	fileSystem.On("FileExists", "/work").Return(true, nil)
	fileSystem.On("FileExists", filepath.Join("/work", WorkDirMarker)).Return(true, nil)
	fileSystem.On("RemoveAll", "/work").Return(errors.New("permission denied"))
	kustomize := new(testutil.MockKustomizeClient)
	sut := ProvidePreviewRenderer(repository, ProvideManifestIndex(repository, options, printer.Printer), fileSystem, kustomize, options, printer.Printer)

	err := sut.Build(context.Background(), previewSet(), []string{"checkout"})

	assert.ErrorContains(t, err, "failed to clean work directory /work")
	fileSystem.AssertNotCalled(t, "WriteFile", mock.Anything, mock.Anything, testutil.AnyAccessMode)
	kustomize.AssertNotCalled(t, "Build", mock.Anything)
}

func TestPreviewRenderer_BuildFailsWhenManifestCannotBeWritten(t *testing.T) {
	repository := newTestRepository()
	options := testOptions()
	options.WorkDir = "/work"
	printer := newTestPrinter()
	fileSystem := new(testutil.MockFileSystem)
	fileSystem.On("FileExists", "/work").Return(false, nil)
	fileSystem.On("MkdirAll", "/work", testutil.AnyAccessMode).Return(nil)
	fileSystem.On("WriteFile", mock.Anything, mock.Anything, testutil.AnyAccessMode).Return(errors.New("disk full"))
	sut := ProvidePreviewRenderer(repository, ProvideManifestIndex(repository, options, printer.Printer), fileSystem, new(testutil.MockKustomizeClient), options, printer.Printer)

	err := sut.Build(context.Background(), previewSet(), []string{"checkout"})

	assert.ErrorContains(t, err, "disk full")
	fileSystem.AssertExpectations(t)
}
