package kustomize

import (
	"errors"
	"fmt"
	"os/exec"
	"testing"

	"overlay/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const builtOverlay = `apiVersion: v1
kind: Namespace
metadata:
  name: pr-42
---
apiVersion: v1
kind: Service
metadata:
  name: checkout
  namespace: pr-42
`

func TestClient_Build_RunsKustomize(t *testing.T) {
	runner := new(testutil.MockCommandRunner)
	runner.On("Run", "kustomize", []string{"build", "/work/checkout/overlays/pr-42"}).Return([]byte(builtOverlay), nil)
	client := ProvideKustomizeClient(runner)

	output, err := client.Build("/work/checkout/overlays/pr-42")

	require.NoError(t, err)
	assert.Equal(t, builtOverlay, string(output))
	runner.AssertExpectations(t)
}

func TestClient_Build_FallsBackToKubectl(t *testing.T) {
	runner := new(testutil.MockCommandRunner)
	runner.On("Run", "kustomize", []string{"build", "/work/cart/overlays/pr-42"}).
		Return(nil, fmt.Errorf("exec: \"kustomize\": %w", exec.ErrNotFound))
	runner.On("Run", "kubectl", []string{"kustomize", "/work/cart/overlays/pr-42"}).Return([]byte(builtOverlay), nil)
	client := ProvideKustomizeClient(runner)

	output, err := client.Build("/work/cart/overlays/pr-42")

	require.NoError(t, err)
	assert.Equal(t, builtOverlay, string(output))
	runner.AssertExpectations(t)
}

func TestClient_Build_ReportsToolOutputOnFailure(t *testing.T) {
	runner := new(testutil.MockCommandRunner)
	runner.On("Run", "kustomize", []string{"build", "/work/worker/overlays/pr-42"}).
		Return([]byte("Error: accumulating resources: missing base\n"), errors.New("exit status 1"))
	client := ProvideKustomizeClient(runner)

	_, err := client.Build("/work/worker/overlays/pr-42")

	assert.ErrorContains(t, err, "exit status 1")
	assert.ErrorContains(t, err, "accumulating resources: missing base")
	runner.AssertNotCalled(t, "Run", "kubectl", []string{"kustomize", "/work/worker/overlays/pr-42"})
}

func TestClient_Build_RejectsInvalidOutput(t *testing.T) {
	runner := new(testutil.MockCommandRunner)
	runner.On("Run", "kustomize", []string{"build", "/work"}).Return([]byte("kind: [unterminated"), nil)
	client := ProvideKustomizeClient(runner)

	_, err := client.Build("/work")

	assert.ErrorContains(t, err, "produced invalid yaml")
}
