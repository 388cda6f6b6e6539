package kustomize

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"overlay/internal/ports"

	"gopkg.in/yaml.v3"
)

var _ ports.KustomizeClient = (*Client)(nil)

// Client implements ports.KustomizeClient using the kustomize CLI, falling
// back to kubectl kustomize when kustomize is not installed.
type Client struct {
	commandRunner ports.CommandRunner
}

// ProvideKustomizeClient creates a KustomizeClient for Wire dependency injection.
func ProvideKustomizeClient(commandRunner ports.CommandRunner) *Client {
	return &Client{commandRunner: commandRunner}
}

// Build renders the kustomization in dir.
func (c *Client) Build(dir string) ([]byte, error) {
	output, err := c.commandRunner.Run("kustomize", "build", dir)
	if errors.Is(err, exec.ErrNotFound) {
		output, err = c.commandRunner.Run("kubectl", "kustomize", dir)
	}
	if err != nil {
		return nil, fmt.Errorf("kustomize build %s failed: %w, output: %s", dir, err, strings.TrimSpace(string(output)))
	}

	if err := validateDocuments(output); err != nil {
		return nil, fmt.Errorf("kustomize build %s produced invalid yaml: %w", dir, err)
	}
	return output, nil
}

// validateDocuments checks that output is a stream of YAML documents.
func validateDocuments(output []byte) error {
	decoder := yaml.NewDecoder(bytes.NewReader(output))
	for {
		var document yaml.Node
		err := decoder.Decode(&document)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
