package testutil

import (
	"context"

	"overlay/internal/ports"

	"github.com/stretchr/testify/mock"
)

var _ ports.ManifestRepositoryWriter = (*MockManifestRepositoryWriter)(nil)

// MockManifestRepositoryWriter provides a testify mock for
// ports.ManifestRepositoryWriter. The context argument is not recorded.
type MockManifestRepositoryWriter struct {
	mock.Mock
}

func (m *MockManifestRepositoryWriter) DefaultBranch(_ context.Context) (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

func (m *MockManifestRepositoryWriter) LatestCommit(_ context.Context, branch string) (string, error) {
	args := m.Called(branch)
	return args.String(0), args.Error(1)
}

func (m *MockManifestRepositoryWriter) TreeOf(_ context.Context, commitSHA string) (string, error) {
	args := m.Called(commitSHA)
	return args.String(0), args.Error(1)
}

func (m *MockManifestRepositoryWriter) CreateBlob(_ context.Context, content []byte) (string, error) {
	args := m.Called(content)
	return args.String(0), args.Error(1)
}

func (m *MockManifestRepositoryWriter) CreateTree(_ context.Context, baseTreeSHA string, entries []ports.TreeEntry) (string, error) {
	args := m.Called(baseTreeSHA, entries)
	return args.String(0), args.Error(1)
}

func (m *MockManifestRepositoryWriter) CreateCommit(_ context.Context, message, treeSHA, parentSHA string) (string, error) {
	args := m.Called(message, treeSHA, parentSHA)
	return args.String(0), args.Error(1)
}

func (m *MockManifestRepositoryWriter) UpdateRef(_ context.Context, branch, commitSHA string) error {
	args := m.Called(branch, commitSHA)
	return args.Error(0)
}
