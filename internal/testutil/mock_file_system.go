package testutil

import (
	"overlay/internal/ports"

	"github.com/stretchr/testify/mock"
)

var _ ports.FileSystem = (*MockFileSystem)(nil)

// AnyAccessMode matches any ports.AccessMode argument.
var AnyAccessMode = mock.AnythingOfType("ports.AccessMode")

type MockFileSystem struct {
	mock.Mock
}

func (m *MockFileSystem) WriteFile(path string, content []byte, accessMode ports.AccessMode) error {
	args := m.Called(path, content, accessMode)
	return args.Error(0)
}

func (m *MockFileSystem) MkdirAll(path string, accessMode ports.AccessMode) error {
	args := m.Called(path, accessMode)
	return args.Error(0)
}

func (m *MockFileSystem) MkdirTemp(pattern string) (string, error) {
	args := m.Called(pattern)
	return args.String(0), args.Error(1)
}

func (m *MockFileSystem) RemoveAll(path string) error {
	args := m.Called(path)
	return args.Error(0)
}

func (m *MockFileSystem) FileExists(path string) (bool, error) {
	args := m.Called(path)
	return args.Bool(0), args.Error(1)
}

func (m *MockFileSystem) IsEmptyDir(path string) (bool, error) {
	args := m.Called(path)
	return args.Bool(0), args.Error(1)
}
