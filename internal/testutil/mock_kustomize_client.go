package testutil

import (
	"overlay/internal/ports"

	"github.com/stretchr/testify/mock"
)

var _ ports.KustomizeClient = (*MockKustomizeClient)(nil)

type MockKustomizeClient struct {
	mock.Mock
}

func (m *MockKustomizeClient) Build(dir string) ([]byte, error) {
	args := m.Called(dir)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
