//go:build unit
// +build unit

package app

import (
	"github.com/MGTheTrain/mb-cipher/internal/domain/cipherjob"

	"github.com/stretchr/testify/mock"
)

// MockKernel is a mock implementation of cipherjob.Kernel
type MockKernel struct {
	mock.Mock
}

func (m *MockKernel) Lanes() int {
	args := m.Called()
	return args.Int(0)
}

func (m *MockKernel) Name() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockKernel) Execute(batch []cipherjob.Lane) error {
	args := m.Called(batch)
	return args.Error(0)
}
