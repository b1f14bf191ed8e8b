// Package gittest provides a mock git.Runner.
package gittest

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockRunner is a git.Runner recording every invocation.
type MockRunner struct {
	mock.Mock
}

// Run records dir and args; args are matched as a single []string.
func (m *MockRunner) Run(ctx context.Context, dir string, args ...string) error {
	ret := m.Called(ctx, dir, args)
	return ret.Error(0)
}

// Expect registers a successful invocation.
func (m *MockRunner) Expect(dir string, args ...string) *mock.Call {
	return m.On("Run", mock.Anything, dir, args).Return(nil)
}

// ExpectAny accepts every invocation.
func (m *MockRunner) ExpectAny() *mock.Call {
	return m.On("Run", mock.Anything, mock.Anything, mock.Anything).Return(nil)
}
