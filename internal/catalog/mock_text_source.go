package catalog

import (
	"github.com/stretchr/testify/mock"
)

// MockTextSource is a mock implementation of the TextSource interface
type MockTextSource struct {
	mock.Mock
}

func (m *MockTextSource) Lookup(key string) (string, bool) {
	args := m.Called(key)
	return args.String(0), args.Bool(1)
}
