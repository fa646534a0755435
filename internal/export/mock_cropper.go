package export

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockCropper is a mock implementation of Cropper
type MockCropper struct {
	mock.Mock
}

// Crop mocks the Crop method
func (m *MockCropper) Crop(ctx context.Context, sheet string, job Job, target string) error {
	args := m.Called(ctx, sheet, job, target)
	return args.Error(0)
}
