package mocks

import (
	"context"

	"bundlexfer/internal/model"
	"bundlexfer/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockBundleService struct {
	mock.Mock
}

func (m *MockBundleService) Upload(ctx context.Context, path string, signingKey string) (*model.Receipt, error) {
	args := m.Called(ctx, path, signingKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Receipt), args.Error(1)
}

func (m *MockBundleService) Download(ctx context.Context, id string, opt service.DownloadOptions) (*model.Bundle, error) {
	args := m.Called(ctx, id, opt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Bundle), args.Error(1)
}

func (m *MockBundleService) Save(b *model.Bundle, path string) error {
	args := m.Called(b, path)
	return args.Error(0)
}
