package mocks

import (
	"context"

	"bundlexfer/internal/storage"

	"github.com/stretchr/testify/mock"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Put(ctx context.Context, payload []byte, opt storage.PutOptions) (string, error) {
	args := m.Called(ctx, payload, opt)
	return args.String(0), args.Error(1)
}

func (m *MockStore) Get(ctx context.Context, id string, opt storage.GetOptions) ([]byte, error) {
	args := m.Called(ctx, id, opt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
