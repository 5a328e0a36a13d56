package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"board-backend/domain"
)

// BloomRepository is a mock type for the domain.BloomRepository
type BloomRepository struct {
	mock.Mock
}

func (m *BloomRepository) Add(ctx context.Context, id int64) error {
	ret := m.Called(ctx, id)
	return ret.Error(0)
}

func (m *BloomRepository) Exists(ctx context.Context, id int64) (bool, error) {
	ret := m.Called(ctx, id)
	return ret.Bool(0), ret.Error(1)
}

func (m *BloomRepository) BulkAdd(ctx context.Context, ids []int64) error {
	ret := m.Called(ctx, ids)
	return ret.Error(0)
}

var _ domain.BloomRepository = (*BloomRepository)(nil)
