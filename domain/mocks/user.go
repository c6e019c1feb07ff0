package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/likelion/vlog/domain"
)

// UserRepository is a mock type for domain.UserRepository
type UserRepository struct {
	mock.Mock
}

var _ domain.UserRepository = (*UserRepository)(nil)

func (m *UserRepository) GetByID(ctx context.Context, id int64) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *UserRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *UserRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.User, error) {
	args := m.Called(ctx, ids)
	if users, ok := args.Get(0).([]domain.User); ok {
		return users, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserRepository) Insert(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

// UserUsecase is a mock type for domain.UserUsecase
type UserUsecase struct {
	mock.Mock
}

var _ domain.UserUsecase = (*UserUsecase)(nil)

func (m *UserUsecase) Register(ctx context.Context, nickname, email, password string) error {
	args := m.Called(ctx, nickname, email, password)
	return args.Error(0)
}

func (m *UserUsecase) Login(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}
