package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rocketscienceinc/rps-backend/internal/entity"
)

type mockSessionRepo struct {
	mock.Mock
}

func newMockSessionRepo() *mockSessionRepo {
	return &mockSessionRepo{}
}

func (that *mockSessionRepo) CreateOrUpdate(ctx context.Context, session *entity.Session) error {
	args := that.Called(ctx, session)
	return args.Error(0)
}

func (that *mockSessionRepo) GetByID(ctx context.Context, id string) (*entity.Session, error) {
	args := that.Called(ctx, id)
	session, _ := args.Get(0).(*entity.Session)
	return session, args.Error(1)
}

func (that *mockSessionRepo) DeleteByID(ctx context.Context, id string) error {
	args := that.Called(ctx, id)
	return args.Error(0)
}

// fixedSource always answers with the same computer move.
type fixedSource struct {
	computerMove entity.Move
}

func (that fixedSource) IntN(int) int {
	for i, move := range entity.Moves {
		if move == that.computerMove {
			return i
		}
	}
	return 0
}
