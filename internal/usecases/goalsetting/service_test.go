package goalsetting

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/kpis-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/kpis-manager-api/internal/domain"
	goalmocks "github.com/vfg2006/kpis-manager-api/internal/usecases/goalsetting/mocks"
	"go.uber.org/mock/gomock"
)

type txMarker struct{}

func floatPtr(f float64) *float64 {
	return &f
}

// fakeGoalStore só confirma as metas gravadas quando a transação termina sem erro
type fakeGoalStore struct {
	committed map[int64]float64
	pending   map[int64]float64
}

type fixture struct {
	adviserRepo *mocks.MockAdviserRepository
	goalRepo    *mocks.MockGoalRepository
	transactor  *mocks.MockTransactor
	syncer      *goalmocks.MockGoalSyncer
	store       *fakeGoalStore
	txCtx       context.Context
}

func newFixture(t *testing.T, ctx context.Context) *fixture {
	ctrl := gomock.NewController(t)
	return &fixture{
		adviserRepo: mocks.NewMockAdviserRepository(ctrl),
		goalRepo:    mocks.NewMockGoalRepository(ctrl),
		transactor:  mocks.NewMockTransactor(ctrl),
		syncer:      goalmocks.NewMockGoalSyncer(ctrl),
		store:       &fakeGoalStore{committed: map[int64]float64{1: 600}, pending: map[int64]float64{}},
		txCtx:       context.WithValue(ctx, txMarker{}, true),
	}
}

func (f *fixture) service() GoalSetter {
	return NewService(f.adviserRepo, f.goalRepo, f.syncer, f.transactor)
}

func (f *fixture) expectTransaction(ctx context.Context) {
	f.transactor.EXPECT().InTransaction(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(context.Context) error) error {
			err := fn(f.txCtx)
			if err == nil {
				for id, value := range f.store.pending {
					f.store.committed[id] = value
				}
			}
			f.store.pending = map[int64]float64{}
			return err
		})
}

// expectUpserts aceita gravações de meta apenas no contexto da transação
func (f *fixture) expectUpserts(times int) {
	f.goalRepo.EXPECT().Upsert(f.txCtx, gomock.Any()).
		DoAndReturn(func(_ context.Context, g *domain.Goal) (*domain.Goal, error) {
			f.store.pending[g.AdviserID] = g.GoalValue
			return g, nil
		}).Times(times)
}

func TestService_UpdateGoal(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		req      domain.GoalRequest
		setup    func(f *fixture)
		validate func(t *testing.T, f *fixture, goal *domain.Goal, err error)
	}{
		{
			name:  "Meta ausente",
			req:   domain.GoalRequest{Year: 2024, Month: 3},
			setup: func(*fixture) {},
			validate: func(t *testing.T, _ *fixture, _ *domain.Goal, err error) {
				assert.ErrorIs(t, err, domain.ErrBusinessRule)
			},
		},
		{
			name:  "Mês inválido",
			req:   domain.GoalRequest{Year: 2024, Month: 0, GoalValue: floatPtr(100)},
			setup: func(*fixture) {},
			validate: func(t *testing.T, _ *fixture, _ *domain.Goal, err error) {
				assert.ErrorIs(t, err, domain.ErrBusinessRule)
			},
		},
		{
			name: "Assessor inexistente",
			req:  domain.GoalRequest{Year: 2024, Month: 3, GoalValue: floatPtr(100)},
			setup: func(f *fixture) {
				f.adviserRepo.EXPECT().GetByID(ctx, int64(1)).Return(nil, nil)
			},
			validate: func(t *testing.T, _ *fixture, _ *domain.Goal, err error) {
				assert.ErrorIs(t, err, domain.ErrNotFound)
			},
		},
		{
			name: "Grava a meta e sincroniza o resumo",
			req:  domain.GoalRequest{Year: 2024, Month: 3, GoalValue: floatPtr(1500)},
			setup: func(f *fixture) {
				f.adviserRepo.EXPECT().GetByID(ctx, int64(1)).Return(&domain.Adviser{ID: 1, Active: true}, nil)
				f.expectTransaction(ctx)
				f.goalRepo.EXPECT().Upsert(f.txCtx, &domain.Goal{AdviserID: 1, Year: 2024, Month: 3, GoalValue: 1500}).
					DoAndReturn(func(_ context.Context, g *domain.Goal) (*domain.Goal, error) {
						f.store.pending[g.AdviserID] = g.GoalValue
						return &domain.Goal{ID: 3, AdviserID: 1, Year: 2024, Month: 3, GoalValue: 1500}, nil
					})
				f.syncer.EXPECT().SyncGoal(f.txCtx, int64(1), 1500.0, 2024, 3).Return(nil)
			},
			validate: func(t *testing.T, f *fixture, goal *domain.Goal, err error) {
				require.NoError(t, err)
				assert.Equal(t, int64(3), goal.ID)
				assert.Equal(t, 1500.0, goal.GoalValue)
				assert.Equal(t, 1500.0, f.store.committed[1])
			},
		},
		{
			name: "Falha ao sincronizar o resumo desfaz a meta",
			req:  domain.GoalRequest{Year: 2024, Month: 3, GoalValue: floatPtr(1500)},
			setup: func(f *fixture) {
				f.adviserRepo.EXPECT().GetByID(ctx, int64(1)).Return(&domain.Adviser{ID: 1}, nil)
				f.expectTransaction(ctx)
				f.expectUpserts(1)
				f.syncer.EXPECT().SyncGoal(f.txCtx, int64(1), 1500.0, 2024, 3).Return(domain.NewConcurrencyError("conflito"))
			},
			validate: func(t *testing.T, f *fixture, goal *domain.Goal, err error) {
				assert.ErrorIs(t, err, domain.ErrConcurrency)
				assert.Nil(t, goal)
				assert.Equal(t, 600.0, f.store.committed[1])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, ctx)
			tt.setup(f)

			goal, err := f.service().UpdateGoal(ctx, 1, tt.req)
			tt.validate(t, f, goal, err)
		})
	}
}

func TestService_UpdateGoalsForAllActive(t *testing.T) {
	ctx := context.Background()
	req := domain.GoalRequest{Year: 2024, Month: 3, GoalValue: floatPtr(900)}

	t.Run("Aplica a meta a todos os assessores ativos", func(t *testing.T) {
		f := newFixture(t, ctx)

		f.adviserRepo.EXPECT().ListActive(ctx).Return([]*domain.Adviser{{ID: 1}, {ID: 2}}, nil)
		f.expectTransaction(ctx)
		f.expectUpserts(2)
		f.syncer.EXPECT().SyncGoal(f.txCtx, int64(1), 900.0, 2024, 3).Return(nil)
		f.syncer.EXPECT().SyncGoal(f.txCtx, int64(2), 900.0, 2024, 3).Return(nil)

		goals, err := f.service().UpdateGoalsForAllActive(ctx, req)
		require.NoError(t, err)
		require.Len(t, goals, 2)
		assert.Equal(t, int64(1), goals[0].AdviserID)
		assert.Equal(t, int64(2), goals[1].AdviserID)
		assert.Equal(t, map[int64]float64{1: 900, 2: 900}, f.store.committed)
	})

	t.Run("Falha em um assessor desfaz as metas dos anteriores", func(t *testing.T) {
		f := newFixture(t, ctx)

		f.adviserRepo.EXPECT().ListActive(ctx).Return([]*domain.Adviser{{ID: 1}, {ID: 2}}, nil)
		f.expectTransaction(ctx)
		f.expectUpserts(2)
		f.syncer.EXPECT().SyncGoal(f.txCtx, int64(1), 900.0, 2024, 3).Return(nil)
		f.syncer.EXPECT().SyncGoal(f.txCtx, int64(2), 900.0, 2024, 3).Return(errors.New("connection reset"))

		goals, err := f.service().UpdateGoalsForAllActive(ctx, req)
		require.Error(t, err)
		assert.Nil(t, goals)
		assert.Equal(t, map[int64]float64{1: 600}, f.store.committed)
	})

	t.Run("Erro ao listar assessores", func(t *testing.T) {
		f := newFixture(t, ctx)

		f.adviserRepo.EXPECT().ListActive(ctx).Return(nil, errors.New("timeout"))

		_, err := f.service().UpdateGoalsForAllActive(ctx, req)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "erro ao listar assessores ativos")
	})
}
