package projectservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/akazarov/serptrack/internal/domain"
	"github.com/akazarov/serptrack/internal/pg"
)

type mocks struct {
	repo      *MockRepo
	txManager *pg.MockTXManager
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		repo:      NewMockRepo(ctrl),
		txManager: pg.NewMockTXManager(ctrl),
	}
	service := New(m.repo, m.txManager)
	return service, m
}

func passThroughTx(m *mocks) {
	m.txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn pg.TransactionalFn) error {
			return fn(ctx)
		}).AnyTimes()
}

func TestCreate(t *testing.T) {
	tests := []struct {
		name        string
		userID      int
		rawDomain   string
		prepareMock func(m *mocks)
		wantErr     error
	}{
		{
			name:      "new domain creates lock and project",
			userID:    11,
			rawDomain: "https://www.BrewHub.io/",
			prepareMock: func(m *mocks) {
				m.repo.EXPECT().GetDomainLock(gomock.Any(), "brewhub.io").Return(nil, nil)
				m.repo.EXPECT().CreateDomainLock(gomock.Any(), "brewhub.io", 11).Return(nil)
				m.repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, p *domain.Project) (*domain.Project, error) {
						assert.Equal(t, "brewhub.io", p.Domain)
						assert.Equal(t, 11, p.UserID)
						p.ID = 1
						return p, nil
					})
			},
		},
		{
			name:      "owner re-adds after project deletion",
			userID:    11,
			rawDomain: "brewhub.io",
			prepareMock: func(m *mocks) {
				m.repo.EXPECT().GetDomainLock(gomock.Any(), "brewhub.io").
					Return(&domain.DomainLock{ID: 5, Domain: "brewhub.io", UserID: 11}, nil)
				m.repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, p *domain.Project) (*domain.Project, error) {
						p.ID = 2
						return p, nil
					})
			},
		},
		{
			name:      "locked by another account",
			userID:    22,
			rawDomain: "brewhub.io",
			prepareMock: func(m *mocks) {
				m.repo.EXPECT().GetDomainLock(gomock.Any(), "brewhub.io").
					Return(&domain.DomainLock{ID: 5, Domain: "brewhub.io", UserID: 11}, nil)
			},
			wantErr: ErrDomainLocked,
		},
		{
			name:        "empty domain rejected",
			userID:      11,
			rawDomain:   "   ",
			prepareMock: func(m *mocks) {},
			wantErr:     ErrInvalidDomain,
		},
		{
			name:      "lock lookup failure surfaces",
			userID:    11,
			rawDomain: "brewhub.io",
			prepareMock: func(m *mocks) {
				m.repo.EXPECT().GetDomainLock(gomock.Any(), "brewhub.io").
					Return(nil, errors.New("connection refused"))
			},
			wantErr: errors.New("failed to check domain lock: connection refused"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			passThroughTx(m)
			tt.prepareMock(m)

			project, err := service.Create(context.Background(), tt.userID, tt.rawDomain, "us", domain.FrequencyDaily)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr.Error(), err.Error())
				assert.Nil(t, project)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, project)
			assert.Equal(t, "brewhub.io", project.Domain)
		})
	}
}
