package checkservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/akazarov/serptrack/internal/domain"
	"github.com/akazarov/serptrack/internal/serp"
)

type Mocks struct {
	keywordRepo *MockKeywordRepo
	projectRepo *MockProjectRepo
	provider    *serp.MockProviderI
}

func NewMock(t *testing.T) (*Service, *Mocks) {
	ctrl := gomock.NewController(t)
	m := &Mocks{
		keywordRepo: NewMockKeywordRepo(ctrl),
		projectRepo: NewMockProjectRepo(ctrl),
		provider:    serp.NewMockProviderI(ctrl),
	}
	service := New(m.keywordRepo, m.projectRepo, m.provider)
	return service, m
}

func pageOfResults(total int) []serp.Result {
	results := make([]serp.Result, 0, total)
	for i := 1; i <= total; i++ {
		results = append(results, serp.Result{
			Rank:  i,
			URL:   "https://competitor.example/page",
			Title: "Competitor",
		})
	}
	return results
}

func TestCheck(t *testing.T) {
	keyword := &domain.Keyword{ID: 7, ProjectID: 3, Term: "best coffee maker", Country: "us", Device: domain.DeviceDesktop}
	project := &domain.Project{ID: 3, UserID: 11, Domain: "brewhub.io"}

	tests := []struct {
		name         string
		prepare      func(m *Mocks)
		wantPosition int
		wantURL      *string
		wantNil      bool
		wantErr      string
	}{
		{
			name: "target found at rank 13",
			prepare: func(m *Mocks) {
				m.keywordRepo.EXPECT().GetByID(gomock.Any(), 7).Return(keyword, nil)
				m.projectRepo.EXPECT().GetByID(gomock.Any(), 3).Return(project, nil)
				results := pageOfResults(12)
				results = append(results, serp.Result{Rank: 13, URL: "https://www.brewhub.io/reviews"})
				m.provider.EXPECT().FetchTopResults(gomock.Any(), serp.Query{
					Term:         keyword.Term,
					Country:      keyword.Country,
					Device:       keyword.Device,
					TargetDomain: project.Domain,
				}).Return(results, nil)
				m.keywordRepo.EXPECT().SetLastError(gomock.Any(), 7, "").Return(nil)
				m.keywordRepo.EXPECT().GetLatestPosition(gomock.Any(), 7).
					Return(&domain.KeywordPosition{KeywordID: 7, Position: 21}, nil)
				m.keywordRepo.EXPECT().SavePosition(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, pos *domain.KeywordPosition) (*domain.KeywordPosition, error) {
						assert.Equal(t, 7, pos.KeywordID)
						assert.Equal(t, 13, pos.Position)
						require.NotNil(t, pos.URL)
						assert.Equal(t, "https://www.brewhub.io/reviews", *pos.URL)
						return pos, nil
					})
				m.keywordRepo.EXPECT().MarkChecked(gomock.Any(), 7, gomock.Any()).Return(nil)
			},
			wantPosition: 13,
			wantURL:      ptr("https://www.brewhub.io/reviews"),
		},
		{
			name: "target absent stores rank zero",
			prepare: func(m *Mocks) {
				m.keywordRepo.EXPECT().GetByID(gomock.Any(), 7).Return(keyword, nil)
				m.projectRepo.EXPECT().GetByID(gomock.Any(), 3).Return(project, nil)
				m.provider.EXPECT().FetchTopResults(gomock.Any(), gomock.Any()).Return(pageOfResults(10), nil)
				m.keywordRepo.EXPECT().SetLastError(gomock.Any(), 7, "").Return(nil)
				m.keywordRepo.EXPECT().GetLatestPosition(gomock.Any(), 7).Return(nil, nil)
				m.keywordRepo.EXPECT().SavePosition(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, pos *domain.KeywordPosition) (*domain.KeywordPosition, error) {
						assert.Equal(t, 0, pos.Position)
						assert.Nil(t, pos.URL)
						return pos, nil
					})
				m.keywordRepo.EXPECT().MarkChecked(gomock.Any(), 7, gomock.Any()).Return(nil)
			},
			wantPosition: 0,
		},
		{
			name: "provider failure recorded as rank zero",
			prepare: func(m *Mocks) {
				m.keywordRepo.EXPECT().GetByID(gomock.Any(), 7).Return(keyword, nil)
				m.projectRepo.EXPECT().GetByID(gomock.Any(), 3).Return(project, nil)
				m.provider.EXPECT().FetchTopResults(gomock.Any(), gomock.Any()).
					Return(nil, &serp.ProviderError{Message: "upstream timeout"})
				m.keywordRepo.EXPECT().SetLastError(gomock.Any(), 7, "could not determine ranking this cycle").Return(nil)
				m.keywordRepo.EXPECT().GetLatestPosition(gomock.Any(), 7).Return(nil, nil)
				m.keywordRepo.EXPECT().SavePosition(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, pos *domain.KeywordPosition) (*domain.KeywordPosition, error) {
						assert.Equal(t, 0, pos.Position)
						return pos, nil
					})
				m.keywordRepo.EXPECT().MarkChecked(gomock.Any(), 7, gomock.Any()).Return(nil)
			},
			wantPosition: 0,
		},
		{
			name: "missing keyword is a no-op",
			prepare: func(m *Mocks) {
				m.keywordRepo.EXPECT().GetByID(gomock.Any(), 7).Return(nil, nil)
			},
			wantNil: true,
		},
		{
			name: "missing project is a no-op",
			prepare: func(m *Mocks) {
				m.keywordRepo.EXPECT().GetByID(gomock.Any(), 7).Return(keyword, nil)
				m.projectRepo.EXPECT().GetByID(gomock.Any(), 3).Return(nil, nil)
			},
			wantNil: true,
		},
		{
			name: "non-provider error surfaces",
			prepare: func(m *Mocks) {
				m.keywordRepo.EXPECT().GetByID(gomock.Any(), 7).Return(keyword, nil)
				m.projectRepo.EXPECT().GetByID(gomock.Any(), 3).Return(project, nil)
				m.provider.EXPECT().FetchTopResults(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("context canceled"))
			},
			wantErr: "context canceled",
		},
		{
			name: "persistence error surfaces",
			prepare: func(m *Mocks) {
				m.keywordRepo.EXPECT().GetByID(gomock.Any(), 7).Return(keyword, nil)
				m.projectRepo.EXPECT().GetByID(gomock.Any(), 3).Return(project, nil)
				m.provider.EXPECT().FetchTopResults(gomock.Any(), gomock.Any()).Return(pageOfResults(3), nil)
				m.keywordRepo.EXPECT().SetLastError(gomock.Any(), 7, "").Return(nil)
				m.keywordRepo.EXPECT().GetLatestPosition(gomock.Any(), 7).Return(nil, nil)
				m.keywordRepo.EXPECT().SavePosition(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("insert failed"))
			},
			wantErr: "insert failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepare(m)

			result, err := service.Check(context.Background(), 7, false)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			if tt.wantNil {
				assert.Nil(t, result)
				return
			}
			require.NotNil(t, result)
			assert.Equal(t, tt.wantPosition, result.Position)
			if tt.wantURL != nil {
				require.NotNil(t, result.URL)
				assert.Equal(t, *tt.wantURL, *result.URL)
			} else {
				assert.Nil(t, result.URL)
			}
		})
	}
}

func ptr(s string) *string { return &s }
