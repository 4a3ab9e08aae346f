package balanceservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/akazarov/serptrack/internal/domain"
	"github.com/akazarov/serptrack/internal/notify"
	"github.com/akazarov/serptrack/internal/pg"
	"github.com/akazarov/serptrack/internal/service/pricingservice"
)

type mocks struct {
	balanceRepo *MockBalanceRepo
	couponRepo  *MockCouponRepo
	pricing     *MockPricing
	txManager   *pg.MockTXManager
	notifier    *notify.MockNotifier
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		balanceRepo: NewMockBalanceRepo(ctrl),
		couponRepo:  NewMockCouponRepo(ctrl),
		pricing:     NewMockPricing(ctrl),
		txManager:   pg.NewMockTXManager(ctrl),
		notifier:    notify.NewMockNotifier(ctrl),
	}
	service := New(m.balanceRepo, m.couponRepo, m.pricing, m.txManager, m.notifier, 0.50, 0.10)
	defer ctrl.Finish()
	return service, m
}

func passThroughTx(m *mocks) {
	m.txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn pg.TransactionalFn) error {
			return fn(ctx)
		}).AnyTimes()
}

func TestDeduct(t *testing.T) {
	tests := []struct {
		name            string
		userID          int
		prepareMock     func(m *mocks)
		expectedErr     error
		expectedBalance float64
	}{
		{
			name:   "Successful deduction",
			userID: 1,
			prepareMock: func(m *mocks) {
				m.pricing.EXPECT().Cost(gomock.Any(), pricingservice.ActionStandardCheck).Return(0.02)
				m.balanceRepo.EXPECT().GetUserBalance(gomock.Any(), 1).Return(&domain.Balance{
					UserID: 1, CurrentBalance: 1.00,
				}, nil)
				m.balanceRepo.EXPECT().Deduct(gomock.Any(), 1, 0.02).Return(&domain.Balance{
					UserID: 1, CurrentBalance: 0.98, SpentTotal: 0.02,
				}, nil)
				m.balanceRepo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, tr *domain.BalanceTransaction) (*domain.BalanceTransaction, error) {
						assert.Equal(t, domain.TransactionUsage, tr.Type)
						assert.InDelta(t, -0.02, tr.Amount, 1e-9)
						assert.InDelta(t, tr.BalanceBefore+tr.Amount, tr.BalanceAfter, 1e-9)
						tr.ID = 42
						return tr, nil
					})
			},
			expectedErr:     nil,
			expectedBalance: 0.98,
		},
		{
			name:   "Insufficient balance is reported without mutation",
			userID: 1,
			prepareMock: func(m *mocks) {
				m.pricing.EXPECT().Cost(gomock.Any(), pricingservice.ActionStandardCheck).Return(0.02)
				m.balanceRepo.EXPECT().GetUserBalance(gomock.Any(), 1).Return(&domain.Balance{
					UserID: 1, CurrentBalance: 0.01,
				}, nil)
			},
			expectedErr: ErrInsufficientBalance,
		},
		{
			name:   "Race lost to concurrent deduction",
			userID: 1,
			prepareMock: func(m *mocks) {
				m.pricing.EXPECT().Cost(gomock.Any(), pricingservice.ActionStandardCheck).Return(0.02)
				m.balanceRepo.EXPECT().GetUserBalance(gomock.Any(), 1).Return(&domain.Balance{
					UserID: 1, CurrentBalance: 0.02,
				}, nil)
				m.balanceRepo.EXPECT().Deduct(gomock.Any(), 1, 0.02).Return(nil, nil)
			},
			expectedErr: ErrInsufficientBalance,
		},
		{
			name:   "Lazy balance creation seeds welcome credit",
			userID: 7,
			prepareMock: func(m *mocks) {
				m.pricing.EXPECT().Cost(gomock.Any(), pricingservice.ActionStandardCheck).Return(0.02)
				m.balanceRepo.EXPECT().GetUserBalance(gomock.Any(), 7).Return(nil, nil)
				m.balanceRepo.EXPECT().CreateUserBalance(gomock.Any(), 7, 0.50).Return(&domain.Balance{
					UserID: 7, CurrentBalance: 0.50, RechargedTotal: 0.50,
				}, nil)
				m.balanceRepo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, tr *domain.BalanceTransaction) (*domain.BalanceTransaction, error) {
						assert.Equal(t, domain.TransactionRecharge, tr.Type)
						assert.InDelta(t, 0.50, tr.Amount, 1e-9)
						return tr, nil
					})
				m.balanceRepo.EXPECT().Deduct(gomock.Any(), 7, 0.02).Return(&domain.Balance{
					UserID: 7, CurrentBalance: 0.48,
				}, nil)
				m.balanceRepo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(&domain.BalanceTransaction{ID: 1}, nil)
			},
			expectedErr:     nil,
			expectedBalance: 0.48,
		},
		{
			name:   "Persistence error surfaces",
			userID: 1,
			prepareMock: func(m *mocks) {
				m.pricing.EXPECT().Cost(gomock.Any(), pricingservice.ActionStandardCheck).Return(0.02)
				m.balanceRepo.EXPECT().GetUserBalance(gomock.Any(), 1).Return(nil, errors.New("db error"))
			},
			expectedErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			passThroughTx(m)
			tt.prepareMock(m)

			result, err := service.Deduct(context.Background(), tt.userID, pricingservice.ActionStandardCheck, "")

			if tt.expectedErr != nil {
				assert.Error(t, err)
				if errors.Is(tt.expectedErr, ErrInsufficientBalance) {
					assert.ErrorIs(t, err, ErrInsufficientBalance)
				}
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.InDelta(t, tt.expectedBalance, result.NewBalance, 1e-9)
			}
		})
	}
}

func TestDeduct_LowBalanceNotification(t *testing.T) {
	service, m := NewMock(t)
	passThroughTx(m)

	m.pricing.EXPECT().Cost(gomock.Any(), pricingservice.ActionLiveCheck).Return(0.03)
	m.balanceRepo.EXPECT().GetUserBalance(gomock.Any(), 1).Return(&domain.Balance{
		UserID: 1, CurrentBalance: 0.08,
	}, nil)
	m.balanceRepo.EXPECT().Deduct(gomock.Any(), 1, 0.03).Return(&domain.Balance{
		UserID: 1, CurrentBalance: 0.05,
	}, nil)
	m.balanceRepo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(&domain.BalanceTransaction{ID: 1}, nil)
	m.notifier.EXPECT().LowBalance(gomock.Any(), 1, 0.05).Return(errors.New("smtp down"))

	// notifier failure must not fail the deduction
	result, err := service.Deduct(context.Background(), 1, pricingservice.ActionLiveCheck, "")
	assert.NoError(t, err)
	assert.InDelta(t, 0.05, result.NewBalance, 1e-9)
}

func TestCredit(t *testing.T) {
	tests := []struct {
		name        string
		amount      float64
		txType      string
		prepareMock func(m *mocks)
		expectErr   bool
	}{
		{
			name:   "Recharge increments lifetime recharged",
			amount: 10.0,
			txType: domain.TransactionRecharge,
			prepareMock: func(m *mocks) {
				m.balanceRepo.EXPECT().GetUserBalance(gomock.Any(), 1).Return(&domain.Balance{
					UserID: 1, CurrentBalance: 1.0, RechargedTotal: 5.0,
				}, nil)
				m.balanceRepo.EXPECT().Credit(gomock.Any(), 1, 10.0, 10.0).Return(&domain.Balance{
					UserID: 1, CurrentBalance: 11.0, RechargedTotal: 15.0,
				}, nil)
				m.balanceRepo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, tr *domain.BalanceTransaction) (*domain.BalanceTransaction, error) {
						assert.InDelta(t, tr.BalanceBefore+tr.Amount, tr.BalanceAfter, 1e-9)
						return tr, nil
					})
			},
		},
		{
			name:   "Admin adjustment keeps recharged total clean",
			amount: 2.0,
			txType: domain.TransactionAdminAdjustment,
			prepareMock: func(m *mocks) {
				m.balanceRepo.EXPECT().GetUserBalance(gomock.Any(), 1).Return(&domain.Balance{
					UserID: 1, CurrentBalance: 1.0,
				}, nil)
				m.balanceRepo.EXPECT().Credit(gomock.Any(), 1, 2.0, 0.0).Return(&domain.Balance{
					UserID: 1, CurrentBalance: 3.0,
				}, nil)
				m.balanceRepo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(&domain.BalanceTransaction{ID: 1}, nil)
			},
		},
		{
			name:        "Non-positive amount is rejected",
			amount:      0,
			txType:      domain.TransactionRecharge,
			prepareMock: func(m *mocks) {},
			expectErr:   true,
		},
		{
			name:        "Usage type is rejected",
			amount:      1.0,
			txType:      domain.TransactionUsage,
			prepareMock: func(m *mocks) {},
			expectErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			passThroughTx(m)
			tt.prepareMock(m)

			balance, err := service.Credit(context.Background(), 1, tt.amount, tt.txType, "test", "")
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, balance)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, balance)
			}
		})
	}
}

func TestCredit_SnapshotsSurviveConcurrentDeduction(t *testing.T) {
	service, m := NewMock(t)
	passThroughTx(m)

	// a deduction of 0.02 commits between the read (1.00) and the credit's
	// own UPDATE, so the row comes back as 0.98 + 1.00
	m.balanceRepo.EXPECT().GetUserBalance(gomock.Any(), 1).Return(&domain.Balance{
		UserID: 1, CurrentBalance: 1.00,
	}, nil)
	m.balanceRepo.EXPECT().Credit(gomock.Any(), 1, 1.00, 1.00).Return(&domain.Balance{
		UserID: 1, CurrentBalance: 1.98,
	}, nil)
	m.balanceRepo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, tr *domain.BalanceTransaction) (*domain.BalanceTransaction, error) {
			assert.InDelta(t, 0.98, tr.BalanceBefore, 1e-9)
			assert.InDelta(t, tr.BalanceBefore+tr.Amount, tr.BalanceAfter, 1e-9)
			return tr, nil
		})

	balance, err := service.Credit(context.Background(), 1, 1.00, domain.TransactionRecharge, "test", "")
	assert.NoError(t, err)
	assert.InDelta(t, 1.98, balance.CurrentBalance, 1e-9)
}

func TestRedeemCoupon_SnapshotsSurviveConcurrentDeduction(t *testing.T) {
	service, m := NewMock(t)
	passThroughTx(m)

	coupon := &domain.Coupon{ID: 10, Code: "WELCOME5", Amount: 5.0, MaxUses: 1, UsedCount: 0}
	m.couponRepo.EXPECT().GetByCodeForUpdate(gomock.Any(), "WELCOME5").Return(coupon, nil)
	m.couponRepo.EXPECT().HasRedemption(gomock.Any(), 10, 1).Return(false, nil)
	m.couponRepo.EXPECT().CreateRedemption(gomock.Any(), 10, 1).Return(nil)
	m.couponRepo.EXPECT().IncrementUsedCount(gomock.Any(), 10).Return(nil)
	m.balanceRepo.EXPECT().GetUserBalance(gomock.Any(), 1).Return(&domain.Balance{
		UserID: 1, CurrentBalance: 1.00,
	}, nil)
	m.balanceRepo.EXPECT().Credit(gomock.Any(), 1, 5.0, 5.0).Return(&domain.Balance{
		UserID: 1, CurrentBalance: 5.98,
	}, nil)
	m.balanceRepo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, tr *domain.BalanceTransaction) (*domain.BalanceTransaction, error) {
			assert.InDelta(t, 0.98, tr.BalanceBefore, 1e-9)
			assert.InDelta(t, tr.BalanceBefore+tr.Amount, tr.BalanceAfter, 1e-9)
			return tr, nil
		})

	balance, err := service.RedeemCoupon(context.Background(), 1, "WELCOME5")
	assert.NoError(t, err)
	assert.InDelta(t, 5.98, balance.CurrentBalance, 1e-9)
}

func TestGetHistory(t *testing.T) {
	service, m := NewMock(t)

	transactions := []domain.BalanceTransaction{
		{ID: 3, Amount: -0.02}, {ID: 2, Amount: -0.02},
	}
	m.balanceRepo.EXPECT().GetTransactions(gomock.Any(), 1, 2, 0, "").Return(transactions, 5, nil)

	history, err := service.GetHistory(context.Background(), 1, 2, 0, "")
	assert.NoError(t, err)
	assert.Len(t, history.Transactions, 2)
	assert.Equal(t, 5, history.Total)
	assert.True(t, history.HasMore)
}

func TestRedeemCoupon(t *testing.T) {
	coupon := &domain.Coupon{ID: 10, Code: "WELCOME5", Amount: 5.0, MaxUses: 1, UsedCount: 0}

	tests := []struct {
		name        string
		prepareMock func(m *mocks)
		expectedErr error
	}{
		{
			name: "Successful redemption",
			prepareMock: func(m *mocks) {
				m.couponRepo.EXPECT().GetByCodeForUpdate(gomock.Any(), "WELCOME5").Return(coupon, nil)
				m.couponRepo.EXPECT().HasRedemption(gomock.Any(), 10, 1).Return(false, nil)
				m.couponRepo.EXPECT().CreateRedemption(gomock.Any(), 10, 1).Return(nil)
				m.couponRepo.EXPECT().IncrementUsedCount(gomock.Any(), 10).Return(nil)
				m.balanceRepo.EXPECT().GetUserBalance(gomock.Any(), 1).Return(&domain.Balance{
					UserID: 1, CurrentBalance: 1.0,
				}, nil)
				m.balanceRepo.EXPECT().Credit(gomock.Any(), 1, 5.0, 5.0).Return(&domain.Balance{
					UserID: 1, CurrentBalance: 6.0,
				}, nil)
				m.balanceRepo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, tr *domain.BalanceTransaction) (*domain.BalanceTransaction, error) {
						assert.Equal(t, domain.TransactionRecharge, tr.Type)
						assert.Equal(t, "coupon WELCOME5", tr.Description)
						return tr, nil
					})
			},
		},
		{
			name: "Unknown code",
			prepareMock: func(m *mocks) {
				m.couponRepo.EXPECT().GetByCodeForUpdate(gomock.Any(), "WELCOME5").Return(nil, nil)
			},
			expectedErr: ErrCouponNotFound,
		},
		{
			name: "Exhausted coupon",
			prepareMock: func(m *mocks) {
				used := *coupon
				used.UsedCount = 1
				m.couponRepo.EXPECT().GetByCodeForUpdate(gomock.Any(), "WELCOME5").Return(&used, nil)
				m.couponRepo.EXPECT().HasRedemption(gomock.Any(), 10, 1).Return(false, nil)
			},
			expectedErr: ErrCouponExhausted,
		},
		{
			name: "Second redemption by same user",
			prepareMock: func(m *mocks) {
				m.couponRepo.EXPECT().GetByCodeForUpdate(gomock.Any(), "WELCOME5").Return(coupon, nil)
				m.couponRepo.EXPECT().HasRedemption(gomock.Any(), 10, 1).Return(true, nil)
			},
			expectedErr: ErrCouponAlreadyRedeemed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			passThroughTx(m)
			tt.prepareMock(m)

			balance, err := service.RedeemCoupon(context.Background(), 1, "WELCOME5")
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, balance)
			} else {
				assert.NoError(t, err)
				assert.InDelta(t, 6.0, balance.CurrentBalance, 1e-9)
			}
		})
	}
}
