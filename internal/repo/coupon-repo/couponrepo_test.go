package couponrepo

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_GetByCodeForUpdate(t *testing.T) {
	repo, mock := NewMock(t)

	createdAt := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	rows := pgxmock.NewRows([]string{"id", "code", "amount", "max_uses", "used_count", "created_at"}).
		AddRow(2, "WELCOME5", 5.0, 100, 42, createdAt)
	mock.ExpectQuery(regexp.QuoteMeta(`FOR UPDATE`)).
		WithArgs("WELCOME5").
		WillReturnRows(rows)

	coupon, err := repo.GetByCodeForUpdate(context.Background(), "WELCOME5")

	assert.NoError(t, err)
	assert.Equal(t, "WELCOME5", coupon.Code)
	assert.Equal(t, 42, coupon.UsedCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByCodeForUpdate_Missing(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FOR UPDATE`)).
		WithArgs("NOPE").
		WillReturnError(pgx.ErrNoRows)

	coupon, err := repo.GetByCodeForUpdate(context.Background(), "NOPE")

	assert.NoError(t, err)
	assert.Nil(t, coupon)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_HasRedemption(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS`)).
		WithArgs(2, 11).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	redeemed, err := repo.HasRedemption(context.Background(), 2, 11)

	assert.NoError(t, err)
	assert.True(t, redeemed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CreateRedemption(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO coupon_redemptions`)).
		WithArgs(2, 11).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.CreateRedemption(context.Background(), 2, 11)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_IncrementUsedCount(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`SET used_count = used_count + 1`)).
		WithArgs(2).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.IncrementUsedCount(context.Background(), 2)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
