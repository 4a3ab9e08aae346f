package domain

import "time"

// Tracking cadence values accepted on a keyword. Manual keywords are only
// checked on explicit user action.
const (
	FrequencyManual     string = "manual"
	FrequencyDaily      string = "daily"
	FrequencyEvery2Days string = "every_2_days"
	FrequencyWeekly     string = "weekly"
)

const (
	DeviceDesktop string = "desktop"
	DeviceMobile  string = "mobile"
)

type Project struct {
	ID        int       `db:"id"`
	UserID    int       `db:"user_id"`
	Domain    string    `db:"domain"`
	Country   string    `db:"country"`
	Frequency string    `db:"frequency"`
	CreatedAt time.Time `db:"created_at"`
}

// DomainLock reserves a domain globally for one user. The lock outlives
// project deletion so another account cannot squat a freed domain.
type DomainLock struct {
	ID        int       `db:"id"`
	Domain    string    `db:"domain"`
	UserID    int       `db:"user_id"`
	CreatedAt time.Time `db:"created_at"`
}

type Keyword struct {
	ID            int        `db:"id"`
	ProjectID     int        `db:"project_id"`
	Term          string     `db:"term"`
	Country       string     `db:"country"`
	Device        string     `db:"device"`
	Frequency     string     `db:"frequency"`
	LastCheckedAt *time.Time `db:"last_checked_at"`
	QueuedAt      *time.Time `db:"queued_at"`
	LastError     string     `db:"last_error"`
	CreatedAt     time.Time  `db:"created_at"`
}

// KeywordPosition is an append-only history row. Position 0 means the target
// domain was not found within the scanned window; URL is nil in that case.
type KeywordPosition struct {
	ID        int       `db:"id"`
	KeywordID int       `db:"keyword_id"`
	Position  int       `db:"position"`
	URL       *string   `db:"url"`
	CheckedAt time.Time `db:"checked_at"`
}

type Balance struct {
	ID             int     `db:"id"`
	UserID         int     `db:"user_id"`
	CurrentBalance float64 `db:"current_balance"`
	RechargedTotal float64 `db:"recharged_total"`
	SpentTotal     float64 `db:"spent_total"`
}

// Balance transaction types.
const (
	TransactionRecharge        string = "recharge"
	TransactionUsage           string = "usage"
	TransactionAdminAdjustment string = "admin_adjustment"
)

// BalanceTransaction is an append-only ledger row. BalanceAfter must always
// equal BalanceBefore + Amount; Amount is negative for usage.
type BalanceTransaction struct {
	ID            int       `db:"id"`
	UserID        int       `db:"user_id"`
	Type          string    `db:"type"`
	Amount        float64   `db:"amount"`
	BalanceBefore float64   `db:"balance_before"`
	BalanceAfter  float64   `db:"balance_after"`
	Description   string    `db:"description"`
	Metadata      string    `db:"metadata"`
	Reference     string    `db:"reference"`
	CreatedAt     time.Time `db:"created_at"`
}

type Coupon struct {
	ID        int       `db:"id"`
	Code      string    `db:"code"`
	Amount    float64   `db:"amount"`
	MaxUses   int       `db:"max_uses"`
	UsedCount int       `db:"used_count"`
	CreatedAt time.Time `db:"created_at"`
}

type CouponRedemption struct {
	ID         int       `db:"id"`
	CouponID   int       `db:"coupon_id"`
	UserID     int       `db:"user_id"`
	RedeemedAt time.Time `db:"redeemed_at"`
}
