package repo

import (
	"github.com/akazarov/serptrack/internal/pg"
	balancerepo "github.com/akazarov/serptrack/internal/repo/balance-repo"
	couponrepo "github.com/akazarov/serptrack/internal/repo/coupon-repo"
	keywordrepo "github.com/akazarov/serptrack/internal/repo/keyword-repo"
	projectrepo "github.com/akazarov/serptrack/internal/repo/project-repo"
	settingsrepo "github.com/akazarov/serptrack/internal/repo/settings-repo"
)

type Repositories struct {
	ProjectRepo  *projectrepo.Repository
	KeywordRepo  *keywordrepo.Repository
	BalanceRepo  *balancerepo.Repository
	CouponRepo   *couponrepo.Repository
	SettingsRepo *settingsrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		ProjectRepo:  projectrepo.New(conn, txManager),
		KeywordRepo:  keywordrepo.New(conn, txManager),
		BalanceRepo:  balancerepo.New(conn, txManager),
		CouponRepo:   couponrepo.New(conn),
		SettingsRepo: settingsrepo.New(conn),
	}
}
