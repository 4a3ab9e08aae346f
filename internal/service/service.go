package service

import (
	"github.com/akazarov/serptrack/internal/config"
	"github.com/akazarov/serptrack/internal/handlers/balance"
	"github.com/akazarov/serptrack/internal/handlers/projects"
	"github.com/akazarov/serptrack/internal/notify"
	"github.com/akazarov/serptrack/internal/pg"
	"github.com/akazarov/serptrack/internal/repo"
	"github.com/akazarov/serptrack/internal/serp"
	balanceservice "github.com/akazarov/serptrack/internal/service/balanceservice"
	checkservice "github.com/akazarov/serptrack/internal/service/checkservice"
	pricingservice "github.com/akazarov/serptrack/internal/service/pricingservice"
	projectservice "github.com/akazarov/serptrack/internal/service/projectservice"
	"github.com/akazarov/serptrack/internal/worker"
)

type Services struct {
	BalanceService balance.Service
	ProjectService projects.Service
	WorkerService  *worker.Service
	CheckService   *checkservice.Service
	PricingService *pricingservice.Service
}

func New(cfg *config.Config, repo *repo.Repositories, txManager pg.TXManager, provider serp.Provider, notifier notify.Notifier) *Services {
	pricingService := pricingservice.New(repo.SettingsRepo)
	balanceService := balanceservice.New(repo.BalanceRepo, repo.CouponRepo, pricingService, txManager, notifier, cfg.WelcomeCredit, cfg.LowBalanceLevel)
	projectService := projectservice.New(repo.ProjectRepo, txManager)
	checkService := checkservice.New(repo.KeywordRepo, repo.ProjectRepo, provider)
	workerService := worker.New(cfg, repo.KeywordRepo, repo.ProjectRepo, balanceService, checkService)

	return &Services{
		BalanceService: balanceService,
		ProjectService: projectService,
		WorkerService:  workerService,
		CheckService:   checkService,
		PricingService: pricingService,
	}
}
