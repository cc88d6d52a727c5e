package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "welfare-backend/internal/adapter/http"
	"welfare-backend/internal/adapter/middleware"
	"welfare-backend/internal/adapter/repository/mysql"
	"welfare-backend/internal/config"
	loanDomain "welfare-backend/internal/domain/loan"
	"welfare-backend/internal/infrastructure/cache"
	"welfare-backend/internal/infrastructure/db"
	"welfare-backend/internal/infrastructure/logging"
	contributionUC "welfare-backend/internal/usecase/contribution"
	investmentUC "welfare-backend/internal/usecase/investment"
	loanUC "welfare-backend/internal/usecase/loan"
	memberUC "welfare-backend/internal/usecase/member"
	milestoneUC "welfare-backend/internal/usecase/milestone"
	reportUC "welfare-backend/internal/usecase/report"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(false)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	gormDB, err := db.OpenGorm(cfg.MySQLDSN(), logger)
	if err != nil {
		logger.Fatalw("mysql connect failed", "err", err)
	}
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		logger.Fatalw("redis connect failed", "err", err)
	}

	// repositories
	members := mysql.NewMemberRepository(gormDB)
	contributions := mysql.NewContributionRepository(gormDB)
	loans := mysql.NewLoanRepository(gormDB)
	investments := mysql.NewInvestmentRepository(gormDB)
	milestones := mysql.NewMilestoneRepository(gormDB)
	unit := mysql.NewGormUoW(gormDB)

	// usecases
	memberSvc := memberUC.NewUsecase(members, unit, logger)
	contributionSvc := contributionUC.NewUsecase(contributions, members, unit, cfg.MinContribution, logger)
	loanSvc := loanUC.NewUsecase(loans, members, unit,
		loanDomain.ModelByName(cfg.LoanRateModel), cfg.MinLoanContribution, logger)
	investmentSvc := investmentUC.NewUsecase(investments, unit, cfg.TaxBase, cfg.MinInvestment, logger)
	milestoneSvc := milestoneUC.NewUsecase(milestones, unit, logger)
	reportSvc := reportUC.NewUsecase(members, contributions, loans, investments)

	// handlers
	h := httpadp.NewHandler(reportSvc)
	mh := httpadp.NewMemberHandler(memberSvc)
	ch := httpadp.NewContributionHandler(contributionSvc)
	lh := httpadp.NewLoanHandler(loanSvc)
	ih := httpadp.NewInvestmentHandler(investmentSvc)
	msh := httpadp.NewMilestoneHandler(milestoneSvc)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	e.GET("/health", h.Health)

	v1 := e.Group("/api/v1")
	v1.GET("/dashboard", h.Dashboard)

	// Financial mutations replay safely behind the idempotency gate; the
	// onboarding endpoints are naturally idempotent and stay outside it.
	idem := middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second, logger)

	v1.POST("/members", mh.Register)
	v1.GET("/members/:member_id", mh.Get)
	v1.POST("/members/:member_id/verify-email", mh.VerifyEmail)
	v1.POST("/members/:member_id/approve", mh.Approve)
	v1.POST("/members/:member_id/reject", mh.Reject)
	v1.POST("/members/:member_id/resubmit", mh.Resubmit)
	v1.POST("/members/:member_id/deactivate", mh.Deactivate)
	v1.POST("/members/:member_id/reactivate", mh.Reactivate)
	v1.POST("/members/:member_id/recompute-balance", mh.RecomputeBalance)
	v1.GET("/members/:member_id/contributions", ch.ListByMember)
	v1.GET("/members/:member_id/eligibility", lh.Eligibility)
	v1.GET("/members/:member_id/loans", lh.ListByMember)
	v1.GET("/members/:member_id/distributions", ih.MemberDistributions)

	v1.POST("/contributions", ch.Submit, idem)
	v1.GET("/contributions/pending", ch.ListPending)
	v1.POST("/contributions/:reference/approve", ch.Approve, idem)
	v1.POST("/contributions/:reference/reject", ch.Reject, idem)

	v1.POST("/loans", lh.Apply, idem)
	v1.GET("/loans/:loan_id", lh.Get)
	v1.POST("/loans/:loan_id/approve", lh.Approve, idem)
	v1.POST("/loans/:loan_id/reject", lh.Reject, idem)
	v1.POST("/loans/:loan_id/payments", lh.RecordPayment, idem)
	v1.POST("/loans/sweep-overdue", lh.SweepOverdue, idem)
	v1.GET("/reports/interest", lh.InterestReport)

	v1.POST("/investments", ih.Create, idem)
	v1.GET("/investments", ih.List)
	v1.GET("/investments/:reference", ih.Get)
	v1.GET("/investments/:reference/distributions", ih.Distributions)
	v1.POST("/investments/:reference/distribute", ih.Distribute, idem)
	v1.POST("/investments/:reference/value", ih.UpdateValue, idem)
	v1.POST("/investments/:reference/mature", ih.Mature, idem)
	v1.POST("/investments/:reference/withdraw", ih.Withdraw, idem)

	v1.POST("/milestones", msh.Create)
	v1.GET("/milestones", msh.ListActive)
	v1.PATCH("/milestones/:milestone_id", msh.Update)
	v1.POST("/milestones/:milestone_id/progress", msh.SetProgress)
	v1.POST("/milestones/:milestone_id/progress/add", msh.AddProgress)
	v1.POST("/milestones/:milestone_id/cancel", msh.Cancel)

	addr := ":" + cfg.AppPort
	logger.Infow("listening", "addr", addr)
	if err := e.Start(addr); err != nil {
		logger.Fatalw("server stopped", "err", err)
	}
}
