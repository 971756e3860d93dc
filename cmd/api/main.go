package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	httpadp "loanflow/internal/adapter/http"
	"loanflow/internal/adapter/middleware"
	"loanflow/internal/adapter/repository/mysql"
	"loanflow/internal/config"
	"loanflow/internal/domain/loan"
	"loanflow/internal/domain/notification"
	"loanflow/internal/infrastructure/cache"
	"loanflow/internal/infrastructure/db"
	"loanflow/internal/infrastructure/logger"
	"loanflow/internal/usecase/lifecycle"
	"loanflow/internal/usecase/sla"
	"loanflow/internal/worker/notifier"
)

// logPort is the default NotificationPort: it just logs the intent.
// Real delivery transports plug in behind notification.Port.
type logPort struct{ log *zap.Logger }

func (p *logPort) NotifyStatusChange(_ context.Context, customerID, newStatus string) error {
	p.log.Info("status change notification",
		zap.String("customer_id", customerID),
		zap.String("new_status", newStatus),
	)
	return nil
}

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	zlog, err := logger.New(cfg.AppEnv)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		zlog.Fatal("mysql connect failed", zap.Error(err))
	}
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		zlog.Fatal("redis connect failed", zap.Error(err))
	}

	loans := mysql.NewLoanRepository(gdb)
	histories := mysql.NewHistoryRepository(gdb)
	customers := mysql.NewCustomerRepository(gdb)
	products := mysql.NewProductRepository(gdb)
	users := mysql.NewUserDirectory(gdb)
	outbox := mysql.NewOutboxRepository(gdb)
	tx := mysql.NewGormUoW(gdb)

	lifecycleUC := lifecycle.NewUsecase(lifecycle.Deps{
		Loans:     loans,
		Histories: histories,
		Customers: customers,
		Products:  products,
		Users:     users,
		UoW:       tx,
		Rules:     lifecycle.RiskRules{MinMonthlyIncome: cfg.MinMonthlyIncome},
		Log:       zlog,
	})
	slaUC := sla.NewUsecase(loans, histories, sla.Thresholds{
		Review:   cfg.ReviewSLA,
		Approval: cfg.ApprovalSLA,
		Disburse: cfg.DisburseSLA,
	})

	var port notification.Port = &logPort{log: zlog}
	worker := notifier.New(outbox, port, zlog, cfg.OutboxPollInterval, cfg.OutboxBatchSize)
	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()
	go worker.Run(workerCtx)

	h := httpadp.NewHandler()
	lh := httpadp.NewLoanHandler(lifecycleUC)
	sh := httpadp.NewSLAHandler(slaUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	e.GET("/health", h.Health)
	e.GET("/loans/:loan_id", lh.Get)
	e.GET("/loans/:loan_id/history", lh.History)
	e.GET("/loans/:loan_id/sla", sh.Report)
	e.GET("/customers/:customer_id/loans", lh.ListByCustomer)
	e.GET("/customers/:customer_id/plafond", lh.Plafond)

	idemp := middleware.Idempotency(rdb, zlog, time.Duration(cfg.IdempTTLSecs)*time.Second)
	m := e.Group("", idemp)
	m.POST("/loans", lh.Apply)
	m.POST("/loans/:loan_id/submit", lh.Transition(loan.ActionSubmit))
	m.POST("/loans/:loan_id/review", lh.Transition(loan.ActionReview))
	m.POST("/loans/:loan_id/approve", lh.Transition(loan.ActionApprove))
	m.POST("/loans/:loan_id/disburse", lh.Transition(loan.ActionDisburse))
	m.POST("/loans/:loan_id/complete", lh.Transition(loan.ActionComplete))
	m.POST("/loans/:loan_id/reject", lh.Transition(loan.ActionReject))
	m.POST("/loans/:loan_id/cancel", lh.Transition(loan.ActionCancel))
	m.POST("/loans/:loan_id/rollback", lh.Transition(loan.ActionRollback))

	addr := ":" + cfg.AppPort
	zlog.Info("listening", zap.String("addr", addr))
	if err := e.Start(addr); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
