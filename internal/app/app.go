package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/draftea-connector-service/config"
	"github.com/jeffleon2/draftea-connector-service/internal/connector"
	handlers "github.com/jeffleon2/draftea-connector-service/internal/handlers"
	"github.com/jeffleon2/draftea-connector-service/internal/metrics"
	"github.com/jeffleon2/draftea-connector-service/internal/models"
	"github.com/jeffleon2/draftea-connector-service/internal/publisher"
	"github.com/jeffleon2/draftea-connector-service/internal/repository/posgrest"
	"github.com/jeffleon2/draftea-connector-service/internal/scheduler"
	"github.com/jeffleon2/draftea-connector-service/internal/service"
	"github.com/jeffleon2/draftea-connector-service/internal/subscriber"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

type deadLetterPublisher interface {
	connector.DeadLetterPublisher
	Close() error
}

type deadLetterConsumer interface {
	Listen(ctx context.Context, handler subscriber.Handler) error
}

type App struct {
	config *config.Config
	Router *gin.Engine

	db           *gorm.DB
	publisher    deadLetterPublisher
	transactions *service.TransactionService
	rescue       *service.RescueService
	locker       *posgrest.Locker
}

func (a *App) Initialize(cfg *config.Config) error {
	a.config = cfg
	cfg.APP.ConfigureLogger()
	metrics.RegisterMetrics()

	db, err := cfg.DB.GormConnect()
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.AutoMigrate(&models.TransactionAudit{}, &models.SchedulerLock{}); err != nil {
		return fmt.Errorf("failed to auto migrate: %w", err)
	}
	a.db = db

	auditRepo := posgrest.NewAuditRepository(db)

	var route connector.Route
	a.publisher, route = a.newDeadLetterPublisher()

	httpClient := connector.NewHTTPClient(context.Background(), cfg.External)
	externalConnector := connector.NewConnector(httpClient, cfg.External, cfg.GetRetryConfig(), a.publisher, route)

	a.transactions = service.NewTransactionService(auditRepo, externalConnector)
	a.rescue = service.NewRescueService(auditRepo, externalConnector,
		cfg.Scheduler.RescueStaleness, cfg.Scheduler.PendingDeadline, cfg.Scheduler.BatchSize)
	a.locker = posgrest.NewLocker(db)

	if !cfg.APP.IsLocal() {
		gin.SetMode(gin.ReleaseMode)
	}
	a.Router = gin.New()
	a.Router.Use(gin.Logger(), gin.Recovery())
	a.RegisterRoutes(handlers.NewTransactionHandler(a.transactions), a.ping)

	logrus.WithFields(logrus.Fields{
		"roles":       cfg.APP.Roles,
		"dead_letter": cfg.DeadLetter.Backend,
		"external":    cfg.External.BaseURL,
	}).Info("application initialized")
	return nil
}

func (a *App) newDeadLetterPublisher() (deadLetterPublisher, connector.Route) {
	if a.config.DeadLetter.Backend == config.BackendKafka {
		topic := a.config.Kafka.DeadLetterTopic
		return publisher.NewKafkaPublisher(a.config.Kafka.BrokerList(), []string{topic}, config.RetryConfig{}),
			connector.Route{Exchange: topic, RoutingKey: a.config.RabbitMQ.RoutingKey}
	}
	return publisher.NewRabbitMQPublisher(a.config.RabbitMQ),
		connector.Route{Exchange: a.config.RabbitMQ.Exchange, RoutingKey: a.config.RabbitMQ.RoutingKey}
}

func (a *App) newDeadLetterConsumer() deadLetterConsumer {
	if a.config.DeadLetter.Backend == config.BackendKafka {
		return subscriber.NewKafkaConsumer(a.config.Kafka.BrokerList(), a.config.Kafka.DeadLetterTopic, a.config.Kafka.ConsumerGroup)
	}
	return subscriber.NewRabbitMQConsumer(a.config.RabbitMQ)
}

func (a *App) ping(ctx context.Context) error {
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Run starts the components selected by APP_ROLES and blocks until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	var wg sync.WaitGroup

	runner := a.initScheduler()
	if runner != nil {
		runner.Start(ctx)
	}

	if a.config.APP.HasRole(config.RoleConsumer) {
		consumer := a.newDeadLetterConsumer()
		retryHandler := handlers.NewRetryHandler(a.transactions)
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := consumer.Listen(ctx, retryHandler.HandleDeadLetter); err != nil {
				logrus.WithError(err).Error("retry consumer stopped")
			}
			if c, ok := consumer.(interface{ Close() error }); ok {
				_ = c.Close()
			}
		}()
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", a.config.APP.PORT),
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	serveErr := make(chan error, 1)
	go func() {
		logrus.Infof("listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	var runErr error
	select {
	case <-ctx.Done():
	case err := <-serveErr:
		runErr = err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Warn("http server shutdown")
	}

	if runner != nil {
		runner.Wait()
	}
	wg.Wait()
	a.close()
	return runErr
}

func (a *App) initScheduler() *scheduler.Runner {
	s := a.config.Scheduler
	var jobs []scheduler.Job
	if a.config.APP.HasRole(config.RoleRescuer) {
		jobs = append(jobs, scheduler.Job{Name: service.JobRescueFailed, Interval: s.RescueInterval, Run: a.rescue.RescueFailed})
	}
	if a.config.APP.HasRole(config.RoleCleanup) {
		jobs = append(jobs, scheduler.Job{Name: service.JobExpirePending, Interval: s.CleanupInterval, Run: a.rescue.ExpireStalePending})
	}
	if len(jobs) == 0 {
		return nil
	}
	return scheduler.NewRunner(a.locker, scheduler.LockConfig{AtMostFor: s.LockAtMostFor, AtLeastFor: s.LockAtLeastFor}, jobs...)
}

func (a *App) close() {
	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			logrus.WithError(err).Warn("error closing dead letter publisher")
		}
	}
	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	logrus.Info("shutdown complete")
}
