package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"finserver/src/api"
	"finserver/src/api/controllers"
	"finserver/src/config"
	"finserver/src/database"
	"finserver/src/repositories"
	"finserver/src/scheduler"
	"finserver/src/services"
	"finserver/src/utils"
	aws_handler "finserver/src/utils/aws"
	redis_utils "finserver/src/utils/redis"

	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.LoadConfig("./settings")
	if err != nil {
		log.Println(err, "Error while loading config")
		return
	}
	errC, err := run(cfg)
	if err != nil {
		log.Println(err, "Couldn't run")
		return
	}

	if err := <-errC; err != nil {
		log.Println(err, "Error while running")
	}
}

func run(cfg *config.Config) (<-chan error, error) {
	errC := make(chan error, 1)

	logger := utils.NewLogger(logrus.InfoLevel, false, "")

	if err := aws_handler.ResolveSecrets(cfg); err != nil {
		return nil, err
	}

	db, err := database.SetupDB(cfg)
	if err != nil {
		return nil, err
	}

	// The quote cache is optional. A broken redis only costs us caching.
	var cache controllers.QuoteCache
	redisHandler, err := redis_utils.NewRedisHandler(cfg)
	if err != nil {
		logger.Warnf("redis unavailable, market quote caching disabled: %v", err)
	} else {
		cache = redisHandler
	}

	server := api.NewServer(cfg, db, cache, logger)
	httpServer := api.NewHTTPServer(cfg, server)

	recurringService := services.NewRecurringService(
		repositories.NewRecurringTransactionRepository(db),
		repositories.NewBudgetTransactionRepository(db),
	)
	if _, err := scheduler.NewScheduledTask("0 1 * * *", func() {
		ctx, cancel := context.WithTimeout(utils.WithLogger(context.Background(), logger), 5*time.Minute)
		defer cancel()
		created, err := recurringService.MaterializeDue(ctx, time.Now())
		if err != nil {
			logger.Errorf("recurring materialization failed: %v", err)
			return
		}
		logger.Infof("recurring materialization created %d transactions", created)
	}); err != nil {
		return nil, err
	}

	go func() {
		logger.Infof("Starting server on port %s", cfg.Service.Port)

		// "ListenAndServe always returns a non-nil error. After Shutdown or Close, the returned error is
		// ErrServerClosed."
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errC <- err
		}
	}()
	return errC, nil
}
