package main

import (
	"context"
	"fmt"

	"github.com/shopmesh/orderservice/internal/adapter/client/catalog"
	"github.com/shopmesh/orderservice/internal/adapter/config"
	"github.com/shopmesh/orderservice/internal/adapter/handler/http"
	"github.com/shopmesh/orderservice/internal/adapter/logger"
	"github.com/shopmesh/orderservice/internal/adapter/storage"
	"github.com/shopmesh/orderservice/internal/adapter/storage/repository"
	"github.com/shopmesh/orderservice/internal/core/service"
	"go.uber.org/zap"
)

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		fmt.Printf("config error:%s", err)
		return
	}

	log := logger.NewLogger(conf.App)
	if log == nil {
		fmt.Printf("error creating log")
		return
	}
	defer func() {
		err := log.Sync()
		if err != nil {
			fmt.Printf("log error: %s", err)
		}
	}()

	ctx := context.Background()

	db, err := storage.NewDBStorage(ctx, conf.Database)
	if err != nil {
		log.Error("database error", zap.Error(err))
		return
	}
	err = db.RunMigrations()
	if err != nil {
		log.Error("database migration error", zap.Error(err))
		return
	}

	repo, err := repository.NewRepository(db)
	if err != nil {
		log.Error("order repo creating error", zap.Error(err))
		return
	}

	catalogClient, err := catalog.NewClient(conf.Catalog, log.Named("Catalog"))
	if err != nil {
		log.Error("catalog client creating error", zap.Error(err))
		return
	}

	svc, err := service.NewService(repo, catalogClient,
		service.NewStateMachine(), service.NewBuilder(), log.Named("Service"))
	if err != nil {
		log.Error("order service creating error", zap.Error(err))
		return
	}

	orderHandler, err := http.NewOrderHandler(svc, log.Named("Order handler"))
	if err != nil {
		log.Error("order handler creating error", zap.Error(err))
		return
	}

	r, err := http.NewRouter(conf.HTTP, orderHandler, log.Named("Router"))
	if err != nil {
		log.Error("router creating error", zap.Error(err))
		return
	}

	err = r.Serve(conf.HTTP.HostString)
	if err != nil {
		log.Error("router serve error", zap.Error(err))
		return
	}
}
