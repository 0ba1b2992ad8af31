package main

import (
	"context"
	"log"

	"restro-orders-be/internal/bootstrap"
	"restro-orders-be/internal/config"
	"restro-orders-be/internal/server"
	"restro-orders-be/internal/tracer"
	"restro-orders-be/pkg/database"
)

func main() {
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	cfg := config.Load()

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	container := bootstrap.NewContainer(gormDB, cfg)

	// Recover cashback for deliveries that were committed but never queued,
	// then start the consumer.
	go func() {
		ctx := context.Background()
		if err := container.ConsumerService.SweepUncredited(ctx); err != nil {
			log.Printf("Background Sweep Error: %v", err)
		}
		log.Println("Background: Starting Consumer Service...")
		if err := container.ConsumerService.Consume(ctx); err != nil {
			log.Printf("Background Consumer Error: %v", err)
		}
	}()

	srv := server.New(cfg, container)

	log.Fatal(srv.Run())
}
