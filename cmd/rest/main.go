package main

import (
	"context"
	"log"

	"skillswap-be/internal/bootstrap"
	"skillswap-be/internal/config"
	"skillswap-be/internal/server"
	"skillswap-be/internal/tracer"
	"skillswap-be/pkg/database"
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

	go func() {
		log.Println("Background: Starting delivery service...")
		if err := container.DeliveryService.Consume(context.Background()); err != nil {
			log.Printf("Background delivery error: %v", err)
		}
	}()

	srv := server.New(cfg, container)

	log.Fatal(srv.Run())
}
