package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gotodo/internal/api"
	"gotodo/internal/config"
	"gotodo/internal/database"
)

func main() {
	cfg := config.New()

	storage, err := database.New(cfg.DBFile)
	if err != nil {
		log.Fatal(err)
	}

	defer storage.Close()

	srv := &http.Server{
		Addr:              cfg.Port,
		Handler:           api.SetupRouter(storage),
		ReadHeaderTimeout: 1 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := srv.ListenAndServe(); err != nil {
			if errors.Is(err, http.ErrServerClosed) {
				log.Println("Сервер остановлен.")
			} else {
				log.Fatal(err)
			}
		}
	}()

	log.Printf("Сервер задач и пользователей запущен на порту %s", cfg.Port)

	<-quit

	if err := srv.Shutdown(context.Background()); err != nil {
		log.Fatal(err)
	}

	log.Println("Сервис остановлен.")
}
