package main

import (
	"context"
	"log"
	"os"

	"gotodo/internal/client"
	"gotodo/internal/config"
	"gotodo/internal/syncer"
	"gotodo/internal/view"
)

func main() {
	cfg := config.New()

	log.Printf("Клиент подключается к API по адресу %s", cfg.APIURL)

	apiClient := client.New(cfg.APIURL)

	tasks := syncer.NewTaskSynchronizer(apiClient)
	users := syncer.NewUserSynchronizer(apiClient)

	v := view.New(tasks, users, os.Stdout)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go v.Watch(ctx)

	// Начальные загрузки уходят независимо и наперегонки:
	// порядок завершения не гарантируется, состояние у каждой свое.
	// Ошибки уже записаны в журнал внутри List.
	go func() { _ = tasks.List(ctx) }()
	go func() { _ = users.List(ctx) }()

	if err := v.Run(ctx, os.Stdin); err != nil {
		log.Fatal(err)
	}

	log.Println("Клиент завершен.")
}
