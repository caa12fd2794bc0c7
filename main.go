package main

import (
	"log"
	"time"

	"campus-canteen/config"
	httpapi "campus-canteen/internal/api/http"
	"campus-canteen/internal/service"
	"campus-canteen/internal/storage"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	sessions := storage.NewSessionStore(config.MustInitRedis(), 12*time.Hour)
	publisher := storage.NewKafkaPublisher(config.NewKafkaWriter("order-events"))

	orderSvc := service.NewOrderService(repo, repo, publisher,
		service.DefaultQRGenerator{BaseURL: config.BaseURL()})
	locationSvc := service.NewLocationService(repo)

	creds := config.LoadAdminCredentials()
	authSvc := service.NewAuthService(creds.Username, creds.Password, sessions)

	templates, err := httpapi.LoadTemplates(config.TemplatesDir())
	if err != nil {
		log.Fatal("Failed to parse templates:", err)
	}

	handler := httpapi.NewHandler(orderSvc, locationSvc, authSvc, templates)
	httpapi.StartServer(config.ServerAddr(), httpapi.NewRouter(handler))
}
