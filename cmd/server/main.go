package main

import (
	"fmt"
	"net/http"

	"bookstore/auth"
	"bookstore/config"
	"bookstore/db"
	"bookstore/db/mongo"
	"bookstore/db/postgres"
	"bookstore/handlers"
	"bookstore/repository"
	"bookstore/routes"
)

func main() {
	// Load config from .env or config file
	cfg := config.LoadConfig()

	var userRepo repository.UserRepository
	var tokenRepo repository.TokenRepository
	var catalogRepo repository.CatalogRepository
	var cartRepo repository.CartRepository

	switch db.DBType(cfg.DBType) {
	case db.Postgres:
		db.RunMigrations(cfg.PostgresURL)

		pg := postgres.NewPostgresDB(cfg.PostgresURL)
		if err := pg.Connect(); err != nil {
			panic(err)
		}
		defer pg.Disconnect()

		userRepo = repository.NewPostgresUserRepo(pg.Conn)
		tokenRepo = repository.NewPostgresTokenRepo(pg.Conn)
		catalogRepo = repository.NewPostgresCatalogRepo(pg.Conn)
		cartRepo = repository.NewPostgresCartRepo(pg.Conn)

	case db.Mongo:
		mg := mongo.NewMongoDB(cfg.MongoURL)
		if err := mg.Connect(); err != nil {
			panic(err)
		}
		defer mg.Disconnect()

		userRepo = repository.NewMongoUserRepo(mg.Client)
		tokenRepo = repository.NewMongoTokenRepo(mg.Client)
		catalogRepo = repository.NewMongoCatalogRepo(mg.Client)
		cartRepo = repository.NewMongoCartRepo(mg.Client)

	default:
		panic("DB_TYPE not supported")
	}

	authManager := auth.NewManager(userRepo, tokenRepo, cfg)

	// Handlers
	authHandler := &handlers.AuthHandler{Auth: authManager, Users: userRepo, Debug: cfg.Debug}
	catalogHandler := &handlers.CatalogHandler{Repo: catalogRepo}
	cartHandler := &handlers.CartHandler{Cart: cartRepo, Catalog: catalogRepo}
	imageHandler := &handlers.ImageHandler{Dir: cfg.ImagesDir}

	routes.SetupRoutes(authHandler, catalogHandler, cartHandler, imageHandler)

	port := cfg.Port
	fmt.Printf("Server running on port %s\n", port)
	if err := http.ListenAndServe(":"+port, nil); err != nil {
		panic(err)
	}
}
