// main.go

package main

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// newStateStore picks the persistence backend: MongoDB when MONGO_URL (or
// MONGO_PUBLIC_URL) is set, otherwise JSON files under STATE_DIR.
func newStateStore(log *zap.Logger) StateStore {
	mongoURI := os.Getenv("MONGO_PUBLIC_URL")
	if mongoURI == "" {
		mongoURI = os.Getenv("MONGO_URL")
	}
	if mongoURI != "" {
		log.Info("connecting to MongoDB", zap.String("uri", mongoURI))
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
		if err != nil {
			log.Fatal("mongo connect failed", zap.Error(err))
		}
		return NewMongoStore(client.Database("nuclearvision"))
	}

	dir := envOr("STATE_DIR", "./data")
	store, err := NewFileStore(dir)
	if err != nil {
		log.Fatal("state dir unusable", zap.String("dir", dir), zap.Error(err))
	}
	log.Info("persisting state to files", zap.String("dir", dir))
	return store
}

func main() {
	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	store := newStateStore(log)
	catalog := NewCatalog(seedProducts)
	sessions := NewSessionRegistry(store, catalog, log)
	admin := NewAdminStore(store, AdminConfig{
		Email:     envOr("ADMIN_EMAIL", "admin@nuclearvision.com"),
		Password:  envOr("ADMIN_PASSWORD", "admin123"),
		JWTSecret: []byte(envOr("JWT_SECRET", "SECRET")),
	}, log)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(envOr("CORS_ORIGIN", "https://www.nuclearvision.com"), ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", sessionHeader},
		ExposeHeaders:    []string{sessionHeader},
		AllowCredentials: true,
	}))

	srv := NewServer(catalog, sessions, admin, log)
	srv.Routes(r)

	port := envOr("PORT", "8080")
	log.Info("listening", zap.String("port", port))
	if err := r.Run(":" + port); err != nil {
		log.Fatal("server exited", zap.Error(err))
	}
}
