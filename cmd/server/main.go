package main

import (
	"log"

	redisv9 "github.com/redis/go-redis/v9"

	"questify_backend/internal/app/di"
	"questify_backend/internal/app/router"
	authadapters "questify_backend/internal/feature/auth/adapters"
	authhandler "questify_backend/internal/feature/auth/transport/handler"
	authusecase "questify_backend/internal/feature/auth/usecase"
	taskhandler "questify_backend/internal/feature/tasks/transport/handler"
	taskusecase "questify_backend/internal/feature/tasks/usecase"
	"questify_backend/internal/platform/config"
	"questify_backend/internal/platform/db"
	jwtmw "questify_backend/internal/platform/jwt"
	infraredis "questify_backend/internal/platform/redis"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if cfg.Auth.JWTSecret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	// db
	gormDB := db.OpenDB(cfg.DB)

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(cfg.Redis); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	userRepo := authadapters.NewUserMySQL(gormDB)
	taskRepo := di.NewTaskRepository(rdb, gormDB)

	// Usecase
	tokenGen := jwtmw.NewGenerator(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	authUC := authusecase.NewAuthUsecase(userRepo, tokenGen)
	taskUC := taskusecase.NewTaskUsecase(taskRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	taskH := taskhandler.NewTaskHandler(taskUC)

	// Router
	authMW := jwtmw.AuthRequired(userRepo, cfg.Auth.JWTSecret)
	r := router.NewRouter(authH, taskH, authMW)

	if err := r.Run(cfg.Server.Addr); err != nil {
		log.Fatal(err)
	}
}
