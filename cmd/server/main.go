package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"patient_backend/internal/app/router"
	patientadapters "patient_backend/internal/feature/patients/adapters"
	patienthandler "patient_backend/internal/feature/patients/transport/handler"
	"patient_backend/internal/feature/patients/transport/http/dto"
	patientusecase "patient_backend/internal/feature/patients/usecase"
	"patient_backend/internal/platform/cache"
	infradb "patient_backend/internal/platform/db"
	infraredis "patient_backend/internal/platform/redis"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables.")
	}

	// db
	db := infradb.OpenDB()

	// Redis (optional: the service runs uncached without it)
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
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

	// Custom binding rules (personname, json field names in errors)
	if err := dto.RegisterValidations(); err != nil {
		log.Fatalf("failed to register validations: %v", err)
	}

	// Repository, wrapped with the Redis list cache
	patientRepo := patientadapters.NewPatientGorm(db)
	cachedPatientRepo := cache.NewCachingPatientRepository(rdb, 0, patientRepo, "patients")

	// Usecase
	patientUC := patientusecase.NewPatientUsecase(cachedPatientRepo)

	// Handler
	patientH := patienthandler.NewPatientHandler(patientUC)

	// The gate secret is read once here and passed into the middleware
	accessKey := os.Getenv("ACCESS_KEY")
	if accessKey == "" {
		log.Println("[WARN] ACCESS_KEY is not set. All gated requests will be rejected.")
	}

	r := router.NewRouter(patientH, accessKey)

	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
