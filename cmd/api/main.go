package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	handlerHttp "github.com/ramentaro/ramen-taro-api/internal/handler/http"
	"github.com/ramentaro/ramen-taro-api/internal/infrastructure/cache"
	"github.com/ramentaro/ramen-taro-api/internal/infrastructure/config"
	"github.com/ramentaro/ramen-taro-api/internal/infrastructure/database"
	jwtinfra "github.com/ramentaro/ramen-taro-api/internal/infrastructure/jwt"
	"github.com/ramentaro/ramen-taro-api/internal/infrastructure/logger"
	passwordservice "github.com/ramentaro/ramen-taro-api/internal/infrastructure/password_service"
	"github.com/ramentaro/ramen-taro-api/internal/infrastructure/repository/mongodb"
	"github.com/ramentaro/ramen-taro-api/internal/infrastructure/store"
	"github.com/ramentaro/ramen-taro-api/internal/infrastructure/uuidgen"
	"github.com/ramentaro/ramen-taro-api/internal/infrastructure/validator"
	"github.com/ramentaro/ramen-taro-api/internal/usecase"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		log.Fatal("MONGODB_URI environment variable not set")
	}
	dbName := os.Getenv("MONGODB_DB_NAME")
	if dbName == "" {
		log.Fatal("MONGODB_DB_NAME environment variable not set")
	}

	// Establish MongoDB connection
	mongoClient, err := database.NewMongoDBClient(mongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Disconnect()

	// Register custom validators
	validator.RegisterCustomValidators()

	// Initialize Gin router
	router := gin.Default()

	// Dependency Injection: Repositories
	db := mongoClient.Client.Database(dbName)
	tagRepo := mongodb.NewTagRepository(db)
	postRepo := mongodb.NewPostRepository(db)

	// Dependency Injection: Services
	appConfig := config.NewConfig()
	appLogger := logger.NewStdLogger()
	hasher := passwordservice.NewHasher()
	uuidGenerator := uuidgen.NewGenerator()

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable not set")
	}
	jwtService := jwtinfra.NewJWTManager(jwtSecret, appConfig.GetAdminTokenExpiry())

	// Dependency Injection: Usecases
	suggestionUsecase := usecase.NewSuggestionUseCase(tagRepo, uuidGenerator, appLogger)
	bulkUsecase := usecase.NewBulkTagUseCase(postRepo, tagRepo, suggestionUsecase, appLogger)
	postUsecase := usecase.NewPostUseCase(postRepo, uuidGenerator, appLogger)
	authUsecase := usecase.NewAuthUseCase(hasher, jwtService, appConfig, appLogger)

	// Optional Dependency Injection: Redis vocabulary cache
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		rdb, err := cache.NewRedisFromURL(context.Background(), redisURL)
		if err != nil {
			log.Printf("Redis unavailable, continuing without vocabulary cache: %v", err)
		} else {
			defer cache.Close(rdb)
			tagCache := store.NewTagCacheStore(rdb, appConfig.GetVocabularyCacheTTL())
			suggestionUsecase.SetVocabularyCache(tagCache)
		}
	}

	// Setup API routes
	appRouter := handlerHttp.NewRouter(
		suggestionUsecase, bulkUsecase, postUsecase, authUsecase,
		tagRepo, jwtService, appLogger, appConfig,
	)
	appRouter.SetupRoutes(router)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
