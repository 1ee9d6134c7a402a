package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"studyhub/backend/internal/auth"
	"studyhub/backend/internal/config"
	"studyhub/backend/internal/database"
	"studyhub/backend/internal/handler"
	"studyhub/backend/internal/service"
	"studyhub/backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	// Swagger imports
	_ "studyhub/backend/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	config.LoadConfig()
}

// @title           StudyHub API
// @version         1.0
// @description     This is the API for the StudyHub service.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.InitLogger(logrus.InfoLevel)

	// Connect to the database
	database.Connect(config.AppConfig.DatabaseURL)

	if err := os.MkdirAll(config.AppConfig.UploadDir, 0o755); err != nil {
		log.Fatalf("Failed to create upload directory: %v", err)
	}

	// --- Services ---
	relationshipService := service.NewRelationshipService(database.DB)
	messagingService := service.NewMessagingService(database.DB, relationshipService)
	fileService := service.NewFileService(database.DB)
	sharingService := service.NewSharingService(database.DB, relationshipService, fileService)
	searchService := service.NewSearchService(database.DB)

	// --- Handlers ---
	userHandler := handler.NewUserHandler(searchService)
	friendHandler := handler.NewFriendHandler(relationshipService)
	messageHandler := handler.NewMessageHandler(messagingService)
	sharedFileHandler := handler.NewSharedFileHandler(sharingService)
	fileHandler := handler.NewFileHandler(fileService, config.AppConfig.UploadDir)
	dashboardHandler := handler.NewDashboardHandler()

	router := gin.Default()

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// API v1 routes
	apiV1 := router.Group("/api/v1")
	{
		// Auth routes
		authRoutes := apiV1.Group("/auth")
		{
			authRoutes.POST("/register", userHandler.RegisterUser)
			authRoutes.POST("/login", userHandler.LoginUser)
		}

		// User routes (protected)
		userRoutes := apiV1.Group("/users")
		userRoutes.Use(auth.AuthMiddleware())
		{
			userRoutes.GET("/me", userHandler.GetMe)
			userRoutes.GET("/search", userHandler.SearchUsers)
		}

		// Friendship routes (protected)
		friendRoutes := apiV1.Group("/friends")
		friendRoutes.Use(auth.AuthMiddleware())
		{
			friendRoutes.GET("", friendHandler.ListFriends)
			friendRoutes.POST("/requests", friendHandler.SendRequest)
			friendRoutes.GET("/requests/pending", friendHandler.ListPending)
			friendRoutes.POST("/requests/:id/accept", friendHandler.AcceptRequest)
			friendRoutes.POST("/requests/:id/reject", friendHandler.RejectRequest)
			friendRoutes.POST("/requests/:id/cancel", friendHandler.CancelRequest)
			friendRoutes.POST("/:id/remove", friendHandler.RemoveFriend)
		}

		// Messaging routes (protected)
		messageRoutes := apiV1.Group("/messages")
		messageRoutes.Use(auth.AuthMiddleware())
		{
			messageRoutes.POST("", messageHandler.SendMessage)
			messageRoutes.GET("", messageHandler.GetConversation)
			messageRoutes.GET("/conversations", messageHandler.GetRecentConversations)
			messageRoutes.POST("/read", messageHandler.MarkRead)
		}

		// Shared file routes (protected)
		sharedFileRoutes := apiV1.Group("/shared-files")
		sharedFileRoutes.Use(auth.AuthMiddleware())
		{
			sharedFileRoutes.POST("", sharedFileHandler.ShareFile)
			sharedFileRoutes.GET("/with-me", sharedFileHandler.SharedWithMe)
			sharedFileRoutes.GET("/by-me", sharedFileHandler.SharedByMe)
			sharedFileRoutes.POST("/:id/read", sharedFileHandler.MarkRead)
		}

		// File routes (protected)
		fileRoutes := apiV1.Group("/files")
		fileRoutes.Use(auth.AuthMiddleware())
		{
			fileRoutes.POST("", fileHandler.Upload)
			fileRoutes.GET("", fileHandler.List)
			fileRoutes.GET("/:id/text", fileHandler.ExtractText)
			fileRoutes.GET("/:id/download", fileHandler.Download)
			fileRoutes.DELETE("/:id", fileHandler.Delete)
		}

		// Dashboard route (protected)
		dashboardRoutes := apiV1.Group("/dashboard")
		dashboardRoutes.Use(auth.AuthMiddleware())
		{
			dashboardRoutes.GET("", dashboardHandler.Summary)
		}
	}

	fmt.Println("Server is running on " + config.AppConfig.ServerAddr)
	fmt.Println("Swagger UI is available at http://localhost:8080/swagger/index.html")
	log.Fatal(router.Run(config.AppConfig.ServerAddr))
}
