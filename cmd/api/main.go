package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"portfolio/internal/config"
	"portfolio/internal/database"
	"portfolio/internal/domain/health"
	"portfolio/internal/domain/project"
	"portfolio/internal/domain/upload"
	"portfolio/internal/middleware"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := db.AutoMigrate(&project.Project{}); err != nil {
		log.Fatal(err)
	}

	projectService := project.NewService(project.NewRepository(db))
	projectHandler := project.NewHandler(projectService)

	converter := upload.NewSofficeConverter(cfg.ConvertBin, cfg.ConvertTimeout)
	uploadService := upload.NewService(cfg.UploadDir, "/uploads", cfg.MaxUploadFiles, converter)
	uploadHandler := upload.NewHandler(uploadService, cfg.PublicBaseURL)

	healthHandler := health.NewHandler(db)

	r := gin.Default()
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS())

	api := r.Group("/api")
	{
		healthHandler.RegisterRoutes(api)
		upload.RegisterRoutes(api, uploadHandler)

		admin := api.Group("/")
		admin.Use(middleware.RequireAdmin(cfg.AdminUser, cfg.AdminPass))

		project.RegisterRoutes(api, admin, projectHandler)
	}

	uploads := r.Group("/uploads")
	uploads.Use(middleware.UploadHeaders())
	uploads.Static("/", uploadService.Dir())

	log.Printf("API listening on :%s, serving uploads from %s", cfg.Port, uploadService.Dir())
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
