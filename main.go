package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"catalog-service/controllers"
	"catalog-service/database"
	"catalog-service/logger"
	"catalog-service/repository"
	"catalog-service/routes"
	"catalog-service/services"
	"catalog-service/storage"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	logger.Initialize(cfg.Env)
	defer zap.L().Sync()

	if err := database.ConnectWithConfig(cfg.MongoURI, cfg.MongoDB); err != nil {
		zap.L().Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		if err := database.Close(); err != nil {
			zap.L().Error("Failed to disconnect from MongoDB", zap.Error(err))
		}
	}()

	categoryRepo := repository.NewCategoryRepository(database.DB)
	subCategoryRepo := repository.NewSubCategoryRepository(database.DB)
	productRepo := repository.NewProductRepository(database.DB)
	productTypeRepo := repository.NewProductTypeRepository(database.DB)
	listingTypeRepo := repository.NewProductListingTypeRepository(database.DB)
	monthRepo := repository.NewProductMonthRepository(database.DB)

	indexCtx, indexCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer indexCancel()
	for _, ensure := range []func(context.Context) error{
		categoryRepo.EnsureIndexes,
		subCategoryRepo.EnsureIndexes,
		productRepo.EnsureIndexes,
	} {
		if err := ensure(indexCtx); err != nil {
			zap.L().Fatal("Failed to ensure indexes", zap.Error(err))
		}
	}

	files := storage.NewFileStore(cfg.UploadDir, cfg.BackendURL)

	ctl := routes.Controllers{
		Categories:    controllers.NewCategoryController(services.NewCategoryService(categoryRepo, files)),
		SubCategories: controllers.NewSubCategoryController(services.NewSubCategoryService(subCategoryRepo, categoryRepo, files)),
		Products:      controllers.NewProductController(services.NewProductService(productRepo)),
		Dropdowns:     controllers.NewDropdownController(services.NewDropdownService(productTypeRepo, listingTypeRepo, monthRepo)),
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.Static("/uploads", cfg.UploadDir)

	routes.RegisterRoutes(r, ctl)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		zap.L().Info("Starting catalog-service", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zap.L().Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Error("Forced shutdown", zap.Error(err))
	}
}
