// Package server assembles the gin router and runs the HTTP server.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "fintrack/internal/docs" // registers the swagger spec
	"fintrack/internal/handlers"
	"fintrack/internal/logger"
	"fintrack/internal/middleware"
	"fintrack/internal/services"
)

// Deps is everything the router needs.
type Deps struct {
	Services    *services.Services
	Storage     handlers.Pinger
	Location    *time.Location
	CORSOrigins []string
	APIKey      string
}

// NewRouter builds the gin engine with every route mounted.
func NewRouter(deps Deps) *gin.Engine {
	loc := deps.Location
	if loc == nil {
		loc = time.Local
	}
	svc := deps.Services

	transactionHandler := handlers.NewTransactionHandler(svc.Transactions, loc)
	summaryHandler := handlers.NewSummaryHandler(svc.Summary, loc)
	categoryHandler := handlers.NewCategoryHandler(svc.Categories)
	settingsHandler := handlers.NewSettingsHandler(svc.Settings)
	profileHandler := handlers.NewProfileHandler(svc.Profile)
	dataHandler := handlers.NewDataHandler(svc.SampleData, svc.Data)
	formatHandler := handlers.NewFormatHandler(svc.Settings, loc)
	healthHandler := handlers.NewHealthHandler(deps.Storage)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(cors.New(corsConfig(deps.CORSOrigins)))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/api/health", healthHandler.Health)

	v1 := router.Group("/api/v1")
	v1.Use(middleware.APIKeyAuth(deps.APIKey))

	transactions := v1.Group("/transactions")
	transactions.GET("", transactionHandler.GetTransactions)
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("/:id", transactionHandler.GetTransactionByID)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	summary := v1.Group("/summary")
	summary.GET("", summaryHandler.GetSummary)
	summary.GET("/monthly", summaryHandler.GetMonthlyBucket)
	summary.GET("/comparison", summaryHandler.GetMonthlyComparison)

	categories := v1.Group("/categories")
	categories.GET("", categoryHandler.GetCategories)
	categories.POST("", categoryHandler.CreateCategory)
	categories.POST("/reset", categoryHandler.ResetCategories)
	categories.DELETE("/:id", categoryHandler.DeleteCategory)

	v1.GET("/settings", settingsHandler.GetSettings)
	v1.PUT("/settings", settingsHandler.UpdateSettings)
	v1.POST("/settings/reset", settingsHandler.ResetSettings)

	v1.GET("/profile", profileHandler.GetProfile)
	v1.POST("/profile", profileHandler.CompleteOnboarding)
	v1.DELETE("/profile", profileHandler.ClearProfile)

	v1.GET("/sample-data", dataHandler.GetSampleData)
	v1.PUT("/sample-data", dataHandler.SetSampleData)
	v1.DELETE("/data", dataHandler.ClearAllData)

	v1.GET("/format/currency", formatHandler.FormatCurrency)
	v1.GET("/format/date", formatHandler.FormatDate)

	return router
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.APIKeyHeader, "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

// Run serves handler on addr until ctx is cancelled, then shuts down within
// shutdownTimeout.
func Run(ctx context.Context, addr string, handler http.Handler, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 16,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Named("server").Infow("shutting down", "timeout", shutdownTimeout.String())
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
