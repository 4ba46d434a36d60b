// internal/wire/wire.go
package wire

import (
	"net/http"

	"game-ghor/internal/adaptor"
	"game-ghor/internal/data/repository"
	"game-ghor/internal/mailer"
	"game-ghor/internal/usecase"
	"game-ghor/pkg/middleware"
	"game-ghor/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// App holds the wired dependencies
type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers and routes
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	mail := mailer.NewLogMailer(config.Email, logger)
	service := usecase.NewService(repo, config, mail, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	wireAuth(r, handler.Auth, repo, logger)
	wireGame(r, handler.Game, repo, logger)
	wireOrder(r, handler.Order, repo, logger)
	wireUser(r, handler.User, repo, logger)
	wireUpload(r, handler.Upload, repo, logger)

	// Uploaded images are served straight from the upload dir
	fileServer := http.StripPrefix(config.Upload.BaseURL+"/",
		http.FileServer(http.Dir(config.Upload.Dir)))
	r.Get(config.Upload.BaseURL+"/*", fileServer.ServeHTTP)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
