package wire

import (
	"net/http"

	"marketplace-api/internal/adaptor"
	"marketplace-api/internal/data/repository"
	"marketplace-api/internal/usecase"
	"marketplace-api/pkg/middleware"
	"marketplace-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

func Wiring(repo *repository.Repository, decoder usecase.TokenDecoder, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, decoder, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, service.Authorize, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	authorizer middleware.Authorizer,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.CORS.AllowedOrigins))

	wireAdmin(r, handler.Admin, authorizer, logger)
	wireSeller(r, handler.Seller, authorizer, logger)
	wireMember(r, handler.Member, authorizer, logger)
	wireGuest(r, handler.Guest, authorizer, logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
