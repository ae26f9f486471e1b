package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/Evgeniy156/AI-Intelligroup-ZHKH/internal"
	"github.com/Evgeniy156/AI-Intelligroup-ZHKH/pkg/auth"
	"github.com/Evgeniy156/AI-Intelligroup-ZHKH/pkg/models"

	httpLogger "github.com/chi-middleware/logrus-logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

var log = internal.GetLogger()

const ReadHeaderTimeout = 5 * time.Second

// Create creates a new HTTP server with the given app state
func Create(appState *models.AppState) *http.Server {
	router := setupRouter(appState)
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", appState.Config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: ReadHeaderTimeout,
	}
}

func setupRouter(appState *models.AppState) *chi.Mux {
	router := chi.NewRouter()
	router.Use(httpLogger.Logger("router", log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(SendVersion)
	router.Use(middleware.Heartbeat("/healthz"))

	// Liveness stays unauthenticated
	router.Get("/health", HealthHandler(appState))

	router.Group(func(r chi.Router) {
		if appState.Config.Auth.Required {
			log.Info("JWT authentication required")
			r.Use(auth.JWTVerifier(appState.Config))
			r.Use(jwtauth.Authenticator)
		}

		r.Route("/api/v1", func(r chi.Router) {
			r.Route("/requests", func(r chi.Router) {
				r.Post("/mask-pii", MaskPIIHandler(appState))
				r.Post("/generate", GenerateHandler(appState))
			})
			r.Route("/legal", func(r chi.Router) {
				r.Post("/search", LegalSearchHandler(appState))
				r.Post("/ask", LegalAskHandler(appState))
			})
			r.Route("/supervision", func(r chi.Router) {
				r.Post("/analyze", AnalyzeDocumentHandler(appState))
				r.Post("/generate", SupervisionGenerateHandler(appState))
			})
			r.Route("/documents", func(r chi.Router) {
				r.Get("/", ListDocumentsHandler(appState))
				r.Post("/upload", UploadDocumentHandler(appState))
			})
			r.Route("/admin", func(r chi.Router) {
				r.Route("/users", func(r chi.Router) {
					r.Get("/", ListUsersHandler(appState))
					r.Post("/", CreateUserHandler(appState))
					r.Put("/{userId}", UpdateUserHandler(appState))
					r.Delete("/{userId}", DeleteUserHandler(appState))
				})
				r.Route("/settings", func(r chi.Router) {
					r.Get("/organization", GetOrgSettingsHandler(appState))
					r.Put("/organization", UpdateOrgSettingsHandler(appState))
					r.Get("/llm", GetLLMSettingsHandler(appState))
					r.Put("/llm", UpdateLLMSettingsHandler(appState))
				})
			})
			r.Get("/dashboard/stats", DashboardStatsHandler(appState))
		})
	})

	return router
}
