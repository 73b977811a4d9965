package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth/v5"

	"learnpath_backend/internal/api/handler"
	"learnpath_backend/internal/api/middleware"
	"learnpath_backend/internal/app/service"
	"learnpath_backend/internal/common"
	"learnpath_backend/internal/platform/sessionstore"
)

func NewRouter(
	authService *service.AuthService,
	roadmapService *service.RoadmapService,
	gatewayService *service.GatewayService,
	sessions sessionstore.Store,
	tokenAuth *jwtauth.JWTAuth,
	sessionExp time.Duration,
) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger) // Chi's logger
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))

	// Verifies the session cookie's signature and puts claims in context.
	// Whether the session is still alive is checked by the Authenticator.
	r.Use(jwtauth.Verifier(tokenAuth))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Landing view; anonymous users end up here after logout.
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		common.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "LearnPath API"})
	})

	// Auth routes (public)
	authHandler := handler.NewAuthHandler(authService, sessionExp)
	authHandler.RegisterRoutes(r)

	// Everything behind a live session
	r.Group(func(protected chi.Router) {
		protected.Use(middleware.Authenticator(sessions))

		roadmapHandler := handler.NewRoadmapHandler(roadmapService)
		roadmapHandler.RegisterRoutes(protected)

		aiHandler := handler.NewAIHandler(gatewayService)
		aiHandler.RegisterRoutes(protected)
	})

	return r
}
