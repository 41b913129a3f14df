package handler

import (
	"io"

	"vocabflash/internal/domain"
	"vocabflash/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Renderer turns a review view into a document
type Renderer interface {
	Render(w io.Writer, view domain.ReviewView) error
}

// Handler serves the review pages and their glue endpoints
type Handler struct {
	sessionService *service.SessionService
	cursorService  *service.CursorService
	statsService   *service.StatsService
	renderer       Renderer
	staticDir      string
	logger         *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	sessionService *service.SessionService,
	cursorService *service.CursorService,
	statsService *service.StatsService,
	renderer Renderer,
	staticDir string,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		sessionService: sessionService,
		cursorService:  cursorService,
		statsService:   statsService,
		renderer:       renderer,
		staticDir:      staticDir,
		logger:         logger,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	// Review loop
	r.Get("/", h.handleIndex)
	r.Post("/{action}", h.handleAction)

	// Audio
	r.Get("/pronunciation", h.handlePronunciation)

	// Preferences
	r.Get("/api/set-lang", h.handleSetLanguage)

	// Diagnostics
	r.Get("/hitcount", h.handleHitCount)
	r.Get("/health", h.handleHealth)

	// Static glue
	r.Get("/robots.txt", h.handleRobots)
	r.Get("/favicon.ico", h.handleFavicon)
	r.Get("/instantclick.min.js", h.handleInstantClick)
}
