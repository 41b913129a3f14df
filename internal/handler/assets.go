package handler

import (
	"errors"
	"net/http"
	"path/filepath"
	"strconv"

	"vocabflash/internal/domain"

	"go.uber.org/zap"
)

const robotsTxt = "User-agent: *\nAllow: /\n"

// handlePronunciation streams the audio recorded for a headword
func (h *Handler) handlePronunciation(w http.ResponseWriter, r *http.Request) {
	headword := r.URL.Query().Get("vocab")
	if headword == "" {
		http.NotFound(w, r)
		return
	}

	audio, err := h.cursorService.ResolveAudio(headword)
	if errors.Is(err, domain.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		http.Error(w, "Service unavailable", http.StatusServiceUnavailable)
		return
	}

	etag := strconv.Quote(audio.ID.String())
	w.Header().Set("ETag", etag)
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "audio/mpeg")
	w.Header().Set("Content-Length", strconv.Itoa(len(audio.MP3)))
	if _, err := w.Write(audio.MP3); err != nil {
		h.logger.Warn("Failed to write pronunciation",
			zap.String("headword", headword),
			zap.Error(err),
		)
	}
}

// handleSetLanguage stores the language choice and returns to the card
func (h *Handler) handleSetLanguage(w http.ResponseWriter, r *http.Request) {
	lang := domain.ParseLanguage(r.URL.Query().Get("lang"))
	writeToken(w, domain.TokenLanguage, lang.Code())
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) handleHitCount(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(strconv.FormatUint(h.statsService.Hits(), 10)))
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := h.cursorService.Healthy(); err != nil {
		h.logger.Error("Health check failed", zap.Error(err))
		http.Error(w, "Health check failed", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("OK"))
}

func (h *Handler) handleRobots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(robotsTxt))
}

func (h *Handler) handleFavicon(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, filepath.Join(h.staticDir, "icons", "favicon.ico"))
}

func (h *Handler) handleInstantClick(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, filepath.Join(h.staticDir, "instantclick.min.js"))
}
