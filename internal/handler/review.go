package handler

import (
	"bytes"
	"errors"
	"math"
	"net/http"

	"vocabflash/internal/domain"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const unknownActionNotice = "Unknown action ignored"

// handleIndex renders the current card
func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	h.statsService.RecordHit()

	tokens := readTokens(r)
	state := h.sessionService.Derive(tokens)

	view := domain.ReviewView{
		Phase:     state.Phase,
		WordIndex: state.WordIndex,
		Language:  h.language(r, tokens),
		Notice:    domain.ParseNotice(tokens[domain.TokenNotice]),
	}

	position := int64(math.MaxInt64)
	if state.WordIndex < math.MaxInt64 {
		position = int64(state.WordIndex)
	}

	entry, totalPages, err := h.cursorService.Resolve(position)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		h.logger.Info("No word at position",
			zap.Int64("position", position),
			zap.Int("total_pages", totalPages),
		)
	case err != nil:
		h.logger.Error("Failed to resolve word", zap.Error(err))
		http.Error(w, "Service unavailable", http.StatusServiceUnavailable)
		return
	}
	view.Entry = entry
	view.TotalPages = totalPages

	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, view); err != nil {
		h.logger.Error("Failed to render review page", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	// The notice is shown once
	if view.Notice != nil {
		clearToken(w, domain.TokenNotice)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Warn("Failed to write review page", zap.Error(err))
	}
}

// handleAction applies a review action and sends the client back to the card
func (h *Handler) handleAction(w http.ResponseWriter, r *http.Request) {
	action := chi.URLParam(r, "action")
	tokens := readTokens(r)

	state, err := h.sessionService.Apply(tokens, action)
	if errors.Is(err, domain.ErrInvalidAction) {
		h.logger.Warn("Ignoring unknown action", zap.String("action", action))
		writeToken(w, domain.TokenNotice, domain.Notice{Kind: "warning", Message: unknownActionNotice}.String())
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	writeTokens(w, h.sessionService.Encode(state))

	h.logger.Debug("Review action applied",
		zap.String("action", action),
		zap.Stringer("phase", state.Phase),
		zap.Uint64("word_index", state.WordIndex),
	)

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// language prefers the stored choice over the Accept-Language header
func (h *Handler) language(r *http.Request, tokens domain.Tokens) domain.Language {
	if code, ok := tokens[domain.TokenLanguage]; ok && code != "" {
		return domain.ParseLanguage(code)
	}
	return domain.LanguageFromAcceptHeader(r.Header.Get("Accept-Language"))
}
