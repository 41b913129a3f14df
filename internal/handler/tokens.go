package handler

import (
	"net/http"
	"time"

	"vocabflash/internal/domain"
)

var tokenNames = []string{
	domain.TokenPhase,
	domain.TokenIndex,
	domain.TokenLanguage,
	domain.TokenNotice,
}

// readTokens collects the known tokens from request cookies
func readTokens(r *http.Request) domain.Tokens {
	tokens := make(domain.Tokens, len(tokenNames))
	for _, name := range tokenNames {
		if c, err := r.Cookie(name); err == nil {
			tokens[name] = c.Value
		}
	}
	return tokens
}

// writeTokens sets one session cookie per token
func writeTokens(w http.ResponseWriter, tokens domain.Tokens) {
	for name, value := range tokens {
		writeToken(w, name, value)
	}
}

func writeToken(w http.ResponseWriter, name, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:   name,
		Value:  value,
		Path:   "/",
		Secure: false,
	})
}

// clearToken expires a cookie on the client
func clearToken(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:    name,
		Value:   "",
		Path:    "/",
		Expires: time.Unix(0, 0),
		MaxAge:  -1,
	})
}
