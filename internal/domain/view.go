package domain

import "strings"

// Notice is a one-shot message shown on the next page read
type Notice struct {
	Kind    string
	Message string
}

// ParseNotice splits a "<kind> <message>" token value
func ParseNotice(raw string) *Notice {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	kind, msg, _ := strings.Cut(raw, " ")
	return &Notice{Kind: kind, Message: msg}
}

// String encodes the notice back to its token form
func (n Notice) String() string {
	return n.Kind + " " + n.Message
}

// ReviewView is the model handed to the renderer
type ReviewView struct {
	Phase      Phase
	WordIndex  uint64
	Entry      *VocabularyEntry
	TotalPages int
	Language   Language
	Notice     *Notice
}
