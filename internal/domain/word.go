package domain

import (
	"time"

	"github.com/google/uuid"
)

// VocabularyEntry represents one headword with its dictionary data
type VocabularyEntry struct {
	Headword     string
	PartOfSpeech string
	Meaning      string
	CreatedAt    time.Time
}

// Pronunciation is the recorded audio for a headword
type Pronunciation struct {
	ID       uuid.UUID
	Headword string
	MP3      []byte
}

// Page is one slice of the recency-ordered vocabulary
type Page struct {
	Entries    []VocabularyEntry
	TotalPages int
}
