package testutil

import (
	"time"

	"vocabflash/internal/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestEntry creates a test vocabulary entry
func NewTestEntry(headword, partOfSpeech, meaning string) domain.VocabularyEntry {
	return domain.VocabularyEntry{
		Headword:     headword,
		PartOfSpeech: partOfSpeech,
		Meaning:      meaning,
		CreatedAt:    time.Now(),
	}
}

// NewTestPronunciation creates a test pronunciation
func NewTestPronunciation(headword string, mp3 []byte) *domain.Pronunciation {
	return &domain.Pronunciation{
		ID:       uuid.New(),
		Headword: headword,
		MP3:      mp3,
	}
}
