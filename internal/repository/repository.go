package repository

import (
	"vocabflash/internal/domain"
)

// VocabRepository defines read access to the vocabulary store
type VocabRepository interface {
	FetchPage(page, perPage int) (domain.Page, error)
	FetchAudio(headword string) (*domain.Pronunciation, error)
	Ping() error
}
