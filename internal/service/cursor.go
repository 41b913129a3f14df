package service

import (
	"errors"
	"fmt"

	"vocabflash/internal/domain"
	"vocabflash/internal/repository"

	"go.uber.org/zap"
)

// wordsPerPage is fixed so that a page number is a word position
const wordsPerPage = 1

// CursorService resolves word positions against the vocabulary store
type CursorService struct {
	vocabRepo repository.VocabRepository
	logger    *zap.Logger
}

// NewCursorService creates a new cursor service
func NewCursorService(vocabRepo repository.VocabRepository, logger *zap.Logger) *CursorService {
	return &CursorService{
		vocabRepo: vocabRepo,
		logger:    logger,
	}
}

// Resolve returns the entry at a 1-based position and the total page count.
// Positions below 1 resolve as 1. A position past the last entry is ErrNotFound.
func (s *CursorService) Resolve(position int64) (*domain.VocabularyEntry, int, error) {
	if position < 1 {
		position = 1
	}

	page, err := s.vocabRepo.FetchPage(int(position), wordsPerPage)
	if err != nil {
		s.logger.Error("Failed to fetch vocabulary page",
			zap.Int64("position", position),
			zap.Error(err),
		)
		return nil, 0, fmt.Errorf("%w: %w", domain.ErrUnavailable, err)
	}

	if len(page.Entries) == 0 {
		return nil, page.TotalPages, fmt.Errorf("position %d of %d: %w", position, page.TotalPages, domain.ErrNotFound)
	}

	return &page.Entries[0], page.TotalPages, nil
}

// ResolveAudio returns the pronunciation for an exact headword
func (s *CursorService) ResolveAudio(headword string) (*domain.Pronunciation, error) {
	audio, err := s.vocabRepo.FetchAudio(headword)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if err != nil {
		s.logger.Error("Failed to fetch pronunciation",
			zap.String("headword", headword),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %w", domain.ErrUnavailable, err)
	}
	if audio == nil || len(audio.MP3) == 0 {
		return nil, domain.ErrNotFound
	}

	return audio, nil
}

// Healthy reports whether the vocabulary store answers
func (s *CursorService) Healthy() error {
	if err := s.vocabRepo.Ping(); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrUnavailable, err)
	}
	return nil
}
