package service

import (
	"fmt"
	"testing"

	"vocabflash/internal/domain"
	"vocabflash/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestCursorService_Resolve(t *testing.T) {
	cheer := testutil.NewTestEntry("cheer", "verb", "欢呼")

	tests := []struct {
		name          string
		position      int64
		expectedPage  int
		mockEntries   []domain.VocabularyEntry
		mockTotal     int
		mockError     error
		expectedEntry *domain.VocabularyEntry
		expectedTotal int
		expectedError error
	}{
		{
			name:          "first position",
			position:      1,
			expectedPage:  1,
			mockEntries:   []domain.VocabularyEntry{cheer},
			mockTotal:     10,
			expectedEntry: &cheer,
			expectedTotal: 10,
		},
		{
			name:          "fifth position",
			position:      5,
			expectedPage:  5,
			mockEntries:   []domain.VocabularyEntry{cheer},
			mockTotal:     10,
			expectedEntry: &cheer,
			expectedTotal: 10,
		},
		{
			name:          "zero clamps to first",
			position:      0,
			expectedPage:  1,
			mockEntries:   []domain.VocabularyEntry{cheer},
			mockTotal:     10,
			expectedEntry: &cheer,
			expectedTotal: 10,
		},
		{
			name:          "negative clamps to first",
			position:      -42,
			expectedPage:  1,
			mockEntries:   []domain.VocabularyEntry{cheer},
			mockTotal:     10,
			expectedEntry: &cheer,
			expectedTotal: 10,
		},
		{
			name:          "empty collection",
			position:      3,
			expectedPage:  3,
			mockEntries:   nil,
			mockTotal:     0,
			expectedTotal: 0,
			expectedError: domain.ErrNotFound,
		},
		{
			name:          "past the last entry",
			position:      11,
			expectedPage:  11,
			mockEntries:   []domain.VocabularyEntry{},
			mockTotal:     10,
			expectedTotal: 10,
			expectedError: domain.ErrNotFound,
		},
		{
			name:          "database error",
			position:      1,
			expectedPage:  1,
			mockError:     fmt.Errorf("connection refused"),
			expectedError: domain.ErrUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockVocabRepository)
			mockRepo.On("FetchPage", tt.expectedPage, 1).Return(domain.Page{Entries: tt.mockEntries, TotalPages: tt.mockTotal}, tt.mockError)

			service := NewCursorService(mockRepo, testutil.NewTestLogger())

			entry, total, err := service.Resolve(tt.position)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, entry)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedEntry, entry)
			}
			assert.Equal(t, tt.expectedTotal, total)

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestCursorService_Resolve_NonPositiveMatchesFirst(t *testing.T) {
	cheer := testutil.NewTestEntry("cheer", "verb", "欢呼")

	mockRepo := new(testutil.MockVocabRepository)
	mockRepo.On("FetchPage", 1, 1).Return(domain.Page{Entries: []domain.VocabularyEntry{cheer}, TotalPages: 3}, nil)

	service := NewCursorService(mockRepo, testutil.NewTestLogger())

	first, firstTotal, firstErr := service.Resolve(1)
	for _, p := range []int64{0, -1, -1000} {
		entry, total, err := service.Resolve(p)
		assert.Equal(t, first, entry)
		assert.Equal(t, firstTotal, total)
		assert.Equal(t, firstErr, err)
	}

	mockRepo.AssertNumberOfCalls(t, "FetchPage", 4)
}

func TestCursorService_ResolveAudio(t *testing.T) {
	audio := testutil.NewTestPronunciation("cheer", []byte{0xff, 0xfb})

	tests := []struct {
		name          string
		headword      string
		mockReturn    *domain.Pronunciation
		mockError     error
		expectedError error
	}{
		{
			name:       "audio found",
			headword:   "cheer",
			mockReturn: audio,
		},
		{
			name:          "no audio",
			headword:      "Cheer",
			mockError:     domain.ErrNotFound,
			expectedError: domain.ErrNotFound,
		},
		{
			name:          "empty blob",
			headword:      "silent",
			mockReturn:    testutil.NewTestPronunciation("silent", nil),
			expectedError: domain.ErrNotFound,
		},
		{
			name:          "database error",
			headword:      "cheer",
			mockError:     fmt.Errorf("connection reset"),
			expectedError: domain.ErrUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockVocabRepository)
			mockRepo.On("FetchAudio", tt.headword).Return(tt.mockReturn, tt.mockError)

			service := NewCursorService(mockRepo, testutil.NewTestLogger())

			result, err := service.ResolveAudio(tt.headword)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.mockReturn, result)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestCursorService_Healthy(t *testing.T) {
	mockRepo := new(testutil.MockVocabRepository)
	mockRepo.On("Ping").Return(nil).Once()
	mockRepo.On("Ping").Return(fmt.Errorf("dial tcp: refused")).Once()

	service := NewCursorService(mockRepo, testutil.NewTestLogger())

	assert.NoError(t, service.Healthy())
	assert.ErrorIs(t, service.Healthy(), domain.ErrUnavailable)
	mockRepo.AssertExpectations(t)
}
