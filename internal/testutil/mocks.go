package testutil

import (
	"vocabflash/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockVocabRepository is a mock for VocabRepository
type MockVocabRepository struct {
	mock.Mock
}

func (m *MockVocabRepository) FetchPage(page, perPage int) (domain.Page, error) {
	args := m.Called(page, perPage)
	return args.Get(0).(domain.Page), args.Error(1)
}

func (m *MockVocabRepository) FetchAudio(headword string) (*domain.Pronunciation, error) {
	args := m.Called(headword)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Pronunciation), args.Error(1)
}

func (m *MockVocabRepository) Ping() error {
	args := m.Called()
	return args.Error(0)
}
