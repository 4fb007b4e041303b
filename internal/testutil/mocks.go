package testutil

import (
	"vocabquiz/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) IsAuthorized(userID int64) (bool, error) {
	args := m.Called(userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) AuthorizeUser(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockUserRepository) EnsureUserExists(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

// MockWordRepository is a mock for WordRepository
type MockWordRepository struct {
	mock.Mock
}

func (m *MockWordRepository) ListEntries() ([]domain.WordEntry, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WordEntry), args.Error(1)
}

// MockPresenter is a mock for quiz.PresentationPort
type MockPresenter struct {
	mock.Mock
}

func (m *MockPresenter) ShowPrompt(entry domain.WordEntry) {
	m.Called(entry)
}

func (m *MockPresenter) OnCorrect() {
	m.Called()
}

func (m *MockPresenter) OnWrong() {
	m.Called()
}

func (m *MockPresenter) UpdateScoreDisplay(streak, highScore int) {
	m.Called(streak, highScore)
}

// MockRandomSource is a mock for quiz.RandomSource[domain.WordEntry]
type MockRandomSource struct {
	mock.Mock
}

func (m *MockRandomSource) Pick(items []domain.WordEntry) domain.WordEntry {
	args := m.Called(items)
	return args.Get(0).(domain.WordEntry)
}
