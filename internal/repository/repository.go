package repository

import (
	"vocabquiz/internal/domain"
)

// UserRepository defines user data operations
type UserRepository interface {
	IsAuthorized(userID int64) (bool, error)
	AuthorizeUser(userID int64) error
	EnsureUserExists(userID int64) error
}

// WordRepository defines word bank read operations
type WordRepository interface {
	ListEntries() ([]domain.WordEntry, error)
}
