package postgres

import (
	"database/sql"

	"vocabquiz/internal/domain"
)

// WordRepo implements repository.WordRepository
type WordRepo struct {
	db *sql.DB
}

// NewWordRepo creates a new word repository
func NewWordRepo(db *sql.DB) *WordRepo {
	return &WordRepo{db: db}
}

// ListEntries returns the whole word bank in display order
func (r *WordRepo) ListEntries() ([]domain.WordEntry, error) {
	query := `
		SELECT id, label, translation, audio_file
		FROM word_entries
		ORDER BY position, id
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.WordEntry
	for rows.Next() {
		var e domain.WordEntry
		var audio sql.NullString
		if err := rows.Scan(&e.ID, &e.Label, &e.Translation, &audio); err != nil {
			return nil, err
		}
		if audio.Valid {
			e.AudioFile = audio.String
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
