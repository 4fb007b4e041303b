package domain

// WordEntry binds a pictured item to the Spanish word the player must match
type WordEntry struct {
	ID          string
	Label       string
	Translation string
	AudioFile   string
}
