package model

// Composition is the active ingredient(s) and strength of a medicine, stored
// as free text (e.g. "Ibuprofen 400mg"). Compositions are deduplicated at seed
// time; many medicines may reference the same row.
type Composition struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Text string `json:"text" gorm:"uniqueIndex;size:255;not null"`
}
