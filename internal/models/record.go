package models

// Record is a birth/zodiac entry owned by a Person.
type Record struct {
	// ID is assigned by the store on insert.
	ID int64

	// ZodiacSign is free-form text. Empty means no sign was given.
	ZodiacSign string

	// PersonID references the owning Person.ID.
	PersonID int64

	// Birth is stored exactly as the caller provided it.
	Birth string
}

// NewRecord is the input for adding a record. The owning Person is resolved
// (or created) from Name by the store.
type NewRecord struct {
	Name       string `validate:"required"`
	ZodiacSign string
	Birth      string `validate:"required"`
}

// Entry is a Record joined with the name of its Person.
type Entry struct {
	Name       string `json:"name"`
	ZodiacSign string `json:"zodiac_sign"`
	Birth      string `json:"birth"`
}
