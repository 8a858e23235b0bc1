package models

// Person represents one named individual.
//
// People are created lazily the first time a name is written and are never
// updated or deleted afterwards.
type Person struct {
	// ID is assigned by the store on insert and never changes.
	ID int64

	// Name is the full display name, e.g. "Иванов Иван".
	// Two people never share a name; lookups use exact matching.
	Name string
}
