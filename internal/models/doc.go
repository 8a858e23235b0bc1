// Package models defines the core domain models for people.
//
// # Models
//
//   - Person: one named individual. The name is the natural key.
//   - Record: a birth date and zodiac sign owned by exactly one Person.
//   - Entry: a Record joined with its owner's name, as returned by the readers.
//   - NewRecord: the writer's input, before a Person has been resolved.
//
// # Relationships
//
//	Person 1──* Record
//
// Records reference people by integer ID (Record.PersonID) rather than by pointer.
// Both identifiers are assigned by the storage layer.
//
// # Free-form values
//
// Birth and ZodiacSign are stored verbatim. Nothing here parses dates or checks
// that a sign is one of the twelve; "2001.03.21" and "овен" are as valid as
// anything else.
package models
