// Package structs defines the StudyVerse domain models shared by the
// stores, services and handlers.
package structs
