// Package repository persists tasks, users and Pomodoro logs in MongoDB or
// in process memory.
package repository

import "errors"

var (
	// ErrNotFound is returned when no record matches the id and owner.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a unique key is already taken.
	ErrDuplicate = errors.New("duplicate record")
)
