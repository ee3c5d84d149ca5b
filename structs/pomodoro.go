package structs

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PomodoroMode string

const (
	ModeFocus PomodoroMode = "focus"
	ModeShort PomodoroMode = "short"
	ModeLong  PomodoroMode = "long"
)

// Valid reports whether m is one of the known timer modes.
func (m PomodoroMode) Valid() bool {
	switch m {
	case ModeFocus, ModeShort, ModeLong:
		return true
	}
	return false
}

// PomodoroLog records one finished timer interval. Logs are append-only.
type PomodoroLog struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Owner     string             `bson:"user_id" json:"owner"`
	Mode      PomodoroMode       `bson:"mode" json:"mode"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
}
