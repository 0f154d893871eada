package alerts

import (
	"fmt"

	"github.com/agentstation/seedmap/internal/cmd/emoji"
)

// Level is the severity of a dataset finding.
type Level int

const (
	// LevelError marks a record the directory cannot show.
	LevelError Level = iota
	// LevelWarning marks a record that shows, but not as intended.
	LevelWarning
	// LevelSuccess marks a dataset without findings.
	LevelSuccess
)

// String returns the lower-case level name used in structured output.
func (l Level) String() string {
	switch l {
	case LevelError:
		return "error"
	case LevelWarning:
		return "warning"
	case LevelSuccess:
		return "success"
	default:
		return fmt.Sprintf("unknown(%d)", l)
	}
}

// Icon returns the status glyph for the level.
func (l Level) Icon() string {
	switch l {
	case LevelError:
		return emoji.Error
	case LevelWarning:
		return emoji.Warning
	case LevelSuccess:
		return emoji.Success
	default:
		return emoji.Unknown
	}
}

// MarshalText lets structured encoders print the level name.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}
