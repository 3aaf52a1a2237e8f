package mines

import "fmt"

// ConfigurationError reports board parameters no session can be created
// from.
type ConfigurationError struct {
	Width, Height, MineCount int
	Reason                   string
}

// [ConfigurationError] implements [error]
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf(
		"invalid board %dx%d with %d mines: %s",
		e.Width, e.Height, e.MineCount, e.Reason,
	)
}
