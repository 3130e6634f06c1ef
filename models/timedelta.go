package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Timedelta is a relative duration received from clients.
//
// It is decoded either from a number of seconds (e.g. 3600 or 90.5)
// or from a Go duration string (e.g. "1h30m").
type Timedelta time.Duration

func (d *Timedelta) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Timedelta(time.Duration(value * float64(time.Second)))
		return nil
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", value, err)
		}
		*d = Timedelta(parsed)
		return nil
	default:
		return fmt.Errorf("duration must be a number of seconds or a duration string")
	}
}

func (d Timedelta) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).Seconds())
}

// Duration converts d to a time.Duration.
func (d Timedelta) Duration() time.Duration {
	return time.Duration(d)
}
