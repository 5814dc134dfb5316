package intent

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"assistente-agenda/internal/assistant"
)

// judgmentResponse is the JSON shape the model is asked to produce.
type judgmentResponse struct {
	IsEvent   bool        `json:"is_event"`
	EventType string      `json:"event_type"`
	IsAllDay  bool        `json:"is_all_day"`
	Summary   string      `json:"summary"`
	Datetime  string      `json:"datetime"`
	Duration  flexMinutes `json:"duration"`
	Response  string      `json:"response"`
}

// flexMinutes accepts 60, 60.0, "60" or null.
type flexMinutes int

func (m *flexMinutes) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*m = 0
		return nil
	}

	raw := string(data)
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
		if raw == "" {
			*m = 0
			return nil
		}
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("duration %q is not a number", raw)
	}
	*m = flexMinutes(math.Round(f))
	return nil
}

var eventKinds = map[string]assistant.EventKind{
	"appointment": assistant.KindAppointment,
	"event":       assistant.KindEvent,
	"reminder":    assistant.KindReminder,
	"compromisso": assistant.KindAppointment,
	"evento":      assistant.KindEvent,
	"lembrete":    assistant.KindReminder,
}
