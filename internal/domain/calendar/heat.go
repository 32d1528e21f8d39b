package calendar

import "fmt"

// HeatLevel is the at-a-glance density class of a calendar day. Free through
// High are ordered by event count; Blocked stands apart and always wins when a
// wedding is booked.
type HeatLevel int

const (
	HeatFree HeatLevel = iota
	HeatLow
	HeatMedium
	HeatHigh
	HeatBlocked
)

var heatNames = map[HeatLevel]string{
	HeatFree:    "free",
	HeatLow:     "low",
	HeatMedium:  "medium",
	HeatHigh:    "high",
	HeatBlocked: "blocked",
}

func HeatLevels() []HeatLevel {
	return []HeatLevel{HeatFree, HeatLow, HeatMedium, HeatHigh, HeatBlocked}
}

// HeatFor derives the level from a day's active event count and wedding flag.
func HeatFor(eventCount int, hasWedding bool) HeatLevel {
	switch {
	case hasWedding:
		return HeatBlocked
	case eventCount <= 0:
		return HeatFree
	case eventCount == 1:
		return HeatLow
	case eventCount == 2:
		return HeatMedium
	default:
		return HeatHigh
	}
}

func ParseHeatLevel(s string) (HeatLevel, error) {
	for level, name := range heatNames {
		if name == s {
			return level, nil
		}
	}
	return 0, fmt.Errorf("unknown heat level %q", s)
}

func (h HeatLevel) String() string {
	if name, ok := heatNames[h]; ok {
		return name
	}
	return fmt.Sprintf("HeatLevel(%d)", int(h))
}

func (h HeatLevel) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

func (h *HeatLevel) UnmarshalText(b []byte) error {
	level, err := ParseHeatLevel(string(b))
	if err != nil {
		return err
	}
	*h = level
	return nil
}
