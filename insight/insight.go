// Package insight turns the free-form JSON a vision model returns into the
// fixed record shape the mobile client renders.
package insight

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

type Level string

const (
	LevelSlight   Level = "SLIGHT"
	LevelMild     Level = "MILD"
	LevelHighRisk Level = "HIGH RISK"
)

const (
	MaxTitleLen    = 80
	MaxSubtitleLen = 160
	MaxActionLen   = 160

	DefaultTitle    = "Insight"
	DefaultSubtitle = ""
	DefaultAction   = "No specific action."
)

// ErrNotJSON is returned by Parse when the provider text is not valid JSON.
var ErrNotJSON = errors.New("insight: provider text is not valid JSON")

type Insight struct {
	Level    Level  `json:"level"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Action   string `json:"action"`
}

// ParseLevel maps any raw level value onto one of the three canonical levels.
func ParseLevel(v any) Level {
	s, _ := scalarText(v)
	switch Level(strings.ToUpper(strings.TrimSpace(s))) {
	case "HIGH", "HIGH_RISK", LevelHighRisk:
		return LevelHighRisk
	case LevelMild:
		return LevelMild
	default:
		return LevelSlight
	}
}

// Parse decodes the provider's text and normalizes it.
func Parse(text string) ([]Insight, error) {
	var raw any
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return []Insight{}, fmt.Errorf("%w: %v", ErrNotJSON, err)
	}
	return Normalize(raw), nil
}

// Normalize never fails: anything that is not an array yields an empty list
// and elements that are not objects are dropped. Order is preserved.
func Normalize(raw any) []Insight {
	items, ok := raw.([]any)
	if !ok {
		return []Insight{}
	}

	out := make([]Insight, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, Insight{
			Level:    ParseLevel(obj["level"]),
			Title:    field(obj["title"], DefaultTitle, MaxTitleLen),
			Subtitle: field(obj["subtitle"], DefaultSubtitle, MaxSubtitleLen),
			Action:   field(obj["action"], DefaultAction, MaxActionLen),
		})
	}
	return out
}

func field(v any, def string, limit int) string {
	s, ok := scalarText(v)
	if !ok || s == "" {
		s = def
	}
	return truncate(s, limit)
}

// scalarText reports false for values that carry no usable text: null,
// false, zero, objects and arrays.
func scalarText(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case float64:
		if t == 0 {
			return "", false
		}
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case bool:
		if !t {
			return "", false
		}
		return "true", true
	default:
		return "", false
	}
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit])
}
