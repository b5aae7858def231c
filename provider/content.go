package provider

import (
	"bytes"
	"encoding/json"
)

// Part is one typed block of a multi-part message.
type Part struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

// Content holds a message body that arrives either as a plain string or as a
// list of typed parts. Exactly one of the two is set after decoding.
type Content struct {
	Str   *string
	Parts []Part
}

func (c *Content) UnmarshalJSON(data []byte) error {
	*c = Content{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		c.Str = &s
	case '[':
		var raw []json.RawMessage
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		for _, r := range raw {
			var p Part
			if json.Unmarshal(r, &p) == nil {
				c.Parts = append(c.Parts, p)
			}
		}
	}
	// Any other shape decodes to empty content.
	return nil
}

// Text returns the string form, or the first text-typed part.
func (c Content) Text() string {
	if c.Str != nil {
		return *c.Str
	}
	for _, p := range c.Parts {
		if p.Type == "text" {
			return p.Text
		}
	}
	return ""
}
