package types

import "strings"

// Customizations is the closed set of per-line options a customer can attach
// to a cake. Unknown keys are rejected at the JSON boundary by the decoder.
type Customizations struct {
	Size    string `json:"size,omitempty"`
	Flavor  string `json:"flavor,omitempty"`
	Message string `json:"message,omitempty"`
}

// Normalized trims whitespace on every field so structurally equal option
// sets compare equal regardless of input padding.
func (c Customizations) Normalized() Customizations {
	return Customizations{
		Size:    strings.TrimSpace(c.Size),
		Flavor:  strings.TrimSpace(c.Flavor),
		Message: strings.TrimSpace(c.Message),
	}
}

// IsZero reports whether no option is set.
func (c Customizations) IsZero() bool {
	return c == Customizations{}
}
