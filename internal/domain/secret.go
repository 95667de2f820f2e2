package domain

import "encoding/json"

// secretMask is what a SecretString prints as, whatever its value.
const secretMask = "**********"

// SecretString holds a value that is accepted as input but never written back
// out. String, GoString and JSON encoding all produce a fixed mask.
type SecretString string

// Reveal returns the raw value.
func (s SecretString) Reveal() string {
	return string(s)
}

// String implements fmt.Stringer.
func (s SecretString) String() string {
	if s == "" {
		return ""
	}
	return secretMask
}

// GoString keeps %#v from leaking the value.
func (s SecretString) GoString() string {
	return s.String()
}

// MarshalJSON implements json.Marshaler.
func (s SecretString) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}
