package validation

import (
	"fmt"
	"strings"
)

// Location is the part of the request a value was read from.
type Location string

const (
	LocPath   Location = "path"
	LocQuery  Location = "query"
	LocHeader Location = "header"
	LocCookie Location = "cookie"
	LocBody   Location = "body"
	LocForm   Location = "form"
)

// Violation describes one field that failed validation.
type Violation struct {
	Loc   []string       `json:"loc"`
	Msg   string         `json:"msg"`
	Type  string         `json:"type"`
	Ctx   map[string]any `json:"ctx,omitempty"`
	Input any            `json:"input,omitempty"`
}

// Field returns the last element of Loc.
func (v Violation) Field() string {
	if len(v.Loc) == 0 {
		return ""
	}
	return v.Loc[len(v.Loc)-1]
}

// Source returns the request location the value came from.
func (v Violation) Source() Location {
	if len(v.Loc) == 0 {
		return ""
	}
	return Location(v.Loc[0])
}

// NewViolation builds a violation at loc followed by path.
func NewViolation(loc Location, path []string, typ, msg string, input any) Violation {
	return Violation{
		Loc:   buildLoc(loc, path),
		Msg:   msg,
		Type:  typ,
		Input: input,
	}
}

// Missing builds the violation reported for an absent required value.
func Missing(loc Location, path ...string) Violation {
	return NewViolation(loc, path, TypeMissing, MsgMissing, nil)
}

func buildLoc(loc Location, path []string) []string {
	out := make([]string, 0, len(path)+1)
	out = append(out, string(loc))
	return append(out, path...)
}

// Violations is every problem found in one request. A non-empty Violations is
// an error.
type Violations []Violation

// Add appends v.
func (vs *Violations) Add(v Violation) {
	*vs = append(*vs, v)
}

// Extend appends all of other.
func (vs *Violations) Extend(other Violations) {
	*vs = append(*vs, other...)
}

// Len returns the number of violations.
func (vs Violations) Len() int {
	return len(vs)
}

// Err returns vs as an error, or nil when there is nothing to report.
func (vs Violations) Err() error {
	if len(vs) == 0 {
		return nil
	}
	return vs
}

// Error implements error. Input values are left out.
func (vs Violations) Error() string {
	parts := make([]string, 0, len(vs))
	for _, v := range vs {
		parts = append(parts, fmt.Sprintf("%s: %s", strings.Join(v.Loc, "."), v.Msg))
	}
	return fmt.Sprintf("%d validation error(s): %s", len(vs), strings.Join(parts, "; "))
}
