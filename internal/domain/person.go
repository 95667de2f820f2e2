package domain

// BasePerson holds the fields shared by every person payload.
type BasePerson struct {
	FirstName string     `json:"first_name" validate:"min=1,max=50"`
	LastName  string     `json:"last_name"  validate:"min=1,max=50"`
	Age       int        `json:"age"        validate:"gt=0,lte=120"`
	Email     string     `json:"email"      validate:"required,email"`
	HairColor *HairColor `json:"hair_color" validate:"omitempty,hair_color"`
	IsMarried *bool      `json:"is_married"`
}

// Person is the inbound representation of a person, including the fields that
// must never be returned to a caller.
type Person struct {
	BasePerson
	Password   SecretString `json:"password"    validate:"required,min=8"`
	CardNumber CardNumber   `json:"card_number" validate:"required,payment_card"`
}

// PersonOut is the outbound representation of a person. It carries no secret
// or payment fields.
type PersonOut struct {
	BasePerson
}

// Out strips the secret and payment fields.
func (p Person) Out() PersonOut {
	return PersonOut{BasePerson: p.BasePerson}
}

// Fields returns the person's public fields keyed by their JSON names.
// Optional fields that were not supplied map to nil.
func (p PersonOut) Fields() map[string]any {
	var hair any
	if p.HairColor != nil {
		hair = *p.HairColor
	}
	var married any
	if p.IsMarried != nil {
		married = *p.IsMarried
	}
	return map[string]any{
		"first_name": p.FirstName,
		"last_name":  p.LastName,
		"age":        p.Age,
		"email":      p.Email,
		"hair_color": hair,
		"is_married": married,
	}
}

// Location is where a person lives.
type Location struct {
	City    string `json:"city"    validate:"min=1,max=50"`
	State   string `json:"state"   validate:"min=1,max=50"`
	Country string `json:"country" validate:"min=1,max=50"`
}

// Fields returns the location keyed by JSON names.
func (l Location) Fields() map[string]any {
	return map[string]any{
		"city":    l.City,
		"state":   l.State,
		"country": l.Country,
	}
}

// Fielder is anything that can be flattened into a field mapping.
type Fielder interface {
	Fields() map[string]any
}

// MergeFields flattens each entity into a single mapping. When two entities
// share a key the later one wins.
func MergeFields(entities ...Fielder) map[string]any {
	merged := make(map[string]any)
	for _, e := range entities {
		for k, v := range e.Fields() {
			merged[k] = v
		}
	}
	return merged
}
