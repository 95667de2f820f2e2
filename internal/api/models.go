package api

import (
	"github.com/phrazzld/people-api/internal/domain"
)

// Fixed response values.
const (
	// PersonExistsMessage is returned for every ID found in the directory.
	PersonExistsMessage = "It exists!"

	// absentNameKey keys the /person/detail response when no name was given.
	absentNameKey = "null"
)

// HomeResponse is the body of GET /.
type HomeResponse struct {
	Hello string `json:"Hello"`
}

// PersonIDPath is the path parameter of the person routes.
type PersonIDPath struct {
	PersonID int `json:"person_id" validate:"gt=0"`
}

// PersonQuery holds the query parameters of GET /person/detail.
type PersonQuery struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=50"`
	Age  *string `json:"age"  validate:"required"`
}

// UpdatePersonRequest is the body of PUT /person/{person_id}. Each entity is
// embedded under its own key and both are required.
type UpdatePersonRequest struct {
	Person   *domain.Person   `json:"person"   validate:"required"`
	Location *domain.Location `json:"location" validate:"required"`
}

// LoginForm holds the form fields of POST /login.
type LoginForm struct {
	Username string              `json:"username" validate:"required,max=20"`
	Password domain.SecretString `json:"password" validate:"required"`
}

// ContactParams holds the header and cookie values of POST /contact.
type ContactParams struct {
	UserAgent *string `json:"User-Agent"`
	Ads       *string `json:"ads"`
}
