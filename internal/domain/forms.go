package domain

import "math"

// DefaultLoginMessage is returned on every successful login.
const DefaultLoginMessage = "Login successful"

// LoginOut is the login response. It never carries the password.
type LoginOut struct {
	Username string `json:"username" validate:"required,max=20"`
	Message  string `json:"message"`
}

// NewLoginOut builds a response with the default message.
func NewLoginOut(username string) LoginOut {
	return LoginOut{Username: username, Message: DefaultLoginMessage}
}

// ContactForm is a message sent through the contact form.
type ContactForm struct {
	FirstName string `json:"first_name" validate:"required,min=1,max=20"`
	LastName  string `json:"last_name"  validate:"required,min=1,max=20"`
	Email     string `json:"email"      validate:"required,email"`
	Message   string `json:"message"    validate:"required,min=20"`
}

// ImageInfo describes an uploaded image.
type ImageInfo struct {
	Filename string  `json:"Filename"`
	Format   string  `json:"Format"`
	SizeKB   float64 `json:"Size(KB)"`
}

// NewImageInfo computes the size in kilobytes, rounded to two decimals.
func NewImageInfo(filename, contentType string, sizeBytes int64) ImageInfo {
	kb := float64(sizeBytes) / 1024
	return ImageInfo{
		Filename: filename,
		Format:   contentType,
		SizeKB:   math.Round(kb*100) / 100,
	}
}
