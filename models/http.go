package models

import "time"

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	Token string     `json:"token"`
	User  PublicUser `json:"user"`
}

// VerifyResponse is returned by the token verification endpoint.
type VerifyResponse struct {
	User PublicUser `json:"user"`
}

// UploadResponse is returned when every file of an upload was stored.
type UploadResponse struct {
	Message string  `json:"message"`
	Videos  []Video `json:"videos"`
}

// DemoUserResponse is returned by the demonstration account bootstrap.
type DemoUserResponse struct {
	Message string     `json:"message"`
	User    PublicUser `json:"user"`
}

// MessageResponse is the generic body for acknowledgements and errors.
// Error carries the underlying cause only where the API exposes it (uploads).
type MessageResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// MediaStatusResponse reports the media host connectivity check.
type MediaStatusResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// APIStatusResponse is the body of the API smoke endpoint.
type APIStatusResponse struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
}
