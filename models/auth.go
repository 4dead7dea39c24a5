package models

// LoginRequest is the payload for the admin dashboard login
type LoginRequest struct {
	Email string `json:"email" validate:"required,email"`
	UID   string `json:"uid" validate:"required"`
}

// TokenPayload is the decoded content of the authToken cookie. The cookie
// value is the base64 encoding of this struct as JSON; the dashboard frontend
// reads it directly, so the shape is a fixed contract.
type TokenPayload struct {
	Email     string `json:"email"`
	UID       string `json:"uid"`
	Timestamp int64  `json:"timestamp"`
}
