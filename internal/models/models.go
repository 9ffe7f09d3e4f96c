package models

import "time"

// Record is the part every device log row shares.
type Record struct {
	ID        string    `json:"id"`
	DeviceID  string    `json:"toy_mac_address"`
	Timestamp time.Time `json:"time"`
}

// UsageEvent marks an interaction with a toy. Its existence is the payload.
type UsageEvent struct {
	Record
}

// SentimentEvent is a mood tag detected during a conversation.
type SentimentEvent struct {
	Record
	Sentiment string `json:"sentiment"`
}

// InterestEvent is a topic the child talked about and how strongly.
type InterestEvent struct {
	Record
	Interest   string  `json:"interest"`
	Intensity  float64 `json:"intensity"`
	RequestID  string  `json:"request_id,omitempty"`
	ResponseID string  `json:"response_id,omitempty"`
}

// ToyLogType tells who produced a conversation line.
type ToyLogType string

const (
	ToyLogUserRequest    ToyLogType = "user_request"
	ToyLogSystemResponse ToyLogType = "system_response"
)

// ToyLog is one line of conversation between the child and the toy.
type ToyLog struct {
	Record
	Message  string     `json:"message"`
	Type     ToyLogType `json:"type"`
	AudioURI *string    `json:"audio_uri,omitempty"`
}

// Usage drops the conversation payload, leaving the interaction marker.
func (l ToyLog) Usage() UsageEvent {
	return UsageEvent{Record: l.Record}
}

// User is the profile stored next to the auth account
type User struct {
	ID        string    `json:"uid"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	CreatedAt time.Time `json:"created_at"`
}

// Device is a toy paired to a parent account
type Device struct {
	ID        string    `json:"id,omitempty"`
	UserID    string    `json:"user_id"`
	DeviceID  string    `json:"toy_mac_address"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginRequest represents the login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest represents the sign-up form
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Username  string `json:"username" binding:"required,min=3,max=32"`
}

// AuthResponse represents the authentication response
type AuthResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	User         User   `json:"user"`
}

// PairDeviceRequest carries the identifier scanned from the toy's QR code.
type PairDeviceRequest struct {
	DeviceID string `json:"device_id" binding:"required"`
	Name     string `json:"name" binding:"max=64"`
}
