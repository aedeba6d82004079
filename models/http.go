package models

// ErrorResponse is the JSON body written for every failed API request.
type ErrorResponse struct {
	// Error is the failure class: bad_request, unauthorized, forbidden,
	// not_found, constraint_violation, validation_failed, too_many_requests
	// or internal.
	Error string `json:"error"`

	// Kind is the resource kind the failure refers to, when known.
	Kind ResourceKind `json:"kind,omitempty"`

	// Message is a human-readable description.
	Message string `json:"message"`
}

// AuthRequest is the body of register and login requests.
type AuthRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Token     string `json:"access_token"`
	TokenType string `json:"token_type"`
	User      User   `json:"user"`
}
