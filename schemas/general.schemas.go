package schemas

// ErrorResponse struct
type ErrorResponse struct {
	Error       bool   `json:"error"`
	Problem     string `json:"problem,omitempty"`
	Description string `json:"description,omitempty"`
}

// SuccessResponse struct
type SuccessResponse struct {
	Success bool `json:"success"`
}

// HealthResponse struct
type HealthResponse struct {
	Status string `json:"status"`
}

// PublicUser is the profile subset exposed without authentication
type PublicUser struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Username    string `json:"username"`
	AvatarColor string `json:"avatar_color"`
}
