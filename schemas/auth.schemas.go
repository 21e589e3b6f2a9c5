package schemas

// UserProfile is the stored user record (user:<id>)
type UserProfile struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Username    string `json:"username"`
	AvatarColor string `json:"avatar_color"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}

// CheckUsernameSchema struct
type CheckUsernameSchema struct {
	Username string `json:"username" validate:"required,max=30"`
}

// CheckUsernameResponse struct
type CheckUsernameResponse struct {
	Available bool   `json:"available"`
	Username  string `json:"username"`
}

// SignupSchema struct
type SignupSchema struct {
	Email    string `json:"email" validate:"required,email,max=1000"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required,max=100"`
	Username string `json:"username" validate:"required,max=30"`
}

// SignupResponse struct
type SignupResponse struct {
	User *UserProfile `json:"user"`
}

// ProfileResponse struct
type ProfileResponse struct {
	Profile *UserProfile `json:"profile"`
}
