package domain

// UserProfile is the authenticated user's editable profile.
type UserProfile struct {
	ID          string `json:"_id"`
	Email       string `json:"email"`
	Username    string `json:"username"`
	Description string `json:"description"`
	Photo       *Photo `json:"photo,omitempty"`
}

// PhotoURL returns the profile photo URL, or "" when none is set.
func (u UserProfile) PhotoURL() string {
	if u.Photo == nil {
		return ""
	}
	return u.Photo.URL
}

// SignUpRequest is the payload for creating a new account.
type SignUpRequest struct {
	Email       string `json:"email"`
	Username    string `json:"username"`
	Description string `json:"description"`
	Password    string `json:"password"`
}

// SignInRequest is the payload for authenticating an existing account.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by both sign_up and log_in: an opaque session
// token and the id of the user it belongs to.
type AuthResponse struct {
	Token  string `json:"token"`
	UserID string `json:"id"`
}
