package model

import "time"

// Role determines what a user may do. Fixed at registration.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User represents a registered account.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// RegisterRequest is the payload for creating a new account.
// is_admin selects the role at creation time; there is no elevation endpoint.
type RegisterRequest struct {
	Username  string `json:"username" binding:"required,min=3,max=50,excludes=@"`
	Email     string `json:"email" binding:"required,email,max=254"`
	Password  string `json:"password" binding:"required,min=8,max=128"`
	Password2 string `json:"password2" binding:"required,eqfield=Password"`
	FirstName string `json:"first_name" binding:"omitempty,max=100"`
	LastName  string `json:"last_name" binding:"omitempty,max=100"`
	IsAdmin   bool   `json:"is_admin"`
}

// LoginRequest accepts a username or an email as the identifier.
type LoginRequest struct {
	UsernameOrEmail string `json:"username_or_email" binding:"required,max=254"`
	Password        string `json:"password" binding:"required,min=1,max=128"`
}

// RefreshRequest is the payload for minting a new access token.
type RefreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

// TokenPair is returned by login and registration.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// UserView is the public projection of a user profile.
type UserView struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUserView projects a User for API responses.
func NewUserView(u *User) UserView {
	return UserView{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
