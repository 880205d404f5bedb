package dto

import "time"

// SignupRequest body para registro de usuario.
type SignupRequest struct {
	LoginID  string `json:"login_id"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// SigninRequest body para login.
type SigninRequest struct {
	LoginID  string `json:"login_id"`
	Password string `json:"password"`
}

// UserResponse usuario en respuestas (sin hash de contraseña).
type UserResponse struct {
	ID        string    `json:"id"`
	LoginID   string    `json:"login_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// SigninResponse token + usuario.
type SigninResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
