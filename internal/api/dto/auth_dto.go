package dto

// LoginRequest payload for POST /api/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the signed token and the caller's role.
type LoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}
