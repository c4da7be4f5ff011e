package dto

// LoginRequest is the body of the admin login endpoint.
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the admin session token.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
}
