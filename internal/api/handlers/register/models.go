package register

// RegisterRequest HTTP request model
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterResponse HTTP response model
type RegisterResponse struct {
	Message string `json:"message"`
}
