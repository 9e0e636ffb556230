package login

// CredentialsRequest HTTP request model
type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse HTTP response model
type LoginResponse struct {
	LoggedIn bool   `json:"loggedIn"`
	Message  string `json:"message"`
}
