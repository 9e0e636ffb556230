package logout

// LogoutResponse HTTP response model
type LogoutResponse struct {
	LoggedOut bool   `json:"loggedOut"`
	Message   string `json:"message,omitempty"`
	Prompt    string `json:"prompt,omitempty"`
}
