package auth

// Учётная запись по умолчанию, создаётся при пустом списке пользователей
const (
	DefaultUsername = "admin"
	DefaultPassword = "admin123"
)

// Сообщения для пользователя
const (
	MessageLoggedIn   = "Logged in!"
	MessageLoggedOut  = "Logged out"
	MessageRegistered = "Registered successfully! Please login."
)

// user запись в документе weelab_users
// Password - bcrypt хеш; записи старого формата хранят пароль открытым текстом
type user struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Status состояние входа
type Status struct {
	LoggedIn bool `json:"loggedIn"`
}
