package domain

// Default fees of the built-in catalog
const (
	DefaultPerHead  = 150
	DefaultStyleFee = 3000
)

// Document store keys. Names are part of the persisted layout.
const (
	BookingsKey = "bookings"
	LoggedInKey = "loggedIn"
	UsersKey    = "weelab_users"
)

// Draft fields, in the order they are validated on submit
const (
	FieldName      = "name"
	FieldEmail     = "email"
	FieldContact   = "contact"
	FieldEventDate = "eventDate"
	FieldVenue     = "venue"
	FieldGuests    = "guests"
	FieldStyle     = "style"
)

// Confirmation prompts shown to the user
const (
	PromptSubmit = "Are you sure about your selections?"
	PromptDelete = "Are you sure you want to delete this booking?"
	PromptLogout = "Log out?"
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
