package domain

// ConfirmFunc adapts a function to the yes/no confirmation collaborator
type ConfirmFunc func(message string) bool

// Confirm asks the question and reports the answer
func (f ConfirmFunc) Confirm(message string) bool {
	return f(message)
}

// Answer returns a confirmer that gives the same answer to every prompt.
// The HTTP layer builds one from the request's "confirmed" flag.
func Answer(yes bool) ConfirmFunc {
	return func(string) bool { return yes }
}
