package domain

// Outcome is the standardized result of a mutating money operation.
// Every failing path carries both a human-readable message for the caller to
// relay and a sentinel error kind to branch on; failures are never silent.
type Outcome struct {
	Successful bool   `json:"successful"`
	Message    string `json:"message"`
	Err        error  `json:"-"`
}

// Success returns a successful Outcome with the given message.
func Success(message string) Outcome {
	return Outcome{Successful: true, Message: message}
}

// Failure returns a failed Outcome carrying the error kind. The message shown
// to callers is the error text itself.
func Failure(err error) Outcome {
	return Outcome{Successful: false, Message: err.Error(), Err: err}
}
