package model

// Outcome classifies an auth operation result for programmatic callers.
type Outcome string

const (
	OutcomeOK                Outcome = "ok"
	OutcomeInvalidCredential Outcome = "invalid_credential"
	OutcomeNotFound          Outcome = "not_found"
	OutcomeAlreadyExists     Outcome = "already_exists"
	OutcomeValidationFailed  Outcome = "validation_failed"
	OutcomeAlreadySeeded     Outcome = "already_seeded"
)

// AuthResult is the uniform outcome of an auth operation. Expected failures
// (unknown user, wrong password, duplicate username, weak password) are
// reported here with Succeeded=false; only infrastructure failures travel as
// errors.
type AuthResult struct {
	Succeeded bool     `json:"succeeded"`
	Kind      Outcome  `json:"kind"`
	Message   string   `json:"message"`
	Token     string   `json:"token,omitempty"`
	Errors    []string `json:"errors,omitempty"`
}
