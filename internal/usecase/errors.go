package usecase

// Error codes used across the use cases.
const (
	CodeValidation       = "VALIDATION_ERROR"
	CodeInvalidStatus    = "INVALID_STATUS"
	CodeStoreUnavailable = "STORE_UNAVAILABLE"
)

// DomainError is a business-rule failure the caller can fix (bad input,
// unknown status). Never retried automatically.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}

// TechnicalError is an infrastructure failure (store unreachable). The
// caller may retry later.
type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	_, ok := err.(*TechnicalError)
	return ok
}

func storeUnavailable(op string) *TechnicalError {
	return &TechnicalError{
		Code:    CodeStoreUnavailable,
		Message: "could not " + op + " right now, please try again later",
	}
}
