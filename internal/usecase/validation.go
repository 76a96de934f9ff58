package usecase

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/londonlets/api/internal/entity"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateSubmitLeadInput returns at most one error per field, in field
// order. Phone, borough, message and source are free-form and optional.
func ValidateSubmitLeadInput(input SubmitLeadInput) []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(input.Name) == "" {
		errs = append(errs, ValidationError{"name", "is required"})
	} else if len(input.Name) > 200 {
		errs = append(errs, ValidationError{"name", "must not exceed 200 characters"})
	}

	if strings.TrimSpace(input.Email) == "" {
		errs = append(errs, ValidationError{"email", "is required"})
	} else if !isValidEmail(input.Email) {
		errs = append(errs, ValidationError{"email", "is invalid"})
	}

	if strings.TrimSpace(input.InterestedIn) == "" {
		errs = append(errs, ValidationError{"interested_in", "is required"})
	} else if !entity.ValidInterest(input.InterestedIn) {
		errs = append(errs, ValidationError{"interested_in", "must be rent, buy or sell"})
	}

	if input.Budget != nil && *input.Budget < 0 {
		errs = append(errs, ValidationError{"budget", "must not be negative"})
	}

	if len(input.Message) > 5000 {
		errs = append(errs, ValidationError{"message", "must not exceed 5000 characters"})
	}

	return errs
}

func isValidEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}
	// mail.ParseAddress accepts "Name <a@b>"; the form field must be the
	// bare address.
	return addr.Address == email
}
