// Package validation provides input validation for account operations.
// Validators collect every failing field into a list rather than stopping
// at the first error, so clients can surface all problems at once.
package validation

import "regexp"

// FieldError pairs a failing input field with a human-readable message.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var (
	nameRegex  = regexp.MustCompile(`^[A-Z][a-z]{2,23}$`)
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

// RegisterInput is the request body for account registration.
type RegisterInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// LoginInput is the request body for login.
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ValidateRegister checks every field and returns all failures.
func ValidateRegister(in RegisterInput) []FieldError {
	errs := []FieldError{}

	switch {
	case in.FirstName == "":
		errs = append(errs, FieldError{Field: "firstName", Message: "First name is required."})
	case !nameRegex.MatchString(in.FirstName):
		errs = append(errs, FieldError{Field: "firstName", Message: "First name must only contain letters."})
	}

	switch {
	case in.LastName == "":
		errs = append(errs, FieldError{Field: "lastName", Message: "Last name is required."})
	case !nameRegex.MatchString(in.LastName):
		errs = append(errs, FieldError{Field: "lastName", Message: "Last name must only contain letters."})
	}

	if in.Username == "" {
		errs = append(errs, FieldError{Field: "username", Message: "Username is required."})
	}

	switch {
	case in.Email == "":
		errs = append(errs, FieldError{Field: "email", Message: "Email is required."})
	case !emailRegex.MatchString(in.Email):
		errs = append(errs, FieldError{Field: "email", Message: "Email must be valid."})
	}

	switch {
	case in.Password == "":
		errs = append(errs, FieldError{Field: "password", Message: "Password is required."})
	case len(in.Password) < 8:
		errs = append(errs, FieldError{Field: "password", Message: "Password must be at least 8 characters long."})
	}

	return errs
}

// ValidateLogin checks the login fields and returns all failures.
func ValidateLogin(in LoginInput) []FieldError {
	errs := []FieldError{}

	if in.Username == "" {
		errs = append(errs, FieldError{Field: "username", Message: "Username is required."})
	}

	switch {
	case in.Password == "":
		errs = append(errs, FieldError{Field: "password", Message: "Password is required."})
	case len(in.Password) < 8:
		errs = append(errs, FieldError{Field: "password", Message: "Password must be at least 8 characters long."})
	}

	return errs
}
