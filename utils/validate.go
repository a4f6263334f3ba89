package utils

import "regexp"

var (
	alnumPattern = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	upperPattern = regexp.MustCompile(`[A-Z]`)
	digitPattern = regexp.MustCompile(`[0-9]`)
)

// ValidateCredentials checks a register payload before any domain logic runs.
// It returns field-level error messages keyed by field name; an empty map
// means the payload is valid.
func ValidateCredentials(username, password string) map[string][]string {
	errs := make(map[string][]string)

	if username == "" {
		errs["username"] = append(errs["username"], "User Name is required.")
	} else {
		if len(username) > 100 {
			errs["username"] = append(errs["username"], "User Name cannot be longer than 100 characters.")
		}
		if !alnumPattern.MatchString(username) {
			errs["username"] = append(errs["username"], "User Name can only contain letters and numbers.")
		}
	}

	if password == "" {
		errs["password"] = append(errs["password"], "Password is required.")
	} else {
		if len(password) < 6 || len(password) > 100 {
			errs["password"] = append(errs["password"], "Password must be at least 6 characters long.")
		}
		if !upperPattern.MatchString(password) || !digitPattern.MatchString(password) {
			errs["password"] = append(errs["password"], "Password must contain at least one uppercase letter and one number.")
		}
	}

	return errs
}
