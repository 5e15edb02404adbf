// Package validation centralizes the field validators shared by every entry
// point, so the same rules apply to bids, users and payment records alike.
package validation

import (
	"regexp"
	"unicode"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Fullname: letters, spaces, hyphens, apostrophes only.
var fullnameRe = regexp.MustCompile(`^[A-Za-z\s\-']+$`)

// Mobile number: 10 to 15 digits, no separators.
var mobileRe = regexp.MustCompile(`^[0-9]{10,15}$`)

// National id: 9 digits plus one letter (case-insensitive), or exactly 12 digits.
var nationalIDOldRe = regexp.MustCompile(`^[0-9]{9}[A-Za-z]$`)
var nationalIDNewRe = regexp.MustCompile(`^[0-9]{12}$`)

func IsValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

func IsValidFullname(fullname string) bool {
	return fullname != "" && fullnameRe.MatchString(fullname)
}

func IsValidMobileNumber(mobile string) bool {
	return mobileRe.MatchString(mobile)
}

func IsValidNationalID(id string) bool {
	return nationalIDOldRe.MatchString(id) || nationalIDNewRe.MatchString(id)
}

// IsValidPassword enforces the registration password rule:
// - at least 8 characters
// - contains at least one letter
// - contains at least one number
// - contains at least one special character
func IsValidPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	hasLetter, hasDigit, hasSpecial := false, false, false
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}
	return hasLetter && hasDigit && hasSpecial
}
