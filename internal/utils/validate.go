package utils

import "regexp"

var (
	phoneRegex   = regexp.MustCompile(`^[6-9]\d{9}$`)
	emailRegex   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	nameRegex    = regexp.MustCompile(`^[a-zA-Z\s]{3,100}$`)
	pincodeRegex = regexp.MustCompile(`^\d{6}$`)
	hasPincode   = regexp.MustCompile(`\d{6}`)
)

// ValidPhone accepts a 10-digit Indian mobile number.
func ValidPhone(phone string) bool {
	return phoneRegex.MatchString(phone)
}

func ValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

func ValidName(name string) bool {
	return nameRegex.MatchString(name)
}

func ValidPincode(pincode string) bool {
	return pincodeRegex.MatchString(pincode)
}

// ValidAddress requires a usable street address: at least 20 characters and
// a 6-digit pincode somewhere in the text.
func ValidAddress(address string) bool {
	return len(address) >= 20 && hasPincode.MatchString(address)
}
