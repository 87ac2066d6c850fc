package contact

// PhoneLength is the number of digits a phone number must have.
const PhoneLength = 10

// User-facing messages carried by contact errors.
const (
	invalidFormatMsg = "Invalid phone number format. Must be 10 digits."

	// MsgContactNotFound is reported when no record is stored under a name.
	MsgContactNotFound = "Contact not found."
)

// PhoneNumber is a validated 10-digit phone number.
// The zero value is not a valid number; use NewPhoneNumber.
type PhoneNumber struct {
	digits string
}

// NewPhoneNumber validates s and wraps it.
// It fails with ErrInvalidFormat unless s is exactly PhoneLength ASCII digits.
func NewPhoneNumber(s string) (PhoneNumber, error) {
	if !isPhoneDigits(s) {
		return PhoneNumber{}, newError(KindInvalidFormat, "phone", invalidFormatMsg)
	}
	return PhoneNumber{digits: s}, nil
}

// String returns the digits as given.
func (p PhoneNumber) String() string {
	return p.digits
}

func isPhoneDigits(s string) bool {
	if len(s) != PhoneLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
