package domain

import "regexp"

// Constraint messages shown to users when a field value is rejected.
const (
	MessageNameConstraints = "Names should only contain alphanumeric characters and spaces, " +
		"and it should not be blank"

	MessagePhoneConstraints = "Phone numbers should only contain numbers, " +
		"and it should be at least 3 digits long"

	MessageEmailConstraints = "Emails should be of the format local-part@domain " +
		"and adhere to the following constraints:\n" +
		"1. The local-part should only contain alphanumeric characters and these special characters, " +
		"excluding the parentheses, (+_.-). The local-part may not start or end with any special characters.\n" +
		"2. This is followed by a '@' and then a domain name. " +
		"The domain name is made up of domain labels separated by periods.\n" +
		"The domain name must:\n" +
		"    - end with a domain label at least 2 characters long\n" +
		"    - have each domain label start and end with alphanumeric characters\n" +
		"    - have each domain label consist of alphanumeric characters, separated only by hyphens, if any."

	MessageAddressConstraints = "Addresses can take any values, and it should not be blank"
)

const (
	emailLocalPart  = `[A-Za-z0-9]([+_.\-A-Za-z0-9]*[A-Za-z0-9])?`
	emailDomainPart = `[A-Za-z0-9]([\-A-Za-z0-9]*[A-Za-z0-9])?`
)

var (
	nameRegex    = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 ]*$`)
	phoneRegex   = regexp.MustCompile(`^[0-9]{3,}$`)
	emailRegex   = regexp.MustCompile(`^` + emailLocalPart + `@(` + emailDomainPart + `\.)*(` + emailDomainPart + `){2,}$`)
	addressRegex = regexp.MustCompile(`^\S`)
)

// Name is a candidate's name.
type Name struct {
	value string
}

// IsValidName reports whether s is an acceptable name.
func IsValidName(s string) bool {
	return nameRegex.MatchString(s)
}

// NewName validates s and returns a Name.
func NewName(s string) (Name, error) {
	if !IsValidName(s) {
		return Name{}, invalid("Name", MessageNameConstraints)
	}
	return Name{value: s}, nil
}

// String returns the full name.
func (n Name) String() string {
	return n.value
}

// IsZero reports whether n was never set.
func (n Name) IsZero() bool {
	return n.value == ""
}

// Phone is a candidate's phone number.
type Phone struct {
	value string
}

// IsValidPhone reports whether s is an acceptable phone number.
func IsValidPhone(s string) bool {
	return phoneRegex.MatchString(s)
}

// NewPhone validates s and returns a Phone.
func NewPhone(s string) (Phone, error) {
	if !IsValidPhone(s) {
		return Phone{}, invalid("Phone", MessagePhoneConstraints)
	}
	return Phone{value: s}, nil
}

// String returns the phone number.
func (p Phone) String() string {
	return p.value
}

// IsZero reports whether p was never set.
func (p Phone) IsZero() bool {
	return p.value == ""
}

// Email is a candidate's email address.
type Email struct {
	value string
}

// IsValidEmail reports whether s is an acceptable email address.
func IsValidEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// NewEmail validates s and returns an Email.
func NewEmail(s string) (Email, error) {
	if !IsValidEmail(s) {
		return Email{}, invalid("Email", MessageEmailConstraints)
	}
	return Email{value: s}, nil
}

// String returns the email address.
func (e Email) String() string {
	return e.value
}

// IsZero reports whether e was never set.
func (e Email) IsZero() bool {
	return e.value == ""
}

// Address is a candidate's postal address.
type Address struct {
	value string
}

// IsValidAddress reports whether s is an acceptable address.
func IsValidAddress(s string) bool {
	return addressRegex.MatchString(s)
}

// NewAddress validates s and returns an Address.
func NewAddress(s string) (Address, error) {
	if !IsValidAddress(s) {
		return Address{}, invalid("Address", MessageAddressConstraints)
	}
	return Address{value: s}, nil
}

// String returns the address.
func (a Address) String() string {
	return a.value
}

// IsZero reports whether a was never set.
func (a Address) IsZero() bool {
	return a.value == ""
}
