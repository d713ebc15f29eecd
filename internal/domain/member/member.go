package member

import (
	"errors"
	"strings"
)

var (
	ErrInvalidPhone = errors.New("phone must be exactly 10 digits")
	ErrNameTooShort = errors.New("name must be at least 2 characters")
)

// Phone is a member's lookup key: exactly 10 digits, as enforced by the store
// backend on registration.
type Phone string

func NewPhone(raw string) (Phone, error) {
	p := strings.TrimSpace(raw)
	if len(p) != 10 {
		return "", ErrInvalidPhone
	}
	for _, r := range p {
		if r < '0' || r > '9' {
			return "", ErrInvalidPhone
		}
	}
	return Phone(p), nil
}

func (p Phone) String() string {
	return string(p)
}

// Name validates the registration name the same way the backend does.
type Name string

func NewName(raw string) (Name, error) {
	n := strings.TrimSpace(raw)
	if len(n) < 2 {
		return "", ErrNameTooShort
	}
	return Name(n), nil
}

func (n Name) String() string {
	return string(n)
}

// Snapshot is the member as looked up from the store backend. DiscountRate is
// the tier-derived percentage the backend reports for the rolling year.
type Snapshot struct {
	MemberID     int64
	Name         string
	Phone        Phone
	DiscountRate float64
}

// ResolveRate picks the exact phone match out of a substring-search result.
// No match (or an empty result) means no discount, never an error.
func ResolveRate(candidates []Snapshot, phone Phone) float64 {
	for _, c := range candidates {
		if c.Phone == phone {
			return c.DiscountRate
		}
	}
	return 0
}
