package domain

import (
	"strings"
)

type ChainId int32

type Address string

// EmptyAddress is the placeholder address front-ends pass before the user typed one
const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(strings.TrimSpace(string(a))) == 0
}

// IsZero is true for the zero address in any letter case
func (a Address) IsZero() bool {
	return a.Equals(EmptyAddress)
}

// IsUnset covers both states that mean "no address provided yet"
func (a Address) IsUnset() bool {
	return a.IsEmpty() || a.IsZero()
}

func (a Address) Equals(b Address) bool {
	return strings.EqualFold(strings.TrimSpace(string(a)), strings.TrimSpace(string(b)))
}
