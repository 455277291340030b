package validator

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
)

type ValidatorTestSuite struct {
	suite.Suite
}

func (s *ValidatorTestSuite) TestIsValidAddress() {
	tests := []struct {
		desc       string
		address    string
		expIsValid bool
	}{
		{
			desc:       "invalid address",
			address:    "0x000",
			expIsValid: false,
		},
		{
			desc:       "empty",
			address:    "",
			expIsValid: false,
		},
		{
			desc:       "not hex",
			address:    "0xZZ9ae6A4C8dfDBB1f7085189574F0A938013952A",
			expIsValid: false,
		},
		{
			desc:       "valid address - real address",
			address:    "0x939ae6A4C8dfDBB1f7085189574F0A938013952A",
			expIsValid: true,
		},
		{
			desc:       "valid address - lower case",
			address:    "0x939ae6a4c8dfdbb1f7085189574f0a938013952b",
			expIsValid: true,
		},
		{
			desc:       "valid address - zero address",
			address:    "0x0000000000000000000000000000000000000000",
			expIsValid: true,
		},
	}
	for _, t := range tests {
		s.Equal(t.expIsValid, IsValidAddress(t.address), t.desc)
	}
}

func (s *ValidatorTestSuite) TestCustomValidator() {
	type payload struct {
		Network string   `validate:"required"`
		Address string   `validate:"omitempty,ethaddr"`
		Batch   []string `validate:"dive,ethaddr"`
	}
	v := NewCustomValidator(validator.New())

	s.NoError(v.Validate(&payload{Network: "polygon"}))
	s.NoError(v.Validate(&payload{Network: "polygon", Address: "0x939ae6a4c8dfdbb1f7085189574f0a938013952b"}))
	s.Error(v.Validate(&payload{Address: "0x939ae6a4c8dfdbb1f7085189574f0a938013952b"}))
	s.Error(v.Validate(&payload{Network: "polygon", Address: "0x000"}))
	s.Error(v.Validate(&payload{Network: "polygon", Batch: []string{"0x000"}}))
}

func TestValidatorTestSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}
