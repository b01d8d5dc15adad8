package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate_AcceptsDefaults(t *testing.T) {
	assert.NoError(t, Validate(DefaultFileConfig()))
}

func TestValidate_RejectsNegativeThreads(t *testing.T) {
	fc := DefaultFileConfig()
	fc.NumThreads = -1

	err := Validate(fc)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "num_threads")
}

func TestValidate_RejectsEmptyNamedAddress(t *testing.T) {
	fc := DefaultFileConfig()
	fc.NamedAddresses = map[string]string{"std": ""}

	err := Validate(fc)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "named_addresses.std")
}

func TestValidationErrors_Error(t *testing.T) {
	var errs ValidationErrors
	assert.Equal(t, "no validation errors", errs.Error())

	errs.add("a", "bad")
	assert.Equal(t, "field 'a': bad", errs.Error())

	errs.add("b", "also bad")
	assert.Contains(t, errs.Error(), "2 validation errors")
}
