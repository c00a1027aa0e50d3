package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPasswordStrong(t *testing.T) {
	assert.True(t, IsPasswordStrong("Str0ng!Pass"))
	assert.False(t, IsPasswordStrong("short1!A"[:7]))
	assert.False(t, IsPasswordStrong("alllowercase1!"))
	assert.False(t, IsPasswordStrong("ALLUPPERCASE1!"))
	assert.False(t, IsPasswordStrong("NoDigitsHere!"))
	assert.False(t, IsPasswordStrong("NoSpecial123"))
}

func TestStringTrim(t *testing.T) {
	assert.Equal(t, "abc", StringTrim("  abc  "))
	assert.Equal(t, "abc", StringTrim(`"abc"`))
	assert.Equal(t, "abc", StringTrim("'abc'"))
	assert.Equal(t, "", StringTrim("   "))
}

func TestGenerateOTP(t *testing.T) {
	otp := GenerateOTP(6)
	assert.Len(t, otp, 6)
	for _, c := range otp {
		assert.True(t, c >= '0' && c <= '9')
	}
}
