package twilio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// The documented Twilio example request: known token, URL, and params.
func exampleRequest() (url string, params map[string]string) {
	return "https://mycompany.com/myapp.php?foo=1&bar=2", map[string]string{
		"CallSid": "CA1234567890ABCDE",
		"Caller":  "+12349013030",
		"Digits":  "1234",
		"From":    "+12349013030",
		"To":      "+18005551212",
	}
}

func TestComputeMatchesKnownVector(t *testing.T) {
	url, params := exampleRequest()
	v := NewValidator("12345")

	assert.Equal(t, "0/KCTR6DLpKmkAf8muzZqo1nDgQ=", v.Compute(url, params))
}

func TestValidate(t *testing.T) {
	url, params := exampleRequest()
	v := NewValidator("12345")
	good := v.Compute(url, params)

	t.Run("accepts matching signature", func(t *testing.T) {
		assert.True(t, v.Validate(url, params, good))
	})

	t.Run("rejects tampered param", func(t *testing.T) {
		tampered := map[string]string{}
		for k, val := range params {
			tampered[k] = val
		}
		tampered["Digits"] = "9999"
		assert.False(t, v.Validate(url, tampered, good))
	})

	t.Run("rejects wrong URL", func(t *testing.T) {
		assert.False(t, v.Validate("https://mycompany.com/other", params, good))
	})

	t.Run("rejects empty signature", func(t *testing.T) {
		assert.False(t, v.Validate(url, params, ""))
	})

	t.Run("rejects wrong token", func(t *testing.T) {
		other := NewValidator("54321")
		assert.False(t, other.Validate(url, params, good))
	})
}

func TestComputeNoParams(t *testing.T) {
	v := NewValidator("12345")
	sig := v.Compute("https://mycompany.com/sms", nil)
	assert.NotEmpty(t, sig)
	assert.True(t, v.Validate("https://mycompany.com/sms", nil, sig))
}
