package twilio

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"errors"
	"sort"
)

// ErrBadSignature marks a webhook request whose X-Twilio-Signature does not
// match the shared auth token. Such requests are rejected at the protocol
// level before any other processing.
var ErrBadSignature = errors.New("invalid twilio signature")

// Validator checks webhook signatures against the account's auth token.
type Validator struct {
	authToken string
}

func NewValidator(authToken string) *Validator {
	return &Validator{authToken: authToken}
}

// Compute returns the expected signature for a request: base64 of the
// HMAC-SHA1 (keyed by the auth token) over the full request URL followed by
// each form parameter name and value in lexicographic key order.
func (v *Validator) Compute(url string, params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	mac := hmac.New(sha1.New, []byte(v.authToken))
	mac.Write([]byte(url))
	for _, k := range keys {
		mac.Write([]byte(k))
		mac.Write([]byte(params[k]))
	}

	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// Validate reports whether signature matches the request.
func (v *Validator) Validate(url string, params map[string]string, signature string) bool {
	expected := v.Compute(url, params)
	return hmac.Equal([]byte(expected), []byte(signature))
}
