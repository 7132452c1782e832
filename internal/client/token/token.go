// Package token extracts the payload of the compact session tokens issued by
// the SMRC API.
//
// Tokens are three dot-separated base64url segments (header, payload,
// signature). Only the payload is read. The signature and expiry are not
// checked here: the server issues and validates tokens, the client only
// caches what they say.
package token

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/golang-jwt/jwt/v5"
)

// ErrMalformed is returned for tokens that cannot be decoded.
var ErrMalformed = errors.New("malformed token")

// Claims is the decoded payload. Data keeps the raw "data" member, which
// carries the user profile. Subject, IssuedAt and ExpiresAt are
// informational: they are filled when the payload carries them in a usable
// form and left empty otherwise.
type Claims struct {
	Data      json.RawMessage
	Subject   string
	IssuedAt  *jwt.NumericDate
	ExpiresAt *jwt.NumericDate
}

// payload mirrors the members read from the token; the registered claims
// stay raw so an odd sub/iat/exp never rejects the token.
type payload struct {
	Data json.RawMessage `json:"data"`
	Sub  json.RawMessage `json:"sub"`
	Iat  json.RawMessage `json:"iat"`
	Exp  json.RawMessage `json:"exp"`
}

// HasData reports whether the payload carried a JSON object under "data".
func (c *Claims) HasData() bool {
	trimmed := strings.TrimSpace(string(c.Data))
	return strings.HasPrefix(trimmed, "{")
}

var parser = jwt.NewParser(jwt.WithPaddingAllowed())

// Decode returns the payload claims of raw. Segments may use either the
// URL-safe or the padded alphabet tail; UTF-8 text inside the payload is
// preserved.
func Decode(raw string) (*Claims, error) {
	parts := strings.Split(strings.TrimSpace(raw), ".")
	if len(parts) != 3 {
		return nil, fmt.Errorf("%w: expected 3 segments, got %d", ErrMalformed, len(parts))
	}
	if parts[1] == "" {
		return nil, fmt.Errorf("%w: empty payload segment", ErrMalformed)
	}

	seg, err := parser.DecodeSegment(toURLAlphabet(parts[1]))
	if err != nil {
		return nil, fmt.Errorf("%w: payload encoding: %w", ErrMalformed, err)
	}
	if !utf8.Valid(seg) {
		return nil, fmt.Errorf("%w: payload is not UTF-8", ErrMalformed)
	}

	var p payload
	if err := json.Unmarshal(seg, &p); err != nil {
		return nil, fmt.Errorf("%w: payload json: %w", ErrMalformed, err)
	}

	return &Claims{
		Data:      p.Data,
		Subject:   subject(p.Sub),
		IssuedAt:  numericDate(p.Iat),
		ExpiresAt: numericDate(p.Exp),
	}, nil
}

// subject accepts "sub" as a JSON string or number.
func subject(raw json.RawMessage) string {
	var s string
	if json.Unmarshal(raw, &s) == nil {
		return s
	}
	var n json.Number
	if json.Unmarshal(raw, &n) == nil {
		return n.String()
	}
	return ""
}

func numericDate(raw json.RawMessage) *jwt.NumericDate {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	var d jwt.NumericDate
	if err := d.UnmarshalJSON(raw); err != nil {
		return nil
	}
	return &d
}

// toURLAlphabet maps the standard base64 characters '+' and '/' onto the
// URL-safe ones so both encodings decode the same way.
func toURLAlphabet(seg string) string {
	return strings.NewReplacer("+", "-", "/", "_").Replace(seg)
}
