package common

// AuthorizationHeaderName is the HTTP header carrying the session token on
// outbound API requests.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix precedes the raw token in AuthorizationHeaderName.
const BearerPrefix = "Bearer "

// WipeByteArray overwrites b with zeros. Used to drop passwords from memory
// once they have been sent. A nil slice is a no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
