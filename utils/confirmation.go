package utils

import (
	"encoding/base64"
	"errors"
)

// GenerateConfirmationToken derives the opaque confirmation token for an RSVP
// id. Base64url keeps the raw id out of URLs; it is an encoding, not a
// signature.
func GenerateConfirmationToken(id string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(id))
}

// DecodeConfirmationToken reverses GenerateConfirmationToken. Malformed or
// empty tokens yield an error, never a panic.
func DecodeConfirmationToken(token string) (string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return "", err
	}
	if len(raw) == 0 {
		return "", errors.New("empty confirmation token")
	}
	return string(raw), nil
}
