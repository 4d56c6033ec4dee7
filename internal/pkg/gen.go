package pkg

import (
	"crypto/rand"
	"encoding/base64"
	"math/big"
)

// roomIDAlphabet - letters, digits and four URL-safe symbols.
const roomIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_.~"

const roomIDLength = 8

// GenerateRoomID - generates an 8-character room identifier. Collisions are
// assumed negligible and are not checked against existing ids here.
func GenerateRoomID() string {
	id := make([]byte, roomIDLength)
	max := big.NewInt(int64(len(roomIDAlphabet)))

	for i := range id {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return ""
		}
		id[i] = roomIDAlphabet[n.Int64()]
	}

	return string(id)
}

// GenerateNewSessionID - generates a new unique sessionID.
func GenerateNewSessionID() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "error-generating-session-id"
	}

	return base64.RawURLEncoding.EncodeToString(b)
}
