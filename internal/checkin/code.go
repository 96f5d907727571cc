package checkin

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Check-in codes are plain delimited strings of the form
// "<PREFIX>-CHECKIN-<profile-id>", rendered as QR codes by the clients.

const codeTag = "CHECKIN"

var ErrInvalidCode = errors.New("invalid code")

func EncodeCode(prefix string, profileID int) string {
	return fmt.Sprintf("%s-%s-%d", prefix, codeTag, profileID)
}

// DecodeCode matches the configured prefix as a whole, so prefixes that
// themselves contain hyphens still round-trip.
func DecodeCode(prefix, code string) (int, error) {
	rest, ok := strings.CutPrefix(code, prefix+"-"+codeTag+"-")
	if !ok {
		return 0, ErrInvalidCode
	}

	id, err := strconv.Atoi(rest)
	if err != nil || id <= 0 {
		return 0, ErrInvalidCode
	}

	return id, nil
}
