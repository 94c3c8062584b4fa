package calendar

import (
	"encoding/base64"
	"net/url"
	"regexp"
	"strings"
)

// base64Token matches inputs that look like a bare base64-encoded calendar
// identifier.
var base64Token = regexp.MustCompile(`^[A-Za-z0-9+/]+={0,2}$`)

// ExtractCalendarID extracts a canonical calendar identifier from raw user
// input: a direct ID (contains @), a Google Calendar share URL carrying a
// base64 cid parameter, or a bare base64 token. Anything unrecognized is
// returned unchanged and left for the upstream fetch to reject, so this
// never fails.
func ExtractCalendarID(input string) string {
	if input == "" {
		return ""
	}

	// Already a calendar ID.
	if strings.Contains(input, "@") {
		return input
	}

	// Share URLs carry the ID base64-encoded in the cid query parameter.
	if strings.Contains(input, "calendar.google.com") {
		if u, err := url.Parse(input); err == nil {
			if cid := u.Query().Get("cid"); cid != "" {
				if decoded, ok := decodeBase64(cid); ok {
					return decoded
				}
			}
		}
	}

	// A bare base64 token whose decoded form looks like a calendar ID.
	if len(input) > 20 && base64Token.MatchString(input) {
		if decoded, ok := decodeBase64(input); ok && strings.Contains(decoded, "@") {
			return decoded
		}
	}

	return input
}

// decodeBase64 accepts both padded and unpadded tokens; share URLs commonly
// strip the padding.
func decodeBase64(s string) (string, bool) {
	if decoded, err := base64.StdEncoding.DecodeString(s); err == nil {
		return string(decoded), true
	}
	if decoded, err := base64.RawStdEncoding.DecodeString(s); err == nil {
		return string(decoded), true
	}
	return "", false
}
