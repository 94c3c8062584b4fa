// Package datemath resolves the date inputs of an events query. Inputs are
// either absolute civil dates ("2006-01-02") or relative tokens resolved
// against a reference time: "today", "tomorrow", "yesterday", and signed
// day/week/month offsets such as "+3d", "-2w" or "+1m".
package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the wire format for absolute civil dates.
const DateLayout = "2006-01-02"

var offsetToken = regexp.MustCompile(`^([+-]\d+)([dwm])$`)

// Resolve returns UTC midnight of the civil date the input stands for.
// Absolute dates pass through after validation; relative tokens are resolved
// against now. Anything else is an error.
func Resolve(input string, now time.Time) (time.Time, error) {
	token := strings.ToLower(strings.TrimSpace(input))

	switch token {
	case "today":
		return startOfDay(now), nil
	case "tomorrow":
		return startOfDay(now.AddDate(0, 0, 1)), nil
	case "yesterday":
		return startOfDay(now.AddDate(0, 0, -1)), nil
	}

	if m := offsetToken.FindStringSubmatch(token); m != nil {
		return resolveOffset(m, now)
	}

	t, err := time.Parse(DateLayout, token)
	if err != nil {
		return time.Time{}, fmt.Errorf("unresolvable date %q", input)
	}
	return t, nil
}

// resolveOffset applies a signed offset token to the reference time.
func resolveOffset(m []string, now time.Time) (time.Time, error) {
	amount, err := strconv.Atoi(m[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("unresolvable offset %q", m[0])
	}

	switch m[2] {
	case "d":
		return startOfDay(now.AddDate(0, 0, amount)), nil
	case "w":
		return startOfDay(now.AddDate(0, 0, amount*7)), nil
	case "m":
		return startOfDay(now.AddDate(0, amount, 0)), nil
	}
	return time.Time{}, fmt.Errorf("unknown offset unit %q", m[2])
}

func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
