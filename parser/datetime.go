package parser

import (
	"fmt"
	"time"
)

// ISODateTime is the timestamp layout accepted by DateTime: date and time,
// no zone offset, no fractional seconds.
const ISODateTime = "2006-01-02T15:04:05"

// DateTime parses an ISO-8601 datetime string of the form
// "2006-01-02T15:04:05". The result is in the local location, matching
// what naive timestamps from outside sources conventionally mean here.
func DateTime(s string) (time.Time, error) {
	t, err := time.ParseInLocation(ISODateTime, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("not a valid ISO datetime %q: %w", s, err)
	}
	return t, nil
}
