// Package utils provides utility functions for the application.
package utils

import (
	"time"
)

// UTCNow returns the current time in UTC
func UTCNow() time.Time {
	return time.Now().UTC()
}

// UTCNowPtr returns a pointer to the current time in UTC
func UTCNowPtr() *time.Time {
	now := UTCNow()
	return &now
}

// TimeToUTC converts a time to UTC if it's not already
func TimeToUTC(t time.Time) time.Time {
	return t.UTC()
}

// YearsBetween returns the number of whole calendar years between from and to.
// The counter only advances once the anniversary of from has passed.
func YearsBetween(from, to time.Time) int {
	years := to.Year() - from.Year()
	if years < 0 {
		return 0
	}
	if years > 0 && from.AddDate(years, 0, 0).After(to) {
		years--
	}
	return years
}
