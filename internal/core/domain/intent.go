package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Intent is a request for a package at a version range, encoded as "name@range".
// The last '@' separates the name from the range, so scoped names such as
// "@scope/pkg" survive the round trip.
type Intent string

// NewIntent joins a package name and a version range into an Intent.
// No validation is performed.
func NewIntent(name, rng string) Intent {
	return Intent(name + "@" + rng)
}

// Name returns the package name, i.e. everything before the last '@'.
// It returns "" when the intent has no separator.
func (i Intent) Name() string {
	idx := strings.LastIndexByte(string(i), '@')
	if idx < 0 {
		return ""
	}
	return string(i[:idx])
}

// Range returns the version range, i.e. everything after the last '@'.
func (i Intent) Range() string {
	idx := strings.LastIndexByte(string(i), '@')
	return string(i[idx+1:])
}

// Split returns the name and range of the intent.
// It returns ErrMalformedIntent if there is no separator or the name is empty.
func (i Intent) Split() (name, rng string, err error) {
	idx := strings.LastIndexByte(string(i), '@')
	if idx <= 0 {
		return "", "", zerr.With(zerr.Wrap(ErrMalformedIntent, "cannot split intent"), "intent", string(i))
	}
	return string(i[:idx]), string(i[idx+1:]), nil
}

// String returns the raw intent string.
func (i Intent) String() string {
	return string(i)
}
