package tz

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseISO8601(t *testing.T) {
	want := time.Date(2020, 1, 1, 0, 0, 0, 0, Amsterdam)
	tests := []struct {
		name string
		in   string
	}{
		{"offset", "2020-01-01T00:00:00+01:00"},
		{"utc", "2019-12-31T23:00:00Z"},
		{"fraction", "2019-12-31T23:00:00.000Z"},
		{"compact offset", "2020-01-01T00:00:00+0100"},
		{"local date-time", "2020-01-01T00:00:00"},
		{"local date", "2020-01-01"},
		{"padded", "  2020-01-01  "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseISO8601(tt.in, Amsterdam)
			require.NoError(t, err)
			assert.True(t, want.Equal(got), "got %s", got)
			assert.Equal(t, Amsterdam, got.Location())
		})
	}
}

func TestParseISO8601_Invalid(t *testing.T) {
	for _, in := range []string{"foo", "01-01-2020", "2020-13-01"} {
		_, err := ParseISO8601(in, Amsterdam)
		assert.ErrorIs(t, err, ErrUnparsable, in)
	}
}

func TestParseISO8601_NilLocation(t *testing.T) {
	got, err := ParseISO8601("2020-06-01T12:00:00Z", nil)
	require.NoError(t, err)
	assert.Equal(t, 14, got.Hour())
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "", Format(time.Time{}))
	assert.Equal(t, "Wed, 01 Jan 2020 00:00:00 +0100", Format(time.Date(2020, 1, 1, 0, 0, 0, 0, Amsterdam)))
}
