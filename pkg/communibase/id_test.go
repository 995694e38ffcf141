package communibase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validID = "50efe68c88949f3b63000017"

func TestParseID_RoundTrip(t *testing.T) {
	id, err := ParseID(validID)
	require.NoError(t, err)
	assert.Equal(t, validID, id.String())
	assert.False(t, id.IsZero())
}

func TestParseID_Invalid(t *testing.T) {
	for _, s := range []string{"", "foo", "50efe68c88949f3b6300001", "50efe68c88949f3b6300001z"} {
		_, err := ParseID(s)
		assert.True(t, errors.Is(err, ErrInvalidID), "input %q", s)
	}
}

func TestMustParseID_Panics(t *testing.T) {
	assert.Panics(t, func() { MustParseID("nope") })
}

func TestIDsFromStrings(t *testing.T) {
	in := []string{"5fa12ded66bd790136bbcd39", "5644681df29478ca0051340f", "5fa12ded66bd790136bbcd39"}
	c, err := IDsFromStrings(in)
	require.NoError(t, err)
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, in, c.Strings())
	assert.True(t, c.Contains(MustParseID("5644681df29478ca0051340f")))
	assert.False(t, c.Contains(MustParseID(validID)))
}

func TestIDsFromStrings_RejectsInvalid(t *testing.T) {
	_, err := IDsFromStrings([]string{validID, "bad"})
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestIDCollection_Empty(t *testing.T) {
	c, err := IDsFromStrings(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.Strings())
}

func TestNewIDCollection_Copies(t *testing.T) {
	ids := []ID{MustParseID(validID)}
	c := NewIDCollection(ids...)
	ids[0] = ID{}
	assert.Equal(t, []string{validID}, c.Strings())

	out := c.IDs()
	out[0] = ID{}
	assert.Equal(t, []string{validID}, c.Strings())
}

func TestParseID_KeepsCase(t *testing.T) {
	upper, err := ParseID("50EFE68C88949F3B63000017")
	require.NoError(t, err)
	assert.Equal(t, "50EFE68C88949F3B63000017", upper.String())

	lower := MustParseID(validID)
	assert.True(t, upper.Equal(lower))
	assert.True(t, lower.Matches("50EFE68C88949F3B63000017"))
	assert.False(t, lower.Matches("5fa12ded66bd790136bbcd39"))
	assert.False(t, lower.Matches("garbage"))

	c := NewIDCollection(upper)
	assert.True(t, c.Contains(lower))
}

func TestID_ZeroValueString(t *testing.T) {
	assert.Equal(t, "000000000000000000000000", ID{}.String())
	assert.True(t, ID{}.IsZero())
}
