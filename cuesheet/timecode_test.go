package cuesheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectorsToStamp(t *testing.T) {
	assert.Equal(t, "00:00:00", SectorsToStamp(0))
	assert.Equal(t, "00:00:74", SectorsToStamp(74))
	assert.Equal(t, "00:01:00", SectorsToStamp(75))
	assert.Equal(t, "01:00:00", SectorsToStamp(4500))
	assert.Equal(t, "01:01:00", SectorsToStamp(4575))
	assert.Equal(t, "32:28:61", SectorsToStamp(146161))
	// minutes widen past 99 instead of wrapping
	assert.Equal(t, "100:00:00", SectorsToStamp(450000))
}

func TestStampToSectors(t *testing.T) {
	n, err := StampToSectors("32:28:61")
	require.NoError(t, err)
	assert.Equal(t, int64(146161), n)

	// non-canonical field widths parse fine
	n, err = StampToSectors("1:2:3")
	require.NoError(t, err)
	assert.Equal(t, int64(4653), n)

	for _, bad := range []string{"", "12:34", "12:34:56:78", "12:xx:00", "a:b:c", "-1:00:00"} {
		_, err := StampToSectors(bad)
		assert.ErrorIs(t, err, ErrMalformedTimecode, "stamp %q", bad)
	}
}

func TestStampRoundTrip(t *testing.T) {
	for n := int64(0); n <= 1_000_000; n++ {
		back, err := StampToSectors(SectorsToStamp(n))
		if err != nil {
			t.Fatalf("sector %d: %v", n, err)
		}
		if back != n {
			t.Fatalf("sector %d round-tripped to %d", n, back)
		}
	}
}
