package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWindow(t *testing.T) Window {
	t.Helper()
	loc := losAngeles(t)
	start := time.Date(2025, 7, 6, 19, 0, 0, 0, loc)
	return Window{Start: start, End: start.Add(time.Hour)}
}

func TestMaterialize(t *testing.T) {
	w := testWindow(t)

	atts := []Attachment{
		{URL: "https://drive.google.com/a", Title: "dinner_1.jpeg"},
		{URL: "https://drive.google.com/b", Title: "dinner_2.png"},
	}

	ev, err := Materialize("  dinner  ", "with sam", w, "America/Los_Angeles", atts)
	require.NoError(t, err)

	assert.Equal(t, "dinner", ev.Title)
	assert.Equal(t, "with sam", ev.Description)
	assert.Equal(t, "America/Los_Angeles", ev.TimeZone)
	assert.Equal(t, atts, ev.Attachments, "attachments carried through in order")
}

func TestMaterializeMissingTitle(t *testing.T) {
	w := testWindow(t)

	_, err := Materialize("", "desc", w, "America/Los_Angeles", nil)
	assert.ErrorIs(t, err, ErrMissingTitle)

	_, err = Materialize("   ", "desc", w, "America/Los_Angeles", nil)
	assert.ErrorIs(t, err, ErrMissingTitle)
}

func TestMaterializeDefaultsDescription(t *testing.T) {
	w := testWindow(t)

	ev, err := Materialize("standup", "", w, "America/Los_Angeles", nil)
	require.NoError(t, err)
	assert.Equal(t, "", ev.Description)
	assert.Empty(t, ev.Attachments)
}

// Formatting the materialized timestamps and parsing them back must
// reproduce the same instants, with the configured label preserved.
func TestMaterializeRoundTrip(t *testing.T) {
	w := testWindow(t)

	ev, err := Materialize("dinner", "", w, "America/Los_Angeles", nil)
	require.NoError(t, err)

	startWire := ev.Start.Format(time.RFC3339)
	endWire := ev.End.Format(time.RFC3339)
	assert.Equal(t, "2025-07-06T19:00:00-07:00", startWire)
	assert.Equal(t, "2025-07-06T20:00:00-07:00", endWire)

	reStart, err := time.Parse(time.RFC3339, startWire)
	require.NoError(t, err)
	reEnd, err := time.Parse(time.RFC3339, endWire)
	require.NoError(t, err)

	assert.True(t, reStart.Equal(ev.Start))
	assert.True(t, reEnd.Equal(ev.End))
	assert.Equal(t, "America/Los_Angeles", ev.TimeZone)
}
