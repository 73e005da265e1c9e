package timetable

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	set, err := Load("")
	require.NoError(t, err)

	tt, ok := set.Get("Group-7")
	require.True(t, ok)

	monday := tt.Day(time.Monday)
	require.NotEmpty(t, monday)
	assert.Equal(t, "DMDW", monday[0].Subject)
	assert.Equal(t, NewClock(9, 30), monday[0].Start)
	assert.Equal(t, "Dr. Bichitrananda Behera (CSE)", monday[0].Faculty)

	assert.Empty(t, tt.Day(time.Saturday))
	assert.Empty(t, tt.Day(time.Sunday))

	lunchFrom, lunchTo := tt.LunchWindow()
	assert.Equal(t, NewClock(13, 30), lunchFrom)
	assert.Equal(t, NewClock(14, 30), lunchTo)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/timetable.json")
	assert.ErrorContains(t, err, "reading timetable file")
}

func TestParseDecodesClocks(t *testing.T) {
	raw := []byte(`{
		"day_open": "09:30",
		"day_close": "17:30",
		"lunch": {"from": "13:30", "to": "14:30"},
		"groups": {
			"Group-1": {
				"monday": [
					{"start": "09:30", "end": "10:30", "subject": "OS", "room": "BS-104"}
				]
			}
		}
	}`)

	set, err := Parse(raw)
	require.NoError(t, err)

	tt, ok := set.Get("Group-1")
	require.True(t, ok)

	monday := tt.Day(time.Monday)
	require.Len(t, monday, 1)
	assert.Equal(t, NewClock(9, 30), monday[0].Start)
	assert.Equal(t, NewClock(10, 30), monday[0].End)
}

func TestParseRejectsBadClock(t *testing.T) {
	raw := []byte(`{
		"day_open": "09:30",
		"day_close": "17:30",
		"lunch": {"from": "13:30", "to": "14:30"},
		"groups": {
			"Group-1": {
				"monday": [
					{"start": "25:99", "end": "10:30", "subject": "OS", "room": "BS-104"}
				]
			}
		}
	}`)

	_, err := Parse(raw)
	assert.Error(t, err)
}

func TestParseRejectsUnknownWeekday(t *testing.T) {
	raw := []byte(`{
		"day_open": "09:30",
		"day_close": "17:30",
		"lunch": {"from": "13:30", "to": "14:30"},
		"groups": {
			"Group-1": {
				"someday": []
			}
		}
	}`)

	_, err := Parse(raw)
	assert.ErrorContains(t, err, "unknown weekday")
}

func TestParseRejectsOverlappingEntries(t *testing.T) {
	raw := []byte(`{
		"day_open": "09:30",
		"day_close": "17:30",
		"lunch": {"from": "13:30", "to": "14:30"},
		"groups": {
			"Group-1": {
				"monday": [
					{"start": "09:30", "end": "11:00", "subject": "OS", "room": "BS-104"},
					{"start": "10:30", "end": "11:30", "subject": "WT", "room": "BS-104"}
				]
			}
		}
	}`)

	_, err := Parse(raw)
	assert.ErrorContains(t, err, "overlaps")
}

func TestParseRejectsInvalidJSON(t *testing.T) {
	_, err := Parse([]byte("not json"))
	assert.ErrorContains(t, err, "decoding timetable json")
}
