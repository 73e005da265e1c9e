package timetable

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testResolver builds a small week: Monday has a morning block, a pre-lunch
// gap and an afternoon lab; Tuesday one morning class; Wednesday two classes
// around an ordinary mid-morning gap; the rest of the week is empty.
func testResolver(t *testing.T) *Resolver {
	t.Helper()

	days := map[time.Weekday]DaySchedule{
		time.Monday: {
			{Start: NewClock(9, 30), End: NewClock(10, 30), Subject: "DMDW", Room: "BS-102"},
			{Start: NewClock(10, 30), End: NewClock(11, 30), Subject: "OS", Room: "BS-102"},
			{Start: NewClock(11, 30), End: NewClock(12, 30), Subject: "AIML", Room: "BS-102"},
			{Start: NewClock(14, 30), End: NewClock(17, 30), Subject: "DMDW LAB", Room: "MBA Gallary"},
		},
		time.Tuesday: {
			{Start: NewClock(9, 30), End: NewClock(10, 30), Subject: "OS", Room: "BS-104"},
		},
		time.Wednesday: {
			{Start: NewClock(9, 30), End: NewClock(10, 30), Subject: "SDE", Room: "Chutti"},
			{Start: NewClock(11, 30), End: NewClock(12, 30), Subject: "CDT", Room: "Chutti"},
		},
	}

	tt, err := NewWeekTimetable(days, NewClock(9, 30), NewClock(17, 30), NewClock(13, 30), NewClock(14, 30))
	require.NoError(t, err)

	set, err := NewSet(map[string]*WeekTimetable{"Group-7": tt})
	require.NoError(t, err)

	return NewResolver(set)
}

// emptyResolver has a group whose whole week has no classes at all.
func emptyResolver(t *testing.T) *Resolver {
	t.Helper()

	tt, err := NewWeekTimetable(nil, NewClock(9, 30), NewClock(17, 30), NewClock(13, 30), NewClock(14, 30))
	require.NoError(t, err)

	set, err := NewSet(map[string]*WeekTimetable{"Group-7": tt})
	require.NoError(t, err)

	return NewResolver(set)
}

func TestResolveBeforeDayStart(t *testing.T) {
	r := testResolver(t)

	res, err := r.Resolve("Group-7", time.Monday, NewClock(9, 0))
	require.NoError(t, err)

	assert.Equal(t, StatusBeforeDayStart, res.Kind)
	require.NotNil(t, res.Next)
	assert.Equal(t, "DMDW", res.Next.Entry.Subject)
	assert.Equal(t, 0, res.Next.DaysAhead)
}

func TestResolveInClass(t *testing.T) {
	r := testResolver(t)

	res, err := r.Resolve("Group-7", time.Monday, NewClock(9, 45))
	require.NoError(t, err)

	assert.Equal(t, StatusInClass, res.Kind)
	require.NotNil(t, res.Current)
	assert.Equal(t, "DMDW", res.Current.Subject)
}

// A query exactly at a slot boundary belongs to the class starting there,
// not the one ending there.
func TestResolveBoundaryBelongsToStartingClass(t *testing.T) {
	r := testResolver(t)

	res, err := r.Resolve("Group-7", time.Monday, NewClock(10, 30))
	require.NoError(t, err)

	assert.Equal(t, StatusInClass, res.Kind)
	require.NotNil(t, res.Current)
	assert.Equal(t, "OS", res.Current.Subject)
}

func TestResolveLunch(t *testing.T) {
	r := testResolver(t)

	res, err := r.Resolve("Group-7", time.Monday, NewClock(14, 0))
	require.NoError(t, err)

	assert.Equal(t, StatusLunch, res.Kind)
	require.NotNil(t, res.Next)
	assert.Equal(t, "DMDW LAB", res.Next.Entry.Subject)
	assert.Equal(t, 0, res.Next.DaysAhead)
}

// Between AIML (ends 12:30) and lunch (13:30) Monday has an ordinary gap.
func TestResolveGapBeforeLunchWindow(t *testing.T) {
	r := testResolver(t)

	res, err := r.Resolve("Group-7", time.Monday, NewClock(12, 45))
	require.NoError(t, err)

	assert.Equal(t, StatusGap, res.Kind)
	require.NotNil(t, res.Previous)
	assert.Equal(t, "AIML", res.Previous.Subject)
	require.NotNil(t, res.Next)
	assert.Equal(t, "DMDW LAB", res.Next.Entry.Subject)
}

// Ordinary gap policy: both the class that just ended and the next one are
// reported.
func TestResolveOrdinaryGap(t *testing.T) {
	r := testResolver(t)

	res, err := r.Resolve("Group-7", time.Wednesday, NewClock(10, 45))
	require.NoError(t, err)

	assert.Equal(t, StatusGap, res.Kind)
	require.NotNil(t, res.Previous)
	assert.Equal(t, "SDE", res.Previous.Subject)
	require.NotNil(t, res.Next)
	assert.Equal(t, "CDT", res.Next.Entry.Subject)
	assert.Equal(t, 0, res.Next.DaysAhead)
}

func TestResolveAfterDayEndRollsToNextDay(t *testing.T) {
	r := testResolver(t)

	res, err := r.Resolve("Group-7", time.Monday, NewClock(18, 0))
	require.NoError(t, err)

	assert.Equal(t, StatusAfterDayEnd, res.Kind)
	require.NotNil(t, res.Next)
	assert.Equal(t, "OS", res.Next.Entry.Subject)
	assert.Equal(t, time.Tuesday, res.Next.Weekday)
	assert.Equal(t, 1, res.Next.DaysAhead)
}

// Rolling over from Wednesday evening skips the empty Thursday through
// Sunday and lands on Monday.
func TestResolveAfterDayEndSkipsEmptyDays(t *testing.T) {
	r := testResolver(t)

	res, err := r.Resolve("Group-7", time.Wednesday, NewClock(18, 0))
	require.NoError(t, err)

	assert.Equal(t, StatusAfterDayEnd, res.Kind)
	require.NotNil(t, res.Next)
	assert.Equal(t, "DMDW", res.Next.Entry.Subject)
	assert.Equal(t, time.Monday, res.Next.Weekday)
	assert.Equal(t, 5, res.Next.DaysAhead)
}

func TestResolveEmptyDayStillFindsNext(t *testing.T) {
	r := testResolver(t)

	res, err := r.Resolve("Group-7", time.Saturday, NewClock(10, 0))
	require.NoError(t, err)

	assert.Equal(t, StatusNoClass, res.Kind)
	require.NotNil(t, res.Next)
	assert.Equal(t, time.Monday, res.Next.Weekday)
	assert.Equal(t, 2, res.Next.DaysAhead)
}

func TestResolveNoClassWhenLookaheadExhausted(t *testing.T) {
	r := emptyResolver(t)

	res, err := r.Resolve("Group-7", time.Saturday, NewClock(10, 0))
	require.NoError(t, err)

	assert.Equal(t, StatusNoClass, res.Kind)
	assert.Nil(t, res.Next)
}

func TestResolveUnknownGroup(t *testing.T) {
	r := testResolver(t)

	_, err := r.Resolve("Group-42", time.Monday, NewClock(9, 0))
	assert.ErrorIs(t, err, ErrUnknownGroup)
}

func TestNextFromSkipsClassStartingNow(t *testing.T) {
	r := testResolver(t)

	next, err := r.NextFrom("Group-7", time.Monday, NewClock(9, 30))
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, "OS", next.Entry.Subject)
}

func TestNextFromExhausted(t *testing.T) {
	r := emptyResolver(t)

	next, err := r.NextFrom("Group-7", time.Monday, NewClock(9, 0))
	require.NoError(t, err)
	assert.Nil(t, next)
}

func TestFullDayIsIdempotent(t *testing.T) {
	r := testResolver(t)

	first, err := r.FullDay("Group-7", time.Monday)
	require.NoError(t, err)
	second, err := r.FullDay("Group-7", time.Monday)
	require.NoError(t, err)

	assert.Equal(t, first, second)

	// Mutating a returned schedule must not leak into the stored one.
	first[0].Subject = "mutated"
	third, err := r.FullDay("Group-7", time.Monday)
	require.NoError(t, err)
	assert.Equal(t, second, third)
}
