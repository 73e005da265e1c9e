package timetable

import (
	"fmt"
	"time"
)

// StatusKind classifies what a moment in time means against the timetable.
type StatusKind int

const (
	StatusInClass StatusKind = iota
	StatusBeforeDayStart
	StatusLunch
	StatusGap
	StatusAfterDayEnd
	StatusNoClass
)

func (k StatusKind) String() string {
	switch k {
	case StatusInClass:
		return "in_class"
	case StatusBeforeDayStart:
		return "before_day_start"
	case StatusLunch:
		return "lunch"
	case StatusGap:
		return "gap"
	case StatusAfterDayEnd:
		return "after_day_end"
	case StatusNoClass:
		return "no_class"
	default:
		return "unknown"
	}
}

// Upcoming is a class found by the forward lookahead.
type Upcoming struct {
	Entry     ClassEntry
	Weekday   time.Weekday
	DaysAhead int
}

// Resolution is the answer to "what is happening at this moment".
//
// Current is set for StatusInClass. Previous is set for StatusGap and names
// the class that just ended. Next is set whenever the lookahead found an
// upcoming class; for StatusNoClass a nil Next means the lookahead was
// exhausted.
type Resolution struct {
	Kind     StatusKind
	Current  *ClassEntry
	Previous *ClassEntry
	Next     *Upcoming
}

// LookaheadDays bounds the forward search for the next class.
const LookaheadDays = 7

// Resolver answers point-in-time queries against a timetable set.
type Resolver struct {
	set *Set
}

func NewResolver(set *Set) *Resolver {
	return &Resolver{set: set}
}

var ErrUnknownGroup = fmt.Errorf("unknown group")

// FullDay returns the stored schedule of one weekday.
func (r *Resolver) FullDay(group string, day time.Weekday) (DaySchedule, error) {
	tt, ok := r.set.Get(group)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownGroup, group)
	}
	return tt.Day(day), nil
}

// NextFrom finds the first class strictly after `at` on `day`, scanning
// forward up to LookaheadDays and skipping empty days. Returns nil when the
// lookahead is exhausted.
func (r *Resolver) NextFrom(group string, day time.Weekday, at Clock) (*Upcoming, error) {
	tt, ok := r.set.Get(group)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownGroup, group)
	}

	for shift := 0; shift < LookaheadDays; shift++ {
		current := time.Weekday((int(day) + shift) % 7)
		for _, entry := range tt.Day(current) {
			if shift == 0 && entry.Start <= at {
				continue
			}
			found := entry
			return &Upcoming{Entry: found, Weekday: current, DaysAhead: shift}, nil
		}
	}
	return nil, nil
}

// Resolve determines what is happening for group at the given weekday and
// wall-clock time. Entry intervals are half-open [start, end): a query at an
// exact boundary belongs to the class starting there.
func (r *Resolver) Resolve(group string, day time.Weekday, at Clock) (Resolution, error) {
	tt, ok := r.set.Get(group)
	if !ok {
		return Resolution{}, fmt.Errorf("%w: %s", ErrUnknownGroup, group)
	}

	entries := tt.Day(day)
	next, err := r.NextFrom(group, day, at)
	if err != nil {
		return Resolution{}, err
	}

	// Day without classes: NoClass, with Next carrying the lookahead hit
	// (if any) so the bot can still point at the next school day.
	if len(entries) == 0 {
		return Resolution{Kind: StatusNoClass, Next: next}, nil
	}

	if at < entries[0].Start {
		return Resolution{Kind: StatusBeforeDayStart, Next: next}, nil
	}

	for i := range entries {
		if entries[i].Start <= at && at < entries[i].End {
			entry := entries[i]
			return Resolution{Kind: StatusInClass, Current: &entry, Next: next}, nil
		}
	}

	lunchFrom, lunchTo := tt.LunchWindow()
	if lunchFrom <= at && at < lunchTo {
		return Resolution{Kind: StatusLunch, Next: next}, nil
	}

	last := entries[len(entries)-1]
	if at >= last.End {
		return Resolution{Kind: StatusAfterDayEnd, Next: next}, nil
	}

	// Ordinary gap between two classes: report the class that just ended
	// together with the next one.
	var previous *ClassEntry
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].End <= at {
			ended := entries[i]
			previous = &ended
			break
		}
	}
	return Resolution{Kind: StatusGap, Previous: previous, Next: next}, nil
}
