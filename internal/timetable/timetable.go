package timetable

import (
	"fmt"
	"sort"
	"time"

	"github.com/samber/lo"
)

// ClassEntry is one scheduled class occurrence. Immutable after load.
type ClassEntry struct {
	Start   Clock  `json:"start" mapstructure:"start"`
	End     Clock  `json:"end" mapstructure:"end"`
	Subject string `json:"subject" mapstructure:"subject"`
	Room    string `json:"room" mapstructure:"room"`
	Faculty string `json:"faculty,omitempty" mapstructure:"faculty"`
}

// DaySchedule is the ordered class list for one weekday, sorted by start
// time. Gaps between entries are implicit.
type DaySchedule []ClassEntry

func (d DaySchedule) validate(day time.Weekday) error {
	for i, entry := range d {
		if entry.Subject == "" {
			return fmt.Errorf("%s entry %d: empty subject", day, i)
		}
		if entry.End <= entry.Start {
			return fmt.Errorf("%s entry %d (%s): end %s is not after start %s",
				day, i, entry.Subject, entry.End, entry.Start)
		}
		if i > 0 && entry.Start < d[i-1].End {
			return fmt.Errorf("%s entry %d (%s): overlaps previous entry ending %s",
				day, i, entry.Subject, d[i-1].End)
		}
	}
	return nil
}

// WeekTimetable is the static weekly schedule of one group plus the
// configured day bounds and lunch window. Never mutated after load.
type WeekTimetable struct {
	days      map[time.Weekday]DaySchedule
	dayOpen   Clock
	dayClose  Clock
	lunchFrom Clock
	lunchTo   Clock
}

func NewWeekTimetable(days map[time.Weekday]DaySchedule, dayOpen, dayClose, lunchFrom, lunchTo Clock) (*WeekTimetable, error) {
	if lunchTo <= lunchFrom {
		return nil, fmt.Errorf("lunch window %s-%s is empty", lunchFrom, lunchTo)
	}
	if dayClose <= dayOpen {
		return nil, fmt.Errorf("day bounds %s-%s are empty", dayOpen, dayClose)
	}

	normalized := make(map[time.Weekday]DaySchedule, len(days))
	for day, entries := range days {
		sorted := make(DaySchedule, len(entries))
		copy(sorted, entries)
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })
		if err := sorted.validate(day); err != nil {
			return nil, err
		}
		normalized[day] = sorted
	}

	return &WeekTimetable{
		days:      normalized,
		dayOpen:   dayOpen,
		dayClose:  dayClose,
		lunchFrom: lunchFrom,
		lunchTo:   lunchTo,
	}, nil
}

// Day returns the stored sequence for one weekday. The returned slice is a
// copy, so callers cannot disturb the loaded timetable.
func (w *WeekTimetable) Day(day time.Weekday) DaySchedule {
	entries := w.days[day]
	out := make(DaySchedule, len(entries))
	copy(out, entries)
	return out
}

func (w *WeekTimetable) LunchWindow() (Clock, Clock) { return w.lunchFrom, w.lunchTo }
func (w *WeekTimetable) DayBounds() (Clock, Clock)   { return w.dayOpen, w.dayClose }

// Set maps group names to their weekly timetables.
type Set struct {
	groups map[string]*WeekTimetable
}

func NewSet(groups map[string]*WeekTimetable) (*Set, error) {
	if len(groups) == 0 {
		return nil, fmt.Errorf("timetable set has no groups")
	}
	return &Set{groups: groups}, nil
}

func (s *Set) Get(group string) (*WeekTimetable, bool) {
	tt, ok := s.groups[group]
	return tt, ok
}

func (s *Set) Has(group string) bool {
	_, ok := s.groups[group]
	return ok
}

// Groups returns all group names, sorted for stable display.
func (s *Set) Groups() []string {
	names := lo.Keys(s.groups)
	sort.Strings(names)
	return names
}
