package bot

import (
	"fmt"
	"strings"
	"time"

	"group-timetable-bot/internal/timetable"

	"github.com/samber/lo"
)

func renderEntry(entry timetable.ClassEntry) string {
	text := fmt.Sprintf("📘 %s @ %s", entry.Subject, entry.Room)
	if entry.Faculty != "" {
		text += fmt.Sprintf("\n    👨‍🏫 %s", entry.Faculty)
	}
	return text
}

func renderSlot(entry timetable.ClassEntry) string {
	return fmt.Sprintf("🕒 *%s-%s*\n%s", entry.Start, entry.End, renderEntry(entry))
}

// renderDay formats one weekday slot by slot, with a lunch line before the
// first afternoon class.
func renderDay(tt *timetable.WeekTimetable, day time.Weekday) string {
	entries := tt.Day(day)
	if len(entries) == 0 {
		return "— No classes —"
	}

	lunchFrom, lunchTo := tt.LunchWindow()

	var blocks []string
	lunchShown := false
	for _, entry := range entries {
		if !lunchShown && entry.Start >= lunchTo {
			blocks = append(blocks, fmt.Sprintf("🍴 *%s-%s: Lunch Break*", lunchFrom, lunchTo))
			lunchShown = true
		}
		blocks = append(blocks, renderSlot(entry))
	}

	return strings.Join(blocks, "\n\n")
}

func renderWeek(tt *timetable.WeekTimetable) string {
	days := []time.Weekday{
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
		time.Friday, time.Saturday, time.Sunday,
	}

	sections := lo.Map(days, func(day time.Weekday, _ int) string {
		return fmt.Sprintf("*%s*\n%s", shortDay(day), renderDay(tt, day))
	})

	return strings.Join(sections, "\n\n")
}

func renderUpcoming(next *timetable.Upcoming) string {
	if next.DaysAhead == 0 {
		return fmt.Sprintf("*Next %s*\n%s", next.Entry.Start, renderEntry(next.Entry))
	}
	return fmt.Sprintf("*Next:* %s %s\n%s", shortDay(next.Weekday), next.Entry.Start, renderEntry(next.Entry))
}

// renderResolution turns a resolver answer into the chat reply.
func renderResolution(tt *timetable.WeekTimetable, res timetable.Resolution) string {
	switch res.Kind {
	case timetable.StatusInClass:
		return fmt.Sprintf("*Current* 🕒 *%s-%s*\n%s",
			res.Current.Start, res.Current.End, renderEntry(*res.Current))

	case timetable.StatusBeforeDayStart:
		if res.Next == nil {
			return "No upcoming classes found."
		}
		return fmt.Sprintf("*First class %s*\n%s", res.Next.Entry.Start, renderEntry(res.Next.Entry))

	case timetable.StatusLunch:
		lunchFrom, lunchTo := tt.LunchWindow()
		text := fmt.Sprintf("🍴 *Lunch (%s-%s)*", lunchFrom, lunchTo)
		switch {
		case res.Next == nil:
			return text + "\n\nNo more classes today."
		case res.Next.DaysAhead == 0:
			return text + "\n\n" + renderUpcoming(res.Next)
		default:
			return text + "\n\nNo more classes today.\n\n" + renderUpcoming(res.Next)
		}

	case timetable.StatusGap:
		text := "*Free period*"
		if res.Previous != nil {
			text += fmt.Sprintf("\n%s ended at %s.", res.Previous.Subject, res.Previous.End)
		}
		if res.Next != nil {
			text += "\n\n" + renderUpcoming(res.Next)
		}
		return text

	case timetable.StatusAfterDayEnd:
		if res.Next == nil {
			return "No more classes today."
		}
		return "No more classes today.\n\n" + renderUpcoming(res.Next)

	default: // StatusNoClass
		if res.Next == nil {
			return "No classes today.\n\nNo upcoming classes found."
		}
		return "No classes today.\n\n" + renderUpcoming(res.Next)
	}
}

func shortDay(day time.Weekday) string {
	return day.String()[:3]
}
