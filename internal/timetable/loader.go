package timetable

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
)

//go:embed timetable.json
var defaultTimetable []byte

type lunchDocument struct {
	From Clock `mapstructure:"from"`
	To   Clock `mapstructure:"to"`
}

type timetableDocument struct {
	DayOpen  Clock                              `mapstructure:"day_open"`
	DayClose Clock                              `mapstructure:"day_close"`
	Lunch    lunchDocument                      `mapstructure:"lunch"`
	Groups   map[string]map[string][]ClassEntry `mapstructure:"groups"`
}

// Load reads a timetable set from the JSON file at path, or from the
// embedded default data when path is empty.
func Load(path string) (*Set, error) {
	raw := defaultTimetable
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading timetable file: %w", err)
		}
		raw = data
	}

	set, err := Parse(raw)
	if err != nil {
		return nil, err
	}

	source := "embedded default"
	if path != "" {
		source = path
	}
	log.Printf("📅 Loaded timetable (%s): groups %v", source, set.Groups())
	return set, nil
}

// Parse decodes and validates a timetable JSON document.
func Parse(raw []byte) (*Set, error) {
	var document map[string]any
	if err := json.Unmarshal(raw, &document); err != nil {
		return nil, fmt.Errorf("decoding timetable json: %w", err)
	}

	var doc timetableDocument
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: clockDecodeHook,
		Result:     &doc,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(document); err != nil {
		return nil, fmt.Errorf("decoding timetable document: %w", err)
	}

	groups := make(map[string]*WeekTimetable, len(doc.Groups))
	for name, days := range doc.Groups {
		byWeekday := make(map[time.Weekday]DaySchedule, len(days))
		for dayName, entries := range days {
			day, err := parseWeekday(dayName)
			if err != nil {
				return nil, fmt.Errorf("group %s: %w", name, err)
			}
			byWeekday[day] = entries
		}

		tt, err := NewWeekTimetable(byWeekday, doc.DayOpen, doc.DayClose, doc.Lunch.From, doc.Lunch.To)
		if err != nil {
			return nil, fmt.Errorf("group %s: %w", name, err)
		}
		groups[name] = tt
	}

	return NewSet(groups)
}

// clockDecodeHook lets mapstructure turn "HH:MM" strings into Clock values.
func clockDecodeHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to != reflect.TypeOf(Clock(0)) {
		return data, nil
	}
	return ParseClock(data.(string))
}

func parseWeekday(name string) (time.Weekday, error) {
	switch strings.ToLower(name) {
	case "monday":
		return time.Monday, nil
	case "tuesday":
		return time.Tuesday, nil
	case "wednesday":
		return time.Wednesday, nil
	case "thursday":
		return time.Thursday, nil
	case "friday":
		return time.Friday, nil
	case "saturday":
		return time.Saturday, nil
	case "sunday":
		return time.Sunday, nil
	default:
		return 0, fmt.Errorf("unknown weekday %q", name)
	}
}
