package web

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"group-timetable-bot/internal/timetable"
)

// Handler exposes a small read-only JSON API next to the bot: a health
// probe and timetable lookups.
type Handler struct {
	resolver     *timetable.Resolver
	timetables   *timetable.Set
	defaultGroup string
	loc          *time.Location
}

func NewHandler(resolver *timetable.Resolver, timetables *timetable.Set, defaultGroup string, loc *time.Location) *Handler {
	return &Handler{
		resolver:     resolver,
		timetables:   timetables,
		defaultGroup: defaultGroup,
		loc:          loc,
	}
}

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/healthz", h.Health)
	mux.HandleFunc("/api/groups", h.Groups)
	mux.HandleFunc("/api/timetable", h.Timetable)
	mux.HandleFunc("/api/now", h.Now)
}

func (h *Handler) Groups(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"default": h.defaultGroup,
		"groups":  h.timetables.Groups(),
	})
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// Timetable returns the full schedule of one day:
// GET /api/timetable?group=Group-7&day=monday
func (h *Handler) Timetable(w http.ResponseWriter, r *http.Request) {
	group := h.group(r)

	weekday := time.Now().In(h.loc).Weekday()
	if dayStr := r.URL.Query().Get("day"); dayStr != "" {
		parsed, ok := parseWeekday(dayStr)
		if !ok {
			writeError(w, http.StatusBadRequest, "unknown day: "+dayStr)
			return
		}
		weekday = parsed
	}

	entries, err := h.resolver.FullDay(group, weekday)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	writeJSON(w, map[string]any{
		"group":   group,
		"day":     strings.ToLower(weekday.String()),
		"entries": entries,
	})
}

// Now returns the current resolution for a group:
// GET /api/now?group=Group-7
func (h *Handler) Now(w http.ResponseWriter, r *http.Request) {
	group := h.group(r)
	now := time.Now().In(h.loc)

	res, err := h.resolver.Resolve(group, now.Weekday(), timetable.ClockOf(now))
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	payload := map[string]any{
		"group":  group,
		"status": res.Kind.String(),
	}
	if res.Current != nil {
		payload["current"] = res.Current
	}
	if res.Previous != nil {
		payload["previous"] = res.Previous
	}
	if res.Next != nil {
		payload["next"] = map[string]any{
			"entry":      res.Next.Entry,
			"weekday":    strings.ToLower(res.Next.Weekday.String()),
			"days_ahead": res.Next.DaysAhead,
		}
	}

	writeJSON(w, payload)
}

func (h *Handler) group(r *http.Request) string {
	if group := r.URL.Query().Get("group"); group != "" {
		return group
	}
	return h.defaultGroup
}

func parseWeekday(name string) (time.Weekday, bool) {
	for day := time.Sunday; day <= time.Saturday; day++ {
		if strings.EqualFold(name, day.String()) {
			return day, true
		}
	}
	return 0, false
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
