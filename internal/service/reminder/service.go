package reminder_service

import (
	"context"
	"fmt"
	"log"
	"time"

	"group-timetable-bot/internal/models"
	"group-timetable-bot/internal/repository"
	"group-timetable-bot/internal/service"
	"group-timetable-bot/internal/timetable"
)

// reminderService polls the timetable once a minute and notifies every
// subscriber whose next class starts within the configured lead time.
// Delivery is idempotent: the subscriber's last_notified_key records which
// class start was already announced, so repeated polls inside the same
// pre-class window send nothing.
type reminderService struct {
	subscriberRepo repository.SubscriberRepository
	resolver       *timetable.Resolver
	sender         service.Sender
	loc            *time.Location
	lead           time.Duration
	interval       time.Duration
	defaultGroup   string
	now            func() time.Time
}

func NewReminderService(
	subscriberRepo repository.SubscriberRepository,
	resolver *timetable.Resolver,
	sender service.Sender,
	loc *time.Location,
	lead time.Duration,
	interval time.Duration,
	defaultGroup string,
) service.ReminderService {
	return &reminderService{
		subscriberRepo: subscriberRepo,
		resolver:       resolver,
		sender:         sender,
		loc:            loc,
		lead:           lead,
		interval:       interval,
		defaultGroup:   defaultGroup,
		now:            func() time.Time { return time.Now().In(loc) },
	}
}

func (s *reminderService) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	log.Printf("⏰ Reminder poller started (lead %s, every %s)", s.lead, s.interval)

	for {
		select {
		case <-ctx.Done():
			log.Println("Reminder poller stopped")
			return
		case <-ticker.C:
			s.sweep(s.now())
		}
	}
}

// sweep notifies each subscriber independently; one failing subscriber never
// affects the others.
func (s *reminderService) sweep(now time.Time) {
	subscribers, err := s.subscriberRepo.GetAll()
	if err != nil {
		log.Printf("Error loading subscribers: %v", err)
		return
	}

	for _, subscriber := range subscribers {
		if err := s.notify(subscriber, now); err != nil {
			log.Printf("Error reminding chat %d: %v", subscriber.ChatID, err)
		}
	}
}

func (s *reminderService) notify(subscriber *models.Subscriber, now time.Time) error {
	group := subscriber.GroupName
	if group == "" {
		group = s.defaultGroup
	}

	next, err := s.resolver.NextFrom(group, now.Weekday(), timetable.ClockOf(now))
	if err != nil || next == nil {
		return err
	}

	startsAt := next.Entry.Start.On(now.AddDate(0, 0, next.DaysAhead), s.loc)
	until := startsAt.Sub(now)
	if until <= 0 || until > s.lead {
		return nil
	}

	key := reminderKey(startsAt, next.Entry)
	if subscriber.LastNotifiedKey == key {
		return nil
	}

	text := fmt.Sprintf("⏰ *Reminder* (%s)\n📘 %s @ %s", next.Entry.Start, next.Entry.Subject, next.Entry.Room)
	if next.Entry.Faculty != "" {
		text += fmt.Sprintf("\n👨‍🏫 %s", next.Entry.Faculty)
	}

	// Marker is advanced only after a successful send so the next poll
	// retries a failed delivery.
	if err := s.sender.Send(subscriber.ChatID, text); err != nil {
		return err
	}
	return s.subscriberRepo.SetLastNotified(subscriber.ChatID, key)
}

func reminderKey(startsAt time.Time, entry timetable.ClassEntry) string {
	return fmt.Sprintf("%s|%s|%s", startsAt.Format("2006-01-02"), entry.Start, entry.Subject)
}
