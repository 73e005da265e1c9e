package subscriber_service

import (
	"time"

	"group-timetable-bot/internal/models"
	"group-timetable-bot/internal/repository"
	"group-timetable-bot/internal/service"
)

type subscriberService struct {
	subscriberRepo repository.SubscriberRepository
}

func NewSubscriberService(subscriberRepo repository.SubscriberRepository) service.SubscriberService {
	return &subscriberService{
		subscriberRepo: subscriberRepo,
	}
}

func (s *subscriberService) Subscribe(chatID int64, groupName string) (bool, error) {
	return s.subscriberRepo.Upsert(&models.Subscriber{
		ChatID:       chatID,
		GroupName:    groupName,
		SubscribedAt: time.Now(),
	})
}

func (s *subscriberService) Unsubscribe(chatID int64) (bool, error) {
	return s.subscriberRepo.Delete(chatID)
}
