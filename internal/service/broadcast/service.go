package broadcast_service

import (
	"log"
	"time"

	"group-timetable-bot/internal/models"
	"group-timetable-bot/internal/repository"
	"group-timetable-bot/internal/service"
)

type broadcastService struct {
	chatRepo repository.ChatRepository
	sender   service.Sender
}

func NewBroadcastService(chatRepo repository.ChatRepository, sender service.Sender) service.BroadcastService {
	return &broadcastService{
		chatRepo: chatRepo,
		sender:   sender,
	}
}

func (s *broadcastService) RememberChat(chatID int64, title, kind string) error {
	return s.chatRepo.Remember(&models.Chat{
		ChatID:    chatID,
		Title:     title,
		Kind:      kind,
		FirstSeen: time.Now(),
	})
}

func (s *broadcastService) Announce(text string) (int, int, error) {
	chats, err := s.chatRepo.GetAll()
	if err != nil {
		return 0, 0, err
	}

	sent, failed := 0, 0
	for _, chat := range chats {
		if err := s.sender.Send(chat.ChatID, "📣 "+text); err != nil {
			// One unreachable chat must not abort the rest of the fan-out.
			log.Printf("Error broadcasting to chat %d: %v", chat.ChatID, err)
			failed++
			continue
		}
		sent++
	}

	return sent, failed, nil
}
