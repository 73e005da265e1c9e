package broadcast_service

import (
	"fmt"
	"testing"

	"group-timetable-bot/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChatRepo struct {
	chats []*models.Chat
	err   error
}

func (r *fakeChatRepo) Remember(chat *models.Chat) error {
	for _, existing := range r.chats {
		if existing.ChatID == chat.ChatID {
			existing.Title = chat.Title
			existing.Kind = chat.Kind
			return nil
		}
	}
	r.chats = append(r.chats, chat)
	return nil
}

func (r *fakeChatRepo) GetAll() ([]*models.Chat, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.chats, nil
}

type fakeSender struct {
	sent    map[int64][]string
	failFor map[int64]error
}

func newFakeSender() *fakeSender {
	return &fakeSender{sent: make(map[int64][]string), failFor: make(map[int64]error)}
}

func (s *fakeSender) Send(chatID int64, text string) error {
	if err := s.failFor[chatID]; err != nil {
		return err
	}
	s.sent[chatID] = append(s.sent[chatID], text)
	return nil
}

func TestAnnounceFansOutToAllChats(t *testing.T) {
	repo := &fakeChatRepo{chats: []*models.Chat{
		{ChatID: 1}, {ChatID: 2}, {ChatID: 3},
	}}
	sender := newFakeSender()
	svc := NewBroadcastService(repo, sender)

	sent, failed, err := svc.Announce("Exam moved to Friday")
	require.NoError(t, err)
	assert.Equal(t, 3, sent)
	assert.Equal(t, 0, failed)
	assert.Equal(t, "📣 Exam moved to Friday", sender.sent[1][0])
}

// A single unreachable chat must not abort delivery to the rest.
func TestAnnouncePartialFailure(t *testing.T) {
	repo := &fakeChatRepo{chats: []*models.Chat{
		{ChatID: 1}, {ChatID: 2}, {ChatID: 3},
	}}
	sender := newFakeSender()
	sender.failFor[2] = fmt.Errorf("bot was blocked by the user")
	svc := NewBroadcastService(repo, sender)

	sent, failed, err := svc.Announce("hello")
	require.NoError(t, err)
	assert.Equal(t, 2, sent)
	assert.Equal(t, 1, failed)
	assert.Len(t, sender.sent[1], 1)
	assert.Empty(t, sender.sent[2])
	assert.Len(t, sender.sent[3], 1)
}

func TestAnnounceListError(t *testing.T) {
	repo := &fakeChatRepo{err: fmt.Errorf("db down")}
	svc := NewBroadcastService(repo, newFakeSender())

	_, _, err := svc.Announce("hello")
	assert.Error(t, err)
}

func TestRememberChatUpserts(t *testing.T) {
	repo := &fakeChatRepo{}
	svc := NewBroadcastService(repo, newFakeSender())

	require.NoError(t, svc.RememberChat(42, "Group-7 chat", "group"))
	require.NoError(t, svc.RememberChat(42, "Renamed chat", "group"))

	require.Len(t, repo.chats, 1)
	assert.Equal(t, "Renamed chat", repo.chats[0].Title)
}
