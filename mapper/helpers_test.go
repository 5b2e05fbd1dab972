package mapper

import (
	"chat-mapper/domain"
	"chat-mapper/store"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

var at = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	s, err := store.OpenBadger("", log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return NewRegistry(s, log)
}

// restart simulates a new process on the same store: empty pool, same data.
func restart(r *Registry) *Registry {
	return NewRegistry(r.Store(), logs.GetLoggerFromLevel(slog.LevelDebug))
}

func newUser(name, phone string) *domain.User {
	return &domain.User{
		Name:         name,
		Surname:      "Doe",
		Email:        name + "@example.com",
		Phone:        phone,
		Password:     "Secret123456!",
		BirthDate:    time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC),
		Image:        "avatars/" + name + ".png",
		Greeting:     "Hey there, I'm using chat",
		Premium:      true,
		RegisteredAt: at,
	}
}

func sent(text string, minutes int) *domain.Message {
	return domain.NewMessage(text, domain.NoEmoticon, at.Add(time.Duration(minutes)*time.Minute), domain.MessageSent)
}

func received(text string, emoticon domain.Emoticon, minutes int) *domain.Message {
	return domain.NewMessage(text, emoticon, at.Add(time.Duration(minutes)*time.Minute), domain.MessageReceived)
}

func countEntities(t *testing.T, s store.EntityStore, typeName string) int {
	t.Helper()
	entities, err := s.FetchEntitiesByType(typeName)
	require.NoError(t, err)
	return len(entities)
}

func requireSameMessages(t *testing.T, expected, actual []*domain.Message) {
	t.Helper()
	req := require.New(t)
	req.Len(actual, len(expected))
	for i := range expected {
		req.Equal(expected[i].ID(), actual[i].ID())
		req.Equal(expected[i].Text(), actual[i].Text())
		req.Equal(expected[i].Emoticon(), actual[i].Emoticon())
		req.True(expected[i].At().Equal(actual[i].At()))
		req.Equal(expected[i].Kind(), actual[i].Kind())
	}
}

func ids[T identified](objects []T) []int64 {
	result := make([]int64, 0, len(objects))
	for _, o := range objects {
		result = append(result, o.ID())
	}
	return result
}
