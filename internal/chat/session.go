package chat

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"joyasbot/internal/model"
)

const (
	// El historial vive lo que dura la sesión de compra; nada persiste
	// más allá del TTL.
	sessionTTL   = 30 * time.Minute
	historyLimit = 10
)

// SessionStore guarda el historial de conversación por sesión en redis,
// con expiración y ventana acotada de mensajes.
type SessionStore struct {
	Client *redis.Client
}

func (s *SessionStore) Get(sessionID string) ([]model.ChatMessage, error) {
	ctx := context.Background()

	val, err := s.Client.Get(ctx, sessionID).Result()
	if err != nil {
		// Sesión nueva o redis caído: historial vacío, el turno continúa
		return nil, nil
	}

	var msgs []model.ChatMessage
	json.Unmarshal([]byte(val), &msgs)

	return msgs, nil
}

func (s *SessionStore) Append(sessionID string, msg model.ChatMessage) error {
	ctx := context.Background()

	history, _ := s.Get(sessionID)
	history = capHistory(append(history, msg))

	b, _ := json.Marshal(history)

	return s.Client.Set(ctx, sessionID, b, sessionTTL).Err()
}

// capHistory recorta el historial a los últimos historyLimit mensajes,
// descartando los más antiguos.
func capHistory(history []model.ChatMessage) []model.ChatMessage {
	if len(history) > historyLimit {
		return history[len(history)-historyLimit:]
	}
	return history
}
