package chat

import (
	"fmt"
	"testing"

	"joyasbot/internal/model"
)

func messages(n int) []model.ChatMessage {
	var msgs []model.ChatMessage
	for i := 0; i < n; i++ {
		msgs = append(msgs, model.ChatMessage{
			Role:    "user",
			Content: fmt.Sprintf("mensaje %d", i),
		})
	}
	return msgs
}

func TestCapHistoryBoundsWindow(t *testing.T) {
	tests := []struct {
		name      string
		in        int
		expected  int
		firstKept string
	}{
		{name: "vacío", in: 0, expected: 0},
		{name: "debajo del límite", in: 3, expected: 3, firstKept: "mensaje 0"},
		{name: "justo en el límite", in: historyLimit, expected: historyLimit, firstKept: "mensaje 0"},
		{name: "sobre el límite", in: historyLimit + 5, expected: historyLimit, firstKept: "mensaje 5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := capHistory(messages(tt.in))
			if len(got) != tt.expected {
				t.Fatalf("ventana de %d mensajes, want %d", len(got), tt.expected)
			}
			if tt.expected > 0 && got[0].Content != tt.firstKept {
				t.Fatalf("primer mensaje conservado = %q, want %q (se descartan los más antiguos)", got[0].Content, tt.firstKept)
			}
			// El más reciente siempre queda al final
			if tt.expected > 0 {
				want := fmt.Sprintf("mensaje %d", tt.in-1)
				if got[len(got)-1].Content != want {
					t.Fatalf("último mensaje = %q, want %q", got[len(got)-1].Content, want)
				}
			}
		})
	}
}
