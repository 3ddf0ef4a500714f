package chat

import (
	"context"
	"log"

	openai "github.com/sashabaranov/go-openai"

	"joyasbot/internal/model"
)

func CallLLM(
	client *openai.Client,
	systemPrompt string,
	history []model.ChatMessage,
	userMessage string,
) (string, error) {

	var messages []openai.ChatCompletionMessage

	// system
	messages = append(messages,
		openai.ChatCompletionMessage{
			Role:    "system",
			Content: systemPrompt,
		},
	)

	// historial
	for _, m := range history {
		messages = append(messages,
			openai.ChatCompletionMessage{
				Role:    m.Role,
				Content: m.Content,
			},
		)
	}

	// nueva pregunta
	messages = append(messages,
		openai.ChatCompletionMessage{
			Role:    "user",
			Content: userMessage,
		},
	)

	resp, err := client.CreateChatCompletion(
		context.Background(),
		openai.ChatCompletionRequest{
			Model:       openai.GPT4oMini,
			Messages:    messages,
			Temperature: 0.8,
			MaxTokens:   800,
		},
	)
	if err != nil {
		return "", err
	}

	answer := resp.Choices[0].Message.Content
	log.Printf("[Chat] Respuesta de la IA: %d caracteres", len(answer))
	return answer, nil
}
