package chat

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"
	openai "github.com/sashabaranov/go-openai"

	"joyasbot/internal/crawler"
	"joyasbot/internal/model"
	"joyasbot/internal/observability"
)

const apologyMessage = "Lo siento, hay un problema técnico en este momento. Por favor intenta nuevamente en unos minutos."

type ChatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

type ChatResponse struct {
	SessionID string `json:"session_id"`
	Answer    string `json:"answer"`
}

type CrawlResponse struct {
	Products   int      `json:"products"`
	Categories []string `json:"categories"`
}

// HistoryStore es el historial de conversación por sesión; *SessionStore
// lo implementa sobre redis.
type HistoryStore interface {
	Get(sessionID string) ([]model.ChatMessage, error)
	Append(sessionID string, msg model.ChatMessage) error
}

// Handler atiende un turno de chat fundamentado en el catálogo vigente.
// Sin catálogo no hay llamada de generación: se responde 409 y el
// cliente debe disparar /crawl primero.
func Handler(
	holder *CatalogHolder,
	session HistoryStore,
	client *openai.Client,
) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		var req ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Message == "" {
			http.Error(w, "mensaje requerido", http.StatusBadRequest)
			return
		}
		if req.SessionID == "" {
			req.SessionID = uuid.New().String()
		}

		catalogText, err := RenderCatalog(holder.Get())
		if err != nil {
			observability.ChatTurns.WithLabelValues("ungrounded").Inc()
			http.Error(w, "debes escanear el sitio web primero", http.StatusConflict)
			return
		}

		history, _ := session.Get(req.SessionID)

		answer, err := CallLLM(
			client,
			SystemPrompt(holder.Get().CompanyInfo, catalogText),
			history,
			req.Message,
		)
		if err != nil {
			// El fallo del colaborador nunca tumba la sesión; se degrada
			// a una disculpa visible para el usuario.
			observability.ChatTurns.WithLabelValues("error").Inc()
			log.Printf("[Chat] Error del proveedor de IA: %v", err)
			answer = apologyMessage
		} else {
			observability.ChatTurns.WithLabelValues("ok").Inc()
		}

		// guarda historial
		session.Append(req.SessionID, model.ChatMessage{
			Role:    "user",
			Content: req.Message,
		})
		session.Append(req.SessionID, model.ChatMessage{
			Role:    "assistant",
			Content: answer,
		})

		json.NewEncoder(w).Encode(ChatResponse{
			SessionID: req.SessionID,
			Answer:    answer,
		})
	}
}

// CrawlHandler dispara un escaneo completo y, solo si produce catálogo,
// reemplaza el snapshot. Un escaneo fallido deja el catálogo anterior
// intacto y reporta el error.
func CrawlHandler(holder *CatalogHolder, c *crawler.Crawler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}

		catalog, err := c.Run(func(done, total int) {
			if done%10 == 0 || done == total {
				log.Printf("[Crawler] Escaneando producto %d de %d...", done, total)
			}
		})
		if err != nil {
			log.Printf("[Crawler] Escaneo fallido: %v", err)
			http.Error(w, "error durante el escaneo: "+err.Error(), http.StatusBadGateway)
			return
		}

		holder.Set(catalog)
		json.NewEncoder(w).Encode(CrawlResponse{
			Products:   len(catalog.Products),
			Categories: catalog.Categories,
		})
	}
}

// HealthHandler expone el estado del snapshot para monitoreo.
func HealthHandler(holder *CatalogHolder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		catalog := holder.Get()
		status := map[string]any{"ready": catalog != nil}
		if catalog != nil {
			status["products"] = len(catalog.Products)
		}
		json.NewEncoder(w).Encode(status)
	}
}
