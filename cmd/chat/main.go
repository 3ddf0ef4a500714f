package main

import (
	"log"
	"net/http"

	"github.com/redis/go-redis/v9"
	openai "github.com/sashabaranov/go-openai"

	"joyasbot/internal/chat"
	"joyasbot/internal/config"
	"joyasbot/internal/crawler"
	"joyasbot/internal/observability"
)

func main() {
	cfg := config.Load()

	if cfg.OpenAIKey == "" {
		log.Fatal("OPENAI_API_KEY no configurada")
	}

	observability.Start(cfg.MetricsPort)

	redisClient := redis.NewClient(&redis.Options{
		Addr: cfg.RedisURL,
	})

	sessionStore := &chat.SessionStore{
		Client: redisClient,
	}

	client := openai.NewClient(cfg.OpenAIKey)
	holder := &chat.CatalogHolder{}
	siteCrawler := crawler.New(cfg.BaseURL, cfg.MaxProducts)

	mux := http.NewServeMux()
	mux.Handle("/chat", chat.Handler(holder, sessionStore, client))
	mux.Handle("/crawl", chat.CrawlHandler(holder, siteCrawler))
	mux.Handle("/healthz", chat.HealthHandler(holder))

	log.Printf("Asistente de %s escuchando en :%s", cfg.BaseURL, cfg.HTTPPort)
	log.Fatal(http.ListenAndServe(":"+cfg.HTTPPort, mux))
}
