package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	"joyasbot/internal/config"
	"joyasbot/internal/crawler"
)

// go run cmd/crawler/main.go -output=productos.json
func main() {
	output := flag.String("output", "", "Ruta del archivo JSON de salida (opcional)")
	base := flag.String("base", "", "URL base del sitio (default: config)")
	flag.Parse()

	cfg := config.Load()
	if *base != "" {
		cfg.BaseURL = *base
	}

	c := crawler.New(cfg.BaseURL, cfg.MaxProducts)

	catalog, err := c.Run(func(done, total int) {
		log.Printf("Escaneando producto %d de %d...", done, total)
	})
	if err != nil {
		log.Fatalf("Escaneo fallido: %v", err)
	}

	log.Printf("%d productos encontrados en %d categorías", len(catalog.Products), len(catalog.Categories))
	for _, cat := range catalog.Categories {
		count := 0
		for _, p := range catalog.Products {
			if p.Category == cat {
				count++
			}
		}
		log.Printf("  %s: %d productos", cat, count)
	}

	if *output != "" {
		data, err := json.MarshalIndent(catalog, "", "  ")
		if err != nil {
			log.Fatalf("Error serializando catálogo: %v", err)
		}
		if err := os.WriteFile(*output, data, 0644); err != nil {
			log.Fatalf("Error escribiendo %s: %v", *output, err)
		}
		log.Printf("Catálogo escrito en %s", *output)
	}
}
