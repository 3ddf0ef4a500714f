package crawler

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"joyasbot/internal/model"
	"joyasbot/internal/observability"
)

// ErrNoProducts indica que el crawl terminó sin ningún producto; el
// catálogo resultante no es válido para responder preguntas.
var ErrNoProducts = errors.New("crawl finalizado sin productos")

// Rutas de colección conocidas del sitio; convención fija de la tienda.
var collectionPaths = []string{
	"/collections/all",
	"/collections/cadenas",
	"/collections/pulseras",
	"/collections/aretes",
	"/collections/anillos",
	"/collections/dijes",
	"/collections/joyas",
}

const (
	collectionDelay = 500 * time.Millisecond
	productDelay    = 300 * time.Millisecond
)

// ProgressFunc recibe el avance del escaneo (producto actual / total).
type ProgressFunc func(done, total int)

// Crawler orquesta el descubrimiento y la extracción acotada de un sitio.
type Crawler struct {
	BaseURL     string
	MaxProducts int

	// Delays entre requests, cortesía con el servidor de origen.
	// New los deja en los valores por defecto; los tests los ponen en cero.
	CollectionDelay time.Duration
	ProductDelay    time.Duration
}

func New(baseURL string, maxProducts int) *Crawler {
	return &Crawler{
		BaseURL:         baseURL,
		MaxProducts:     maxProducts,
		CollectionDelay: collectionDelay,
		ProductDelay:    productDelay,
	}
}

// Run ejecuta un crawl completo y devuelve un catálogo nuevo. La home es
// fatal si falla; colecciones y productos individuales que fallen se
// omiten sin abortar. Un crawl sin productos devuelve ErrNoProducts.
func (c *Crawler) Run(progress ProgressFunc) (*model.Catalog, error) {
	doc, err := FetchListing(c.BaseURL)
	if err != nil {
		observability.FetchErrors.WithLabelValues("homepage").Inc()
		return nil, fmt.Errorf("error escaneando la página principal: %w", err)
	}
	observability.PagesFetched.WithLabelValues("homepage").Inc()

	linkSet := DiscoverProductLinks(doc, c.BaseURL)

	for _, path := range collectionPaths {
		colDoc, err := FetchListing(c.BaseURL + path)
		if err != nil {
			// Una colección caída no aborta el crawl
			observability.FetchErrors.WithLabelValues("collection").Inc()
			log.Printf("[Crawler] Colección %s omitida: %v", path, err)
			continue
		}
		observability.PagesFetched.WithLabelValues("collection").Inc()
		for u := range DiscoverProductLinks(colDoc, c.BaseURL) {
			linkSet[u] = struct{}{}
		}
		time.Sleep(c.CollectionDelay)
	}

	// Orden lexicográfico antes del tope: la selección de los 60 es
	// estable entre corridas.
	links := make([]string, 0, len(linkSet))
	for u := range linkSet {
		links = append(links, u)
	}
	sort.Strings(links)
	if len(links) > c.MaxProducts {
		links = links[:c.MaxProducts]
	}

	log.Printf("[Crawler] %d URLs de producto para escanear", len(links))

	catalog := &model.Catalog{CompanyInfo: model.DefaultCompanyInfo()}
	for idx, u := range links {
		if progress != nil {
			progress(idx+1, len(links))
		}

		if p := ScrapeProduct(u); p != nil {
			observability.ProductsParsed.Inc()
			catalog.Products = append(catalog.Products, *p)
		} else {
			observability.FetchErrors.WithLabelValues("product").Inc()
		}

		time.Sleep(c.ProductDelay)
	}

	catalog.Categories = distinctCategories(catalog.Products)

	if len(catalog.Products) == 0 {
		return nil, ErrNoProducts
	}

	observability.CrawlsCompleted.Inc()
	log.Printf("[Crawler] Escaneo finalizado: %d productos, %d categorías",
		len(catalog.Products), len(catalog.Categories))
	return catalog, nil
}

// distinctCategories deriva el conjunto de categorías no vacías en orden
// de primera aparición.
func distinctCategories(products []model.Product) []string {
	seen := make(map[string]bool)
	var cats []string
	for _, p := range products {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		cats = append(cats, p.Category)
	}
	return cats
}
