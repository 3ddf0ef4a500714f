package crawler

import (
	"log"
	"net/url"
	"regexp"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"

	"joyasbot/internal/extract"
	"joyasbot/internal/model"
)

const maxDescriptionLen = 500

// Cadenas de selectores en orden de prioridad; gana el primero que exista.
// Varias convenciones de markup conviven en el sitio según la plantilla.
var (
	titleSelectors = []string{"h1.product-title", "h1"}
	priceSelectors = []string{
		"span.money",
		"span[data-product-price]",
		"span.price",
		"div.product-price",
	}
	descriptionSelectors = []string{
		"div.product-description",
		"div[itemprop='description']",
		"div.description",
	}

	digitRunRe = regexp.MustCompile(`\d+`)
)

func firstMatch(doc *goquery.Document, selectors []string) (string, bool) {
	for _, sel := range selectors {
		if s := doc.Find(sel).First(); s.Length() > 0 {
			return strings.TrimSpace(s.Text()), true
		}
	}
	return "", false
}

// ScrapeProduct descarga y parsea una página de producto. Cualquier fallo
// de red o de parseo se registra y devuelve nil: nunca aborta el crawl.
func ScrapeProduct(pageURL string) *model.Product {
	doc, err := FetchProductPage(pageURL)
	if err != nil {
		log.Printf("[Crawler] Error escaneando producto %s: %v", pageURL, err)
		return nil
	}
	return parseProduct(doc, pageURL)
}

func parseProduct(doc *goquery.Document, pageURL string) *model.Product {
	p := &model.Product{URL: pageURL}

	if title, ok := firstMatch(doc, titleSelectors); ok && title != "" {
		p.Name = title
	} else {
		p.Name = slugTitle(pageURL)
	}

	if priceText, ok := firstMatch(doc, priceSelectors); ok {
		// Quita separadores de miles/decimales y toma la primera corrida
		// de dígitos; sin dígitos no hay precio.
		stripped := strings.NewReplacer(".", "", ",", "").Replace(priceText)
		if digits := digitRunRe.FindString(stripped); digits != "" {
			p.Price = "$" + digits
		}
	}

	if desc, ok := firstMatch(doc, descriptionSelectors); ok {
		p.Description = truncate(desc, maxDescriptionLen)
	}

	fullText := p.Description + " " + p.Name
	p.Material = extract.Material(fullText)
	p.Weight = extract.Weight(fullText)
	p.Size = extract.Size(fullText)
	p.Category = extract.Categorize(p.Name)

	return p
}

// slugTitle deriva un nombre legible del último segmento de la URL
// cuando la página no trae encabezado.
func slugTitle(pageURL string) string {
	path := pageURL
	if u, err := url.Parse(pageURL); err == nil {
		path = u.Path
	}
	segments := strings.Split(strings.Trim(path, "/"), "/")
	slug := segments[len(segments)-1]

	words := strings.Fields(strings.ReplaceAll(slug, "-", " "))
	if len(words) == 0 {
		return "Joya"
	}
	for i, w := range words {
		r := []rune(strings.ToLower(w))
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
