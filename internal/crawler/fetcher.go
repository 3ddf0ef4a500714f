package crawler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Algunos sitios rechazan clientes sin identificación de navegador.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

var (
	// listados (home y colecciones)
	listingClient = &http.Client{Timeout: 10 * time.Second}
	// páginas de producto
	productClient = &http.Client{Timeout: 15 * time.Second}
)

func fetchDocument(client *http.Client, url string) (*goquery.Document, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d for %s", resp.StatusCode, url)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", url, err)
	}
	return doc, nil
}

// FetchListing descarga una página de listado (home o colección).
func FetchListing(url string) (*goquery.Document, error) {
	return fetchDocument(listingClient, url)
}

// FetchProductPage descarga una página de producto.
func FetchProductPage(url string) (*goquery.Document, error) {
	return fetchDocument(productClient, url)
}
