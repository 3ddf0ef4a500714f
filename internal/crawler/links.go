package crawler

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// DiscoverProductLinks escanea los anchors de una página de listado y
// devuelve el conjunto de URLs de producto normalizadas. Los hrefs
// relativos se resuelven contra base y se descarta el query string, así
// el mismo producto alcanzado con distintos parámetros colapsa en una
// sola URL.
func DiscoverProductLinks(doc *goquery.Document, base string) map[string]struct{} {
	links := make(map[string]struct{})
	baseURL, err := url.Parse(base)
	if err != nil {
		return links
	}

	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		if !strings.Contains(href, "/products/") {
			return
		}
		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		full := baseURL.ResolveReference(ref).String()
		// Limpia la URL (sin query string)
		if i := strings.Index(full, "?"); i >= 0 {
			full = full[:i]
		}
		links[full] = struct{}{}
	})

	return links
}
