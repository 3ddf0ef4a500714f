package chat

import (
	"errors"
	"strings"

	"joyasbot/internal/model"
)

// ErrEmptyCatalog: sin catálogo no se permite ninguna llamada de
// generación; el asistente no debe responder sin grounding.
var ErrEmptyCatalog = errors.New("catálogo vacío: nada para fundamentar la respuesta")

const maxExcerptLen = 100

// RenderCatalog serializa el catálogo en el bloque de contexto que
// fundamenta cada respuesta: una línea por producto con sus atributos
// presentes, más la lista de categorías.
func RenderCatalog(catalog *model.Catalog) (string, error) {
	if catalog == nil || len(catalog.Products) == 0 {
		return "", ErrEmptyCatalog
	}

	var sb strings.Builder
	for _, p := range catalog.Products {
		sb.WriteString("- " + p.Name)
		if p.Price != "" {
			sb.WriteString(" - Precio: " + p.Price + " " + catalog.CompanyInfo.Currency)
		}
		if p.Category != "" {
			sb.WriteString(" - Categoría: " + p.Category)
		}
		if p.Material != "" {
			sb.WriteString(" - Material: " + p.Material)
		}
		if p.Weight != "" {
			sb.WriteString(" - Peso: " + p.Weight)
		}
		if p.Size != "" {
			sb.WriteString(" - Tamaño: " + p.Size)
		}
		if p.Description != "" {
			sb.WriteString(" - Descripción: " + excerpt(p.Description))
		}
		sb.WriteString(" - URL: " + p.URL)
		sb.WriteString("\n")
	}

	sb.WriteString("\nCATEGORÍAS DISPONIBLES:\n")
	sb.WriteString(strings.Join(catalog.Categories, ", "))

	return sb.String(), nil
}

func excerpt(s string) string {
	r := []rune(s)
	if len(r) <= maxExcerptLen {
		return s
	}
	return string(r[:maxExcerptLen])
}
