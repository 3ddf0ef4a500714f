package crawler

import (
	"strings"
	"testing"
)

func TestParseProductTitleFallbacks(t *testing.T) {
	tests := []struct {
		name     string
		html     string
		url      string
		expected string
	}{
		{
			name:     "título semántico",
			html:     `<h1 class="product-title">Cadena Barbada</h1><h1>Otro H1</h1>`,
			url:      baseURL + "/products/cadena-barbada",
			expected: "Cadena Barbada",
		},
		{
			name:     "primer h1",
			html:     `<h1>Anillo Solitario</h1>`,
			url:      baseURL + "/products/anillo-solitario",
			expected: "Anillo Solitario",
		},
		{
			name:     "slug de la URL",
			html:     `<div>sin encabezados</div>`,
			url:      baseURL + "/products/dije-corazon-oro",
			expected: "Dije Corazon Oro",
		},
		{
			name:     "slug con mayúsculas",
			html:     `<div>sin encabezados</div>`,
			url:      baseURL + "/products/cadena-ORO-amarillo",
			expected: "Cadena Oro Amarillo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := parseProduct(docFromHTML(t, tt.html), tt.url)
			if p.Name != tt.expected {
				t.Fatalf("Name = %q, want %q", p.Name, tt.expected)
			}
		})
	}
}

func TestParseProductPrice(t *testing.T) {
	tests := []struct {
		name     string
		html     string
		expected string
	}{
		{
			name:     "separadores de miles",
			html:     `<h1>Cadena</h1><span class="money">$1.250.000</span>`,
			expected: "$1250000",
		},
		{
			name:     "span.money gana sobre div.product-price",
			html:     `<h1>Cadena</h1><div class="product-price">$999</div><span class="money">$500.000</span>`,
			expected: "$500000",
		},
		{
			name:     "atributo data-product-price",
			html:     `<h1>Cadena</h1><span data-product-price="true">850,000 COP</span>`,
			expected: "$850000",
		},
		{
			name:     "div.product-price como último recurso",
			html:     `<h1>Cadena</h1><div class="product-price">COP 2.100.000</div>`,
			expected: "$2100000",
		},
		{
			name:     "sin elemento de precio",
			html:     `<h1>Cadena</h1>`,
			expected: "",
		},
		{
			name:     "elemento sin dígitos",
			html:     `<h1>Cadena</h1><span class="money">Consultar</span>`,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := parseProduct(docFromHTML(t, tt.html), baseURL+"/products/cadena")
			if p.Price != tt.expected {
				t.Fatalf("Price = %q, want %q", p.Price, tt.expected)
			}
		})
	}
}

func TestParseProductDescriptionTruncated(t *testing.T) {
	long := strings.Repeat("á", 600)
	html := `<h1>Cadena</h1><div class="product-description">` + long + `</div>`

	p := parseProduct(docFromHTML(t, html), baseURL+"/products/cadena")

	if got := len([]rune(p.Description)); got != maxDescriptionLen {
		t.Fatalf("descripción de %d runas, want %d", got, maxDescriptionLen)
	}
}

func TestParseProductDerivedFields(t *testing.T) {
	html := `<h1 class="product-title">Cadena Barbada</h1>
		<span class="money">$1.250.000</span>
		<div class="product-description">Cadena en oro amarillo 18K, largo 45cm, peso 5gr.</div>`

	p := parseProduct(docFromHTML(t, html), baseURL+"/products/cadena-barbada")

	if p.Material != "Oro Amarillo 18K" {
		t.Errorf("Material = %q", p.Material)
	}
	if p.Weight != "5gr" {
		t.Errorf("Weight = %q", p.Weight)
	}
	if p.Size != "45cm" {
		t.Errorf("Size = %q", p.Size)
	}
	if p.Category != "Cadenas" {
		t.Errorf("Category = %q", p.Category)
	}
	if p.URL != baseURL+"/products/cadena-barbada" {
		t.Errorf("URL = %q", p.URL)
	}
}

func TestParseProductDefaults(t *testing.T) {
	// Página mínima: igual produce name, material y category no vacíos
	p := parseProduct(docFromHTML(t, `<div></div>`), baseURL+"/products/pieza-especial")

	if p.Name == "" || p.Material == "" || p.Category == "" {
		t.Fatalf("campos obligatorios vacíos: %+v", p)
	}
	if p.Material != "Oro 18K" {
		t.Errorf("Material default = %q, want %q", p.Material, "Oro 18K")
	}
	if p.Category != "Joyas" {
		t.Errorf("Category default = %q, want %q", p.Category, "Joyas")
	}
}
