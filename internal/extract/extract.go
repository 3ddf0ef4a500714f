// Package extract deriva atributos estructurados (material, peso, tamaño,
// categoría) a partir de texto libre de las páginas de producto.
package extract

import (
	"regexp"
	"strings"
)

const DefaultMaterial = "Oro 18K"

// keywordRule asocia palabras clave a un valor; la primera regla cuyo
// keyword aparezca en el texto gana.
type keywordRule struct {
	keywords []string
	value    string
}

var materialRules = []keywordRule{
	{[]string{"oro amarillo"}, "Oro Amarillo 18K"},
	{[]string{"oro blanco"}, "Oro Blanco 18K"},
	{[]string{"oro rosa", "oro rosado"}, "Oro Rosa 18K"},
	{[]string{"tres oros", "3 oros"}, "Tres Oros 18K"},
	{[]string{"oro"}, "Oro 18K"},
}

var categoryRules = []keywordRule{
	{[]string{"cadena"}, "Cadenas"},
	{[]string{"pulso", "pulsera", "brazalete"}, "Pulseras"},
	{[]string{"topo", "arete", "pendiente"}, "Aretes"},
	{[]string{"anillo", "argolla"}, "Anillos"},
	{[]string{"dije", "colgante", "medalla"}, "Dijes"},
}

var (
	weightRe = regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*gr`)
	sizeCmRe = regexp.MustCompile(`(\d+)\s*cm`)
	sizeMmRe = regexp.MustCompile(`(\d+)\s*mm`)
)

func matchRules(rules []keywordRule, text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, rule := range rules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.value, true
			}
		}
	}
	return "", false
}

// Material devuelve el material de la pieza. Siempre retorna un valor del
// vocabulario fijo; sin señal de oro aplica el default "Oro 18K".
func Material(text string) string {
	if v, ok := matchRules(materialRules, text); ok {
		return v
	}
	return DefaultMaterial
}

// Weight extrae el peso como "<numero>gr" (separador decimal original
// preservado). Vacío si no hay coincidencia.
func Weight(text string) string {
	if m := weightRe.FindStringSubmatch(strings.ToLower(text)); m != nil {
		return m[1] + "gr"
	}
	return ""
}

// Size extrae el tamaño como "<entero>cm" o "<entero>mm". Se intenta cm
// antes que mm aunque mm aparezca primero en el texto.
func Size(text string) string {
	lower := strings.ToLower(text)
	if m := sizeCmRe.FindStringSubmatch(lower); m != nil {
		return m[1] + "cm"
	}
	if m := sizeMmRe.FindStringSubmatch(lower); m != nil {
		return m[1] + "mm"
	}
	return ""
}

// Categorize clasifica el producto por su nombre. Total: siempre devuelve
// una categoría; sin coincidencia cae en "Joyas".
func Categorize(name string) string {
	if v, ok := matchRules(categoryRules, name); ok {
		return v
	}
	return "Joyas"
}
