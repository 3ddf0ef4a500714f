package model

// Product es un artículo de joyería con atributos normalizados,
// extraídos de su página de producto.
type Product struct {
	Name        string `json:"name"`
	Price       string `json:"price,omitempty"`
	Description string `json:"description,omitempty"`
	Material    string `json:"material"`
	Weight      string `json:"weight,omitempty"`
	Size        string `json:"size,omitempty"`
	Category    string `json:"category"`
	URL         string `json:"url"`
}

// Catalog es el resultado de una corrida de crawl. El crawler lo
// construye una sola vez y no se muta después; un nuevo escaneo produce
// un Catalog completamente nuevo.
type Catalog struct {
	Products    []Product   `json:"products"`
	Categories  []string    `json:"categories"`
	CompanyInfo CompanyInfo `json:"company_info"`
}

type CompanyInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Currency    string `json:"currency"`
	Country     string `json:"country"`
	Website     string `json:"website"`
	Instagram   string `json:"instagram"`
}

func DefaultCompanyInfo() CompanyInfo {
	return CompanyInfo{
		Name:        "La Fiancee Joyas",
		Description: "Joyas en Oro 18k - Joyas Únicas",
		Currency:    "COP",
		Country:     "Colombia",
		Website:     "lafianceejoyas.co",
		Instagram:   "@lafianceejoyas",
	}
}
