package domain

// Entidades de referência usadas apenas para agrupamento e filtro

type Store struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	City     string `json:"city,omitempty"`
	State    string `json:"state,omitempty"`
	IsActive bool   `json:"is_active"`
}

type Channel struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"` // P=Presencial, D=Delivery
}

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Product struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	CategoryID *int64  `json:"category_id,omitempty"`
	BasePrice  float64 `json:"base_price"`
}

// Customer é usado somente pela análise de retenção. Primeira e última
// compra são derivadas das vendas, nunca armazenadas de forma redundante.
type Customer struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

// Metadata agrupa as listas de dimensões usadas pela barra de filtros
type Metadata struct {
	Stores     []*Store    `json:"stores"`
	Channels   []*Channel  `json:"channels"`
	Categories []*Category `json:"categories"`
}
