// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "time"

// Status de venda gravados pelo caminho de ingestão. O motor de análise
// apenas lê o valor como uma tag opaca; nunca infere transições.
const (
	SaleStatusCompleted = "COMPLETED"
	SaleStatusCancelled = "CANCELLED"
)

// Sale representa uma venda registrada no fact store (somente leitura)
type Sale struct {
	ID            int64      `json:"id"`
	StoreID       int64      `json:"store_id"`
	ChannelID     int64      `json:"channel_id"`
	CustomerID    *int64     `json:"customer_id,omitempty"` // nulo para vendas sem cadastro
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
	TotalAmount   float64    `json:"total_amount"`
	TotalDiscount float64    `json:"total_discount"`
	DeliveryFee   float64    `json:"delivery_fee"`

	// Métricas operacionais de entrega; nulas para vendas sem entrega
	ProductionSeconds *int64 `json:"production_seconds,omitempty"`
	DeliverySeconds   *int64 `json:"delivery_seconds,omitempty"`
}

// SaleItem representa um item de uma venda
type SaleItem struct {
	ID         int64   `json:"id"`
	SaleID     int64   `json:"sale_id"`
	ProductID  int64   `json:"product_id"`
	Quantity   float64 `json:"quantity"`
	BasePrice  float64 `json:"base_price"`
	TotalPrice float64 `json:"total_price"`
}

// Customization representa um adicional cobrado sobre um item de venda,
// separado do preço base do produto
type Customization struct {
	ID              int64   `json:"id"`
	SaleItemID      int64   `json:"sale_item_id"`
	Name            string  `json:"name"`
	AdditionalPrice float64 `json:"additional_price"`
}

// DeliveryAddress representa o endereço de entrega vinculado a uma venda
type DeliveryAddress struct {
	ID           int64  `json:"id"`
	SaleID       int64  `json:"sale_id"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
}
