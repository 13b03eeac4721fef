package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Category struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type Product struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	FinalPrice    decimal.Decimal `json:"final_price"`
	Discount      decimal.Decimal `json:"discount"`
	Stock         int32           `json:"stock"`
	InStock       bool            `json:"in_stock"`
	StockStatus   string          `json:"stock_status"`
	ComponentType string          `json:"component_type"`
	ImageUrl      string          `json:"image_url"`
	Cpu           string          `json:"cpu,omitempty"`
	Main          string          `json:"main,omitempty"`
	Ram           string          `json:"ram,omitempty"`
	Storage       string          `json:"storage,omitempty"`
	Gpu           string          `json:"gpu,omitempty"`
	Power         string          `json:"power,omitempty"`
	CaseComputer  string          `json:"case_computer,omitempty"`
	Coolers       string          `json:"coolers,omitempty"`
	Category      Category        `json:"category"`
}

type CartItem struct {
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	ID            uuid.UUID       `json:"id"`
	UserId        uuid.UUID       `json:"user_id"`
	Kind          string          `json:"kind"`
	ComponentType string          `json:"component_type,omitempty"`
	Quantity      int32           `json:"quantity"`
	TotalPrice    decimal.Decimal `json:"total_price"`
	FullName      string          `json:"full_name,omitempty"`
	Phone         string          `json:"phone,omitempty"`
	Address       string          `json:"address,omitempty"`
	Product       Product         `json:"product"`
}

type Cart struct {
	UserId     uuid.UUID       `json:"user_id"`
	Kind       string          `json:"kind"`
	CartItems  []CartItem      `json:"cart_items"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

type CartCount struct {
	Count         int64           `json:"count"`
	TotalQuantity int64           `json:"total_quantity"`
	TotalPrice    decimal.Decimal `json:"total_price"`
}

type CartSummary struct {
	TotalItems         int             `json:"total_items"`
	TotalQuantity      int64           `json:"total_quantity"`
	Subtotal           decimal.Decimal `json:"subtotal"`
	TotalDiscount      decimal.Decimal `json:"total_discount"`
	TotalPrice         decimal.Decimal `json:"total_price"`
	PcBuilds           int             `json:"pc_builds"`
	Components         int             `json:"components"`
	Accessories        int             `json:"accessories"`
	InStockItems       int             `json:"in_stock_items"`
	OutOfStockItems    int             `json:"out_of_stock_items"`
	DiscountedItems    int             `json:"discounted_items"`
	AveragePrice       decimal.Decimal `json:"average_price"`
	MostExpensiveItem  string          `json:"most_expensive_item"`
	LeastExpensiveItem string          `json:"least_expensive_item"`
}
