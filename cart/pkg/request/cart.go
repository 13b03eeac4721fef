package request

import (
	"github.com/google/uuid"
)

type AddCartItem struct {
	ProductId uuid.UUID `validate:"required,uuid"  json:"product_id"`
	Quantity  int32     `validate:"required,gte=1" json:"quantity"`
}

type UpdateCartItemQuantity struct {
	ProductId uuid.UUID `validate:"required,uuid"  json:"product_id"`
	Quantity  int32     `validate:"required,gte=1" json:"quantity"`
}

type UpdateCartInfo struct {
	FullName string `validate:"required" json:"full_name"`
	Phone    string `validate:"required" json:"phone"`
	Address  string `validate:"required" json:"address"`
}
