package repository

import (
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/Alturino/computer-store/cart/internal/pricing"
	"github.com/Alturino/computer-store/cart/pkg/response"
)

const (
	StockStatusInStock    = "In Stock"
	StockStatusOutOfStock = "Out of Stock"
)

func NumericFromDecimal(d decimal.Decimal) pgtype.Numeric {
	return pgtype.Numeric{
		Exp:              d.Exponent(),
		InfinityModifier: pgtype.Finite,
		Int:              d.Coefficient(),
		NaN:              false,
		Valid:            true,
	}
}

func DecimalFromNumeric(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid || n.NaN || n.Int == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(n.Int, n.Exp)
}

func (f FindProductByIdRow) Response() response.Product {
	price := DecimalFromNumeric(f.Price)
	discount := DecimalFromNumeric(f.Discount)

	stockStatus := StockStatusInStock
	if f.Stock <= 0 {
		stockStatus = StockStatusOutOfStock
	}

	return response.Product{
		ID:            f.ID,
		Name:          f.Name,
		Description:   f.Description.String,
		Price:         price,
		FinalPrice:    pricing.EffectivePrice(price, discount),
		Discount:      discount,
		Stock:         f.Stock,
		InStock:       f.Stock > 0,
		StockStatus:   stockStatus,
		ComponentType: string(f.ComponentType),
		ImageUrl:      f.ImageUrl.String,
		Cpu:           f.Cpu.String,
		Main:          f.Main.String,
		Ram:           f.Ram.String,
		Storage:       f.Storage.String,
		Gpu:           f.Gpu.String,
		Power:         f.Power.String,
		CaseComputer:  f.CaseComputer.String,
		Coolers:       f.Coolers.String,
		Category: response.Category{
			ID:   f.CategoryID,
			Name: f.CategoryName,
		},
	}
}

func (i CartItem) Response(product FindProductByIdRow) response.CartItem {
	componentType := ""
	if i.ComponentType.Valid {
		componentType = string(i.ComponentType.ComponentType)
	}

	return response.CartItem{
		CreatedAt:     i.CreatedAt.Time,
		UpdatedAt:     i.UpdatedAt.Time,
		ID:            i.ID,
		UserId:        i.UserID,
		Kind:          string(i.Kind),
		ComponentType: componentType,
		Quantity:      i.Quantity,
		TotalPrice:    DecimalFromNumeric(i.TotalPrice),
		FullName:      i.FullName.String,
		Phone:         i.Phone.String,
		Address:       i.Address.String,
		Product:       product.Response(),
	}
}

func (f FindCartItemsByUserIdRow) Response() response.CartItem {
	price := DecimalFromNumeric(f.Price)
	discount := DecimalFromNumeric(f.Discount)

	stockStatus := StockStatusInStock
	if f.Stock <= 0 {
		stockStatus = StockStatusOutOfStock
	}

	componentType := ""
	if f.ComponentType.Valid {
		componentType = string(f.ComponentType.ComponentType)
	}

	return response.CartItem{
		CreatedAt:     f.CreatedAt.Time,
		UpdatedAt:     f.UpdatedAt.Time,
		ID:            f.ID,
		UserId:        f.UserID,
		Kind:          string(f.Kind),
		ComponentType: componentType,
		Quantity:      f.Quantity,
		TotalPrice:    DecimalFromNumeric(f.TotalPrice),
		FullName:      f.FullName.String,
		Phone:         f.Phone.String,
		Address:       f.Address.String,
		Product: response.Product{
			ID:            f.ProductID,
			Name:          f.ProductName,
			Description:   f.Description.String,
			Price:         price,
			FinalPrice:    pricing.EffectivePrice(price, discount),
			Discount:      discount,
			Stock:         f.Stock,
			InStock:       f.Stock > 0,
			StockStatus:   stockStatus,
			ComponentType: string(f.ProductComponentType),
			ImageUrl:      f.ImageUrl.String,
			Cpu:           f.Cpu.String,
			Main:          f.Main.String,
			Ram:           f.Ram.String,
			Storage:       f.Storage.String,
			Gpu:           f.Gpu.String,
			Power:         f.Power.String,
			CaseComputer:  f.CaseComputer.String,
			Coolers:       f.Coolers.String,
			Category: response.Category{
				ID:   f.CategoryID,
				Name: f.CategoryName,
			},
		},
	}
}
