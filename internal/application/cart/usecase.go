// Package cart contiene los casos de uso del carrito y el checkout.
package cart

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/application/sales"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/access"
	domaincart "github.com/jhoicas/Tienda-api/internal/domain/cart"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
	"github.com/jhoicas/Tienda-api/pkg/logger"
)

// CartUseCase operaciones sobre el carrito del principal. Todo acceso va acotado a p.UserID.
type CartUseCase struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	txRunner    CheckoutTxRunner
	invalidator sales.ReportInvalidator
	log         *logger.Logger
	now         func() time.Time
}

// NewCartUseCase construye el caso de uso. invalidator puede ser nil.
func NewCartUseCase(
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	txRunner CheckoutTxRunner,
	invalidator sales.ReportInvalidator,
	log *logger.Logger,
) *CartUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &CartUseCase{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		txRunner:    txRunner,
		invalidator: invalidator,
		log:         log,
		now:         time.Now,
	}
}

// Add agrega qty unidades del producto. La cantidad se acota al stock y se suma a la línea existente.
// Sin stock y sin línea previa devuelve ErrInsufficientStock.
func (uc *CartUseCase) Add(ctx context.Context, p access.Principal, productID int64, qty int) (*dto.CartResponse, error) {
	if qty <= 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	existing, err := uc.cartRepo.GetByUserAndProduct(ctx, p.UserID, productID)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		newQty := domaincart.AddQuantity(0, qty, product.Stock)
		if newQty == 0 {
			return nil, domain.ErrInsufficientStock
		}
		item := &entity.CartItem{UserID: p.UserID, ProductID: productID, Quantity: newQty, AddedAt: uc.now()}
		err := uc.cartRepo.Create(ctx, item)
		if err == nil {
			return uc.List(ctx, p)
		}
		if !errors.Is(err, domain.ErrDuplicate) {
			return nil, err
		}
		// otra petición creó la línea entre la lectura y el insert: se fusiona sobre ella
		existing, err = uc.cartRepo.GetByUserAndProduct(ctx, p.UserID, productID)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, domain.ErrDuplicate
		}
	}

	newQty := domaincart.AddQuantity(existing.Quantity, qty, product.Stock)
	if newQty == 0 {
		// el producto se quedó sin stock: la línea ya no es válida
		if err := uc.cartRepo.Delete(ctx, existing.ID); err != nil {
			return nil, err
		}
		return nil, domain.ErrInsufficientStock
	}
	if newQty != existing.Quantity {
		if err := uc.cartRepo.UpdateQuantity(ctx, existing.ID, newQty); err != nil {
			return nil, err
		}
	}
	return uc.List(ctx, p)
}

// Update fija la cantidad de una línea. qty <= 0 o producto sin stock borran la línea.
func (uc *CartUseCase) Update(ctx context.Context, p access.Principal, itemID int64, qty int) (*dto.CartResponse, error) {
	item, err := uc.cartRepo.GetByIDForUser(ctx, itemID, p.UserID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	stock := 0
	product, err := uc.productRepo.GetByID(ctx, item.ProductID)
	if err != nil {
		return nil, err
	}
	if product != nil {
		stock = product.Stock
	}

	newQty, remove := domaincart.SetQuantity(qty, stock)
	if remove {
		if err := uc.cartRepo.Delete(ctx, item.ID); err != nil {
			return nil, err
		}
	} else if err := uc.cartRepo.UpdateQuantity(ctx, item.ID, newQty); err != nil {
		return nil, err
	}
	return uc.List(ctx, p)
}

// Remove borra una línea del carrito del principal.
func (uc *CartUseCase) Remove(ctx context.Context, p access.Principal, itemID int64) (*dto.CartResponse, error) {
	item, err := uc.cartRepo.GetByIDForUser(ctx, itemID, p.UserID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.cartRepo.Delete(ctx, item.ID); err != nil {
		return nil, err
	}
	return uc.List(ctx, p)
}

// List devuelve las líneas del carrito con subtotal y el total.
func (uc *CartUseCase) List(ctx context.Context, p access.Principal) (*dto.CartResponse, error) {
	lines, err := uc.cartRepo.ListLines(ctx, p.UserID)
	if err != nil {
		return nil, err
	}
	out := &dto.CartResponse{Items: make([]dto.CartLineResponse, 0, len(lines)), Total: decimal.Zero}
	for i := range lines {
		l := &lines[i]
		sub := l.Subtotal()
		out.Items = append(out.Items, dto.CartLineResponse{
			ID:          l.ID,
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			UnitPrice:   l.UnitPrice,
			Quantity:    l.Quantity,
			Stock:       l.ProductStock,
			Subtotal:    sub,
			AddedAt:     l.AddedAt,
		})
		out.Total = out.Total.Add(sub)
	}
	return out, nil
}
