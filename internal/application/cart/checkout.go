package cart

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/application/sales"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/access"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

// SkipReasonStock motivo de una línea omitida por falta de stock.
const SkipReasonStock = "stock insuficiente"

// SkipReasonGone motivo de una línea cuyo producto ya no existe.
const SkipReasonGone = "producto no disponible"

// Checkout convierte el carrito del principal en ventas en una sola transacción:
//  1. bloquea las líneas del carrito (serializa checkouts del mismo usuario)
//  2. bloquea los productos en orden ascendente de id
//  3. por cada línea con cantidad <= stock crea la venta y descuenta stock; si no, la omite
//  4. vacía el carrito completo
//
// Las líneas omitidas se devuelven en Skipped. Carrito vacío → ErrEmptyCart.
func (uc *CartUseCase) Checkout(ctx context.Context, p access.Principal) (*dto.CheckoutResponse, error) {
	out := &dto.CheckoutResponse{
		Sales:   []dto.SaleResponse{},
		Skipped: []dto.SkippedLineResponse{},
		Total:   decimal.Zero,
	}
	today := sales.DateOnly(uc.now())

	err := uc.txRunner.RunCheckout(ctx, func(
		cartRepo repository.CartRepository,
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error {
		// reinicia el resultado si el runner reintenta fn
		out.Sales, out.Skipped, out.Total = out.Sales[:0], out.Skipped[:0], decimal.Zero

		lines, err := cartRepo.ListLinesForUpdate(ctx, p.UserID)
		if err != nil {
			return fmt.Errorf("bloquear carrito: %w", err)
		}
		if len(lines) == 0 {
			return domain.ErrEmptyCart
		}
		sort.Slice(lines, func(i, j int) bool { return lines[i].ProductID < lines[j].ProductID })

		for _, line := range lines {
			product, err := productRepo.GetForUpdate(ctx, line.ProductID)
			if err != nil {
				return fmt.Errorf("bloquear producto %d: %w", line.ProductID, err)
			}
			if product == nil {
				out.Skipped = append(out.Skipped, dto.SkippedLineResponse{
					ProductID:   line.ProductID,
					ProductName: line.ProductName,
					Requested:   line.Quantity,
					Reason:      SkipReasonGone,
				})
				continue
			}
			if line.Quantity > product.Stock {
				out.Skipped = append(out.Skipped, dto.SkippedLineResponse{
					ProductID:   product.ID,
					ProductName: product.Name,
					Requested:   line.Quantity,
					Available:   product.Stock,
					Reason:      SkipReasonStock,
				})
				continue
			}

			seller := p.UserID
			sale := entity.Sale{
				ProductID: product.ID,
				Quantity:  line.Quantity,
				UnitPrice: product.Price,
				Date:      today,
				SellerID:  &seller,
			}
			if err := saleRepo.Create(ctx, &sale); err != nil {
				return err
			}
			if err := productRepo.DecrementStock(ctx, product.ID, line.Quantity); err != nil {
				return err
			}
			username := p.Username
			out.Sales = append(out.Sales, sales.ToSaleResponse(entity.SaleRecord{
				Sale:           sale,
				ProductName:    product.Name,
				CategoryID:     product.CategoryID,
				CategoryName:   product.CategoryName,
				SellerUsername: &username,
			}))
			out.Total = out.Total.Add(sale.Total())
		}

		if err := cartRepo.DeleteByUser(ctx, p.UserID); err != nil {
			return fmt.Errorf("vaciar carrito: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(out.Sales) > 0 {
		sales.InvalidateReports(ctx, uc.invalidator, uc.log)
	}
	if len(out.Skipped) > 0 {
		uc.log.Info().Str("user_id", p.UserID).Int("omitidas", len(out.Skipped)).Msg("checkout con líneas omitidas")
	}
	return out, nil
}
