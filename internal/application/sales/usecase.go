// Package sales contiene los casos de uso del libro de ventas: listado filtrado y registro manual.
package sales

import (
	"context"
	"time"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/access"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
	"github.com/jhoicas/Tienda-api/pkg/logger"
)

// SaleUseCase casos de uso del libro de ventas.
type SaleUseCase struct {
	saleRepo    repository.SaleRepository
	txRunner    SaleTxRunner
	invalidator ReportInvalidator
	log         *logger.Logger
	now         func() time.Time
}

// NewSaleUseCase construye el caso de uso. invalidator puede ser nil.
func NewSaleUseCase(saleRepo repository.SaleRepository, txRunner SaleTxRunner, invalidator ReportInvalidator, log *logger.Logger) *SaleUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &SaleUseCase{
		saleRepo:    saleRepo,
		txRunner:    txRunner,
		invalidator: invalidator,
		log:         log,
		now:         time.Now,
	}
}

// List devuelve las ventas que cumplen el filtro con conteo, ingreso total y promedio por venta.
func (uc *SaleUseCase) List(ctx context.Context, filter repository.SaleFilter, active dto.ReportFilters) (*dto.SaleListResponse, error) {
	records, err := uc.saleRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(records))
	for _, r := range records {
		items = append(items, ToSaleResponse(r))
	}
	count, revenue := Totals(records)
	return &dto.SaleListResponse{
		Sales:        items,
		TotalSales:   count,
		TotalRevenue: revenue,
		AveragePer:   Average(revenue, count),
		Filters:      active,
	}, nil
}

// Create registra una venta manual a nombre del principal. Bloquea el producto, verifica stock,
// congela el precio y descuenta el stock en la misma transacción.
func (uc *SaleUseCase) Create(ctx context.Context, p access.Principal, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if in.Quantity < 1 {
		return nil, domain.ErrInvalidInput
	}
	date := DateOnly(uc.now())
	if in.Date != "" {
		d, err := time.Parse(DateLayout, in.Date)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		date = d
	}

	var record entity.SaleRecord
	err := uc.txRunner.RunSale(ctx, func(productRepo repository.ProductRepository, saleRepo repository.SaleRepository) error {
		product, err := productRepo.GetForUpdate(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if in.Quantity > product.Stock {
			return domain.ErrInsufficientStock
		}
		seller := p.UserID
		sale := entity.Sale{
			ProductID: product.ID,
			Quantity:  in.Quantity,
			UnitPrice: product.Price,
			Date:      date,
			SellerID:  &seller,
		}
		if err := saleRepo.Create(ctx, &sale); err != nil {
			return err
		}
		if err := productRepo.DecrementStock(ctx, product.ID, in.Quantity); err != nil {
			return err
		}
		username := p.Username
		record = entity.SaleRecord{
			Sale:           sale,
			ProductName:    product.Name,
			CategoryID:     product.CategoryID,
			CategoryName:   product.CategoryName,
			SellerUsername: &username,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	InvalidateReports(ctx, uc.invalidator, uc.log)
	resp := ToSaleResponse(record)
	return &resp, nil
}

// InvalidateReports descarta los reportes cacheados; un fallo solo se registra.
func InvalidateReports(ctx context.Context, inv ReportInvalidator, log *logger.Logger) {
	if inv == nil {
		return
	}
	if err := inv.Invalidate(ctx); err != nil {
		log.Warn().Err(err).Msg("no se pudo invalidar la caché de reportes")
	}
}
