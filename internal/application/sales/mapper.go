package sales

import (
	"time"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

// DateLayout formato de fecha de ventas y filtros.
const DateLayout = "2006-01-02"

// DateOnly trunca t a medianoche UTC conservando el día calendario.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ToSaleResponse convierte una venta materializada en su DTO.
func ToSaleResponse(r entity.SaleRecord) dto.SaleResponse {
	return dto.SaleResponse{
		ID:           r.ID,
		ProductID:    r.ProductID,
		ProductName:  r.ProductName,
		CategoryID:   r.CategoryID,
		CategoryName: r.CategoryName,
		Quantity:     r.Quantity,
		UnitPrice:    r.UnitPrice,
		Total:        r.Total(),
		Date:         r.Date.Format(DateLayout),
		Seller:       r.SellerUsername,
		CreatedAt:    r.CreatedAt,
	}
}

// Totals cuenta las ventas y suma sus totales. Cada total es decimal exacto; la suma es float64 para mostrar.
func Totals(records []entity.SaleRecord) (count int, revenue float64) {
	for i := range records {
		f, _ := records[i].Total().Float64()
		revenue += f
	}
	return len(records), revenue
}

// Average devuelve revenue/count o 0 si no hay ventas.
func Average(revenue float64, count int) float64 {
	if count == 0 {
		return 0
	}
	return revenue / float64(count)
}
