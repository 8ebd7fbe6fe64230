package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas agregadas de solo lectura sobre el libro de ventas.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// SalesByCategory agrupa ventas por categoría. El conteo de productos incluye los no vendidos.
// Solo devuelve categorías con al menos una venta (INNER JOIN).
func (r *ReportRepo) SalesByCategory(ctx context.Context, categoryID *int64) ([]repository.CategorySalesResult, error) {
	const query = `
	SELECT
	    c.id,
	    c.nombre,
	    COUNT(v.id)                                                   AS total_ventas,
	    COALESCE(SUM(v.cantidad * v.precio_unitario), 0)              AS ingreso_total,
	    (SELECT COUNT(*) FROM productos px WHERE px.categoria_id = c.id) AS cantidad_productos
	FROM categorias c
	JOIN productos p ON p.categoria_id = c.id
	JOIN ventas    v ON v.producto_id  = p.id
	WHERE ($1::bigint IS NULL OR c.id = $1)
	GROUP BY c.id, c.nombre
	ORDER BY c.nombre, c.id`

	rows, err := r.q.Query(ctx, query, categoryID)
	if err != nil {
		return nil, fmt.Errorf("reporte categorias: %w", err)
	}
	defer rows.Close()

	out := make([]repository.CategorySalesResult, 0)
	for rows.Next() {
		var row repository.CategorySalesResult
		if err := rows.Scan(&row.CategoryID, &row.CategoryName, &row.SaleCount, &row.Revenue, &row.ProductCount); err != nil {
			return nil, fmt.Errorf("scan reporte categoria: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// SalesByProduct agrupa ventas por producto: conteo, unidades e ingreso.
func (r *ReportRepo) SalesByProduct(ctx context.Context) ([]repository.ProductSalesResult, error) {
	const query = `
	SELECT
	    p.id,
	    p.nombre,
	    c.nombre,
	    COUNT(v.id)                                      AS total_ventas,
	    COALESCE(SUM(v.cantidad), 0)                     AS unidades,
	    COALESCE(SUM(v.cantidad * v.precio_unitario), 0) AS ingreso_total
	FROM productos p
	JOIN categorias c ON c.id = p.categoria_id
	JOIN ventas     v ON v.producto_id = p.id
	GROUP BY p.id, p.nombre, c.nombre
	ORDER BY p.nombre, p.id`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("reporte productos: %w", err)
	}
	defer rows.Close()

	out := make([]repository.ProductSalesResult, 0)
	for rows.Next() {
		var row repository.ProductSalesResult
		if err := rows.Scan(&row.ProductID, &row.ProductName, &row.CategoryName, &row.SaleCount, &row.UnitsSold, &row.Revenue); err != nil {
			return nil, fmt.Errorf("scan reporte producto: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
