package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo libro de ventas sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create inserta la venta y completa ID y CreatedAt.
func (r *SaleRepo) Create(ctx context.Context, s *entity.Sale) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO ventas (producto_id, cantidad, precio_unitario, fecha, vendedor_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`,
		s.ProductID, s.Quantity, s.UnitPrice, s.Date, s.SellerID,
	).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) || isCheckViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert venta: %w", err)
	}
	return nil
}

// List arma el WHERE solo con los filtros presentes. Fechas inclusivas sobre la columna DATE.
func (r *SaleRepo) List(ctx context.Context, f repository.SaleFilter) ([]entity.SaleRecord, error) {
	var (
		where []string
		args  []any
	)
	add := func(cond string, v any) {
		args = append(args, v)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}
	if f.StartDate != nil {
		add("v.fecha >= $%d", *f.StartDate)
	}
	if f.EndDate != nil {
		add("v.fecha <= $%d", *f.EndDate)
	}
	if f.CategoryID != nil {
		add("p.categoria_id = $%d", *f.CategoryID)
	}
	if f.ProductID != nil {
		add("v.producto_id = $%d", *f.ProductID)
	}

	query := `
	SELECT v.id, v.producto_id, v.cantidad, v.precio_unitario, v.fecha, v.vendedor_id, v.created_at,
	       p.nombre, p.categoria_id, c.nombre, u.username
	FROM ventas v
	JOIN productos  p ON p.id = v.producto_id
	JOIN categorias c ON c.id = p.categoria_id
	LEFT JOIN usuarios u ON u.id = v.vendedor_id`
	if len(where) > 0 {
		query += "\n\tWHERE " + strings.Join(where, " AND ")
	}
	query += "\n\tORDER BY v.fecha DESC, v.id DESC"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ventas: %w", err)
	}
	defer rows.Close()

	out := make([]entity.SaleRecord, 0)
	for rows.Next() {
		var rec entity.SaleRecord
		if err := rows.Scan(
			&rec.ID, &rec.ProductID, &rec.Quantity, &rec.UnitPrice, &rec.Date, &rec.SellerID, &rec.CreatedAt,
			&rec.ProductName, &rec.CategoryID, &rec.CategoryName, &rec.SellerUsername,
		); err != nil {
			return nil, fmt.Errorf("scan venta: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
