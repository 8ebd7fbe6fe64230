package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

var _ repository.CartRepository = (*CartRepo)(nil)

// CartRepo líneas de carrito sobre PostgreSQL (usable con pool o tx).
type CartRepo struct {
	q Querier
}

// NewCartRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCartRepository(q Querier) *CartRepo {
	return &CartRepo{q: q}
}

func (r *CartRepo) getOne(ctx context.Context, query string, args ...any) (*entity.CartItem, error) {
	var it entity.CartItem
	err := r.q.QueryRow(ctx, query, args...).Scan(&it.ID, &it.UserID, &it.ProductID, &it.Quantity, &it.AddedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get carrito_item: %w", err)
	}
	return &it, nil
}

// GetByUserAndProduct línea del usuario para el producto.
func (r *CartRepo) GetByUserAndProduct(ctx context.Context, userID string, productID int64) (*entity.CartItem, error) {
	return r.getOne(ctx, `
		SELECT id, usuario_id, producto_id, cantidad, fecha_agregado
		FROM carrito_items WHERE usuario_id = $1 AND producto_id = $2`, userID, productID)
}

// GetByIDForUser línea por ID solo si pertenece al usuario.
func (r *CartRepo) GetByIDForUser(ctx context.Context, id int64, userID string) (*entity.CartItem, error) {
	return r.getOne(ctx, `
		SELECT id, usuario_id, producto_id, cantidad, fecha_agregado
		FROM carrito_items WHERE id = $1 AND usuario_id = $2`, id, userID)
}

// Create inserta la línea. UNIQUE(usuario_id, producto_id) → ErrDuplicate.
func (r *CartRepo) Create(ctx context.Context, it *entity.CartItem) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO carrito_items (usuario_id, producto_id, cantidad, fecha_agregado)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		it.UserID, it.ProductID, it.Quantity, it.AddedAt,
	).Scan(&it.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert carrito_item: %w", err)
	}
	return nil
}

// UpdateQuantity fija la cantidad de la línea.
func (r *CartRepo) UpdateQuantity(ctx context.Context, id int64, qty int) error {
	cmd, err := r.q.Exec(ctx, `UPDATE carrito_items SET cantidad = $2 WHERE id = $1`, id, qty)
	if err != nil {
		return fmt.Errorf("update carrito_item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete borra la línea.
func (r *CartRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM carrito_items WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete carrito_item: %w", err)
	}
	return nil
}

const cartLinesQuery = `
	SELECT ci.id, ci.usuario_id, ci.producto_id, ci.cantidad, ci.fecha_agregado,
	       p.nombre, p.precio, p.stock
	FROM carrito_items ci
	JOIN productos p ON p.id = ci.producto_id
	WHERE ci.usuario_id = $1
	ORDER BY ci.fecha_agregado DESC, ci.id DESC`

// ListLines líneas del usuario con los datos actuales del producto.
func (r *CartRepo) ListLines(ctx context.Context, userID string) ([]entity.CartLine, error) {
	return r.listLines(ctx, cartLinesQuery, userID)
}

// ListLinesForUpdate bloquea solo las filas del carrito; los productos se bloquean aparte en orden de id.
func (r *CartRepo) ListLinesForUpdate(ctx context.Context, userID string) ([]entity.CartLine, error) {
	return r.listLines(ctx, cartLinesQuery+"\n\tFOR UPDATE OF ci", userID)
}

func (r *CartRepo) listLines(ctx context.Context, query, userID string) ([]entity.CartLine, error) {
	rows, err := r.q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list carrito: %w", err)
	}
	defer rows.Close()
	out := make([]entity.CartLine, 0)
	for rows.Next() {
		var l entity.CartLine
		if err := rows.Scan(&l.ID, &l.UserID, &l.ProductID, &l.Quantity, &l.AddedAt,
			&l.ProductName, &l.UnitPrice, &l.ProductStock); err != nil {
			return nil, fmt.Errorf("scan carrito: %w", err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// DeleteByUser vacía el carrito del usuario.
func (r *CartRepo) DeleteByUser(ctx context.Context, userID string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM carrito_items WHERE usuario_id = $1`, userID); err != nil {
		return fmt.Errorf("vaciar carrito: %w", err)
	}
	return nil
}
