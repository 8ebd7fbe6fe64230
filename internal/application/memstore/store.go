// Package memstore implementa los puertos de repositorio en memoria para los tests de casos de uso.
// Las transacciones toman una copia del estado y la restauran si fn devuelve error.
package memstore

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

type state struct {
	categories map[int64]entity.Category
	products   map[int64]entity.Product
	sales      map[int64]entity.Sale
	cart       map[int64]entity.CartItem
	roles      map[string]entity.Role
	users      map[string]entity.User
	seq        int64
}

func (s *state) clone() *state {
	c := &state{
		categories: make(map[int64]entity.Category, len(s.categories)),
		products:   make(map[int64]entity.Product, len(s.products)),
		sales:      make(map[int64]entity.Sale, len(s.sales)),
		cart:       make(map[int64]entity.CartItem, len(s.cart)),
		roles:      make(map[string]entity.Role, len(s.roles)),
		users:      make(map[string]entity.User, len(s.users)),
		seq:        s.seq,
	}
	for k, v := range s.categories {
		c.categories[k] = v
	}
	for k, v := range s.products {
		c.products[k] = v
	}
	for k, v := range s.sales {
		c.sales[k] = v
	}
	for k, v := range s.cart {
		c.cart[k] = v
	}
	for k, v := range s.roles {
		v.Permissions = append([]string(nil), v.Permissions...)
		c.roles[k] = v
	}
	for k, v := range s.users {
		v.Permissions = append([]string(nil), v.Permissions...)
		c.users[k] = v
	}
	return c
}

// Store base de datos en memoria.
type Store struct {
	mu sync.Mutex
	st *state
	// txMu serializa las transacciones: una a la vez, como los bloqueos de fila en PostgreSQL.
	txMu sync.Mutex

	// FailSaleCreate hace fallar SaleRepository.Create (simula error de infraestructura).
	FailSaleCreate error
	// Invalidations cuenta las llamadas a Invalidate.
	Invalidations int
}

// New crea un Store vacío.
func New() *Store {
	return &Store{st: &state{
		categories: map[int64]entity.Category{},
		products:   map[int64]entity.Product{},
		sales:      map[int64]entity.Sale{},
		cart:       map[int64]entity.CartItem{},
		roles:      map[string]entity.Role{},
		users:      map[string]entity.User{},
	}}
}

func (s *Store) nextID() int64 {
	s.st.seq++
	return s.st.seq
}

// Categories devuelve el repositorio de categorías.
func (s *Store) Categories() repository.CategoryRepository { return categoryRepo{s} }

// Products devuelve el repositorio de productos.
func (s *Store) Products() repository.ProductRepository { return productRepo{s} }

// Sales devuelve el repositorio de ventas.
func (s *Store) Sales() repository.SaleRepository { return saleRepo{s} }

// Cart devuelve el repositorio del carrito.
func (s *Store) Cart() repository.CartRepository { return cartRepo{s} }

// Roles devuelve el repositorio de roles.
func (s *Store) Roles() repository.RoleRepository { return roleRepo{s} }

// Users devuelve el repositorio de usuarios.
func (s *Store) Users() repository.UserRepository { return userRepo{s} }

// Reports devuelve el repositorio de reportes agregados.
func (s *Store) Reports() repository.ReportRepository { return reportRepo{s} }

// Invalidate cuenta la invalidación de la caché de reportes.
func (s *Store) Invalidate(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Invalidations++
	return nil
}

// runTx ejecuta fn con txMu tomado durante toda la transacción; si fn falla restaura el snapshot.
func (s *Store) runTx(fn func() error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()
	s.mu.Lock()
	snapshot := s.st.clone()
	s.mu.Unlock()
	if err := fn(); err != nil {
		s.mu.Lock()
		s.st = snapshot
		s.mu.Unlock()
		return err
	}
	return nil
}

// RunCheckout ejecuta fn con los repos del store; revierte el estado si fn falla.
func (s *Store) RunCheckout(ctx context.Context, fn func(
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
) error) error {
	return s.runTx(func() error { return fn(s.Cart(), s.Products(), s.Sales()) })
}

// RunSale ejecuta fn con los repos de producto y ventas; revierte el estado si fn falla.
func (s *Store) RunSale(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
) error) error {
	return s.runTx(func() error { return fn(s.Products(), s.Sales()) })
}

// ── Helpers de siembra ──────────────────────────────────────────────────────

// AddCategory inserta una categoría y devuelve su id.
func (s *Store) AddCategory(name string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID()
	s.st.categories[id] = entity.Category{ID: id, Name: name}
	return id
}

// AddProduct inserta un producto y devuelve su id.
func (s *Store) AddProduct(categoryID int64, name, price string, stock int) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID()
	s.st.products[id] = entity.Product{
		ID:         id,
		CategoryID: categoryID,
		Name:       name,
		Price:      decimal.RequireFromString(price),
		Stock:      stock,
	}
	return id
}

// AddUser inserta un usuario.
func (s *Store) AddUser(u entity.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.users[u.ID] = u
}

// AddSale inserta una venta directamente en el libro (sin tocar stock).
func (s *Store) AddSale(productID int64, qty int, price string, date time.Time, sellerID *string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID()
	s.st.sales[id] = entity.Sale{
		ID:        id,
		ProductID: productID,
		Quantity:  qty,
		UnitPrice: decimal.RequireFromString(price),
		Date:      date,
		SellerID:  sellerID,
		CreatedAt: date,
	}
	return id
}

// Product devuelve una copia del producto (para aserciones).
func (s *Store) Product(id int64) entity.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.products[id]
}

// SaleCount número de ventas en el libro.
func (s *Store) SaleCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.st.sales)
}

// CartSize número de líneas del carrito de userID.
func (s *Store) CartSize(userID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, it := range s.st.cart {
		if it.UserID == userID {
			n++
		}
	}
	return n
}

// ── Categorías ──────────────────────────────────────────────────────────────

type categoryRepo struct{ s *Store }

func (r categoryRepo) Create(ctx context.Context, c *entity.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c.ID = r.s.nextID()
	r.s.st.categories[c.ID] = *c
	return nil
}

func (r categoryRepo) GetByID(ctx context.Context, id int64) (*entity.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.st.categories[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r categoryRepo) Update(ctx context.Context, c *entity.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.st.categories[c.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.st.categories[c.ID] = *c
	return nil
}

func (r categoryRepo) List(ctx context.Context) ([]*entity.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Category, 0, len(r.s.st.categories))
	for _, c := range r.s.st.categories {
		c := c
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r categoryRepo) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.st.categories[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.st.categories, id)
	for pid, p := range r.s.st.products {
		if p.CategoryID == id {
			r.s.deleteProductLocked(pid)
		}
	}
	return nil
}

// ── Productos ───────────────────────────────────────────────────────────────

type productRepo struct{ s *Store }

func (s *Store) withCategory(p entity.Product) *entity.Product {
	p.CategoryName = s.st.categories[p.CategoryID].Name
	return &p
}

func (s *Store) deleteProductLocked(id int64) {
	delete(s.st.products, id)
	for sid, sale := range s.st.sales {
		if sale.ProductID == id {
			delete(s.st.sales, sid)
		}
	}
	for cid, it := range s.st.cart {
		if it.ProductID == id {
			delete(s.st.cart, cid)
		}
	}
}

func (r productRepo) Create(ctx context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p.ID = r.s.nextID()
	r.s.st.products[p.ID] = *p
	p.CategoryName = r.s.st.categories[p.CategoryID].Name
	return nil
}

func (r productRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.st.products[id]
	if !ok {
		return nil, nil
	}
	return r.s.withCategory(p), nil
}

func (r productRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r productRepo) Update(ctx context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.st.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.st.products[p.ID] = *p
	return nil
}

func (r productRepo) DecrementStock(ctx context.Context, id int64, qty int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.st.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	if p.Stock < qty {
		return domain.ErrInsufficientStock
	}
	p.Stock -= qty
	r.s.st.products[id] = p
	return nil
}

func (r productRepo) List(ctx context.Context, f repository.ProductFilter) ([]*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	q := strings.ToLower(f.Query)
	out := make([]*entity.Product, 0)
	for _, p := range r.s.st.products {
		if f.CategoryID != 0 && p.CategoryID != f.CategoryID {
			continue
		}
		full := r.s.withCategory(p)
		if q != "" && !strings.Contains(strings.ToLower(full.Name), q) && !strings.Contains(strings.ToLower(full.CategoryName), q) {
			continue
		}
		out = append(out, full)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r productRepo) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.st.products[id]; !ok {
		return domain.ErrNotFound
	}
	r.s.deleteProductLocked(id)
	return nil
}

// ── Ventas ──────────────────────────────────────────────────────────────────

type saleRepo struct{ s *Store }

func (r saleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailSaleCreate != nil {
		return r.s.FailSaleCreate
	}
	sale.ID = r.s.nextID()
	if sale.CreatedAt.IsZero() {
		sale.CreatedAt = time.Now()
	}
	r.s.st.sales[sale.ID] = *sale
	return nil
}

func (r saleRepo) List(ctx context.Context, f repository.SaleFilter) ([]entity.SaleRecord, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]entity.SaleRecord, 0)
	for _, sale := range r.s.st.sales {
		p := r.s.st.products[sale.ProductID]
		if f.StartDate != nil && sale.Date.Before(*f.StartDate) {
			continue
		}
		if f.EndDate != nil && sale.Date.After(*f.EndDate) {
			continue
		}
		if f.CategoryID != nil && p.CategoryID != *f.CategoryID {
			continue
		}
		if f.ProductID != nil && sale.ProductID != *f.ProductID {
			continue
		}
		rec := entity.SaleRecord{
			Sale:         sale,
			ProductName:  p.Name,
			CategoryID:   p.CategoryID,
			CategoryName: r.s.st.categories[p.CategoryID].Name,
		}
		if sale.SellerID != nil {
			if u, ok := r.s.st.users[*sale.SellerID]; ok {
				name := u.Username
				rec.SellerUsername = &name
			}
		}
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

// ── Carrito ─────────────────────────────────────────────────────────────────

type cartRepo struct{ s *Store }

func (r cartRepo) GetByUserAndProduct(ctx context.Context, userID string, productID int64) (*entity.CartItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, it := range r.s.st.cart {
		if it.UserID == userID && it.ProductID == productID {
			it := it
			return &it, nil
		}
	}
	return nil, nil
}

func (r cartRepo) GetByIDForUser(ctx context.Context, id int64, userID string) (*entity.CartItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	it, ok := r.s.st.cart[id]
	if !ok || it.UserID != userID {
		return nil, nil
	}
	return &it, nil
}

func (r cartRepo) Create(ctx context.Context, item *entity.CartItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, it := range r.s.st.cart {
		if it.UserID == item.UserID && it.ProductID == item.ProductID {
			return domain.ErrDuplicate
		}
	}
	item.ID = r.s.nextID()
	if item.AddedAt.IsZero() {
		item.AddedAt = time.Now()
	}
	r.s.st.cart[item.ID] = *item
	return nil
}

func (r cartRepo) UpdateQuantity(ctx context.Context, id int64, qty int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	it, ok := r.s.st.cart[id]
	if !ok {
		return domain.ErrNotFound
	}
	it.Quantity = qty
	r.s.st.cart[id] = it
	return nil
}

func (r cartRepo) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.st.cart, id)
	return nil
}

func (r cartRepo) ListLines(ctx context.Context, userID string) ([]entity.CartLine, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]entity.CartLine, 0)
	for _, it := range r.s.st.cart {
		if it.UserID != userID {
			continue
		}
		p := r.s.st.products[it.ProductID]
		out = append(out, entity.CartLine{
			CartItem:     it,
			ProductName:  p.Name,
			UnitPrice:    p.Price,
			ProductStock: p.Stock,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r cartRepo) ListLinesForUpdate(ctx context.Context, userID string) ([]entity.CartLine, error) {
	return r.ListLines(ctx, userID)
}

func (r cartRepo) DeleteByUser(ctx context.Context, userID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, it := range r.s.st.cart {
		if it.UserID == userID {
			delete(r.s.st.cart, id)
		}
	}
	return nil
}

// ── Roles ───────────────────────────────────────────────────────────────────

type roleRepo struct{ s *Store }

func (r roleRepo) Upsert(ctx context.Context, role *entity.Role) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if existing, ok := r.s.st.roles[role.Type]; ok {
		role.ID = existing.ID
	} else {
		role.ID = r.s.nextID()
	}
	cp := *role
	cp.Permissions = append([]string(nil), role.Permissions...)
	r.s.st.roles[role.Type] = cp
	return nil
}

func (r roleRepo) GetByType(ctx context.Context, roleType string) (*entity.Role, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	role, ok := r.s.st.roles[roleType]
	if !ok {
		return nil, nil
	}
	role.Permissions = append([]string(nil), role.Permissions...)
	return &role, nil
}

func (r roleRepo) List(ctx context.Context) ([]*entity.Role, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Role, 0, len(r.s.st.roles))
	for _, t := range entity.RoleTypes {
		if role, ok := r.s.st.roles[t]; ok {
			role := role
			out = append(out, &role)
		}
	}
	return out, nil
}

func (r roleRepo) SetPermissions(ctx context.Context, roleType string, permissions []string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	role, ok := r.s.st.roles[roleType]
	if !ok {
		return domain.ErrNotFound
	}
	role.Permissions = append([]string(nil), permissions...)
	r.s.st.roles[roleType] = role
	return nil
}

// ── Usuarios ────────────────────────────────────────────────────────────────

type userRepo struct{ s *Store }

func (r userRepo) Create(ctx context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.st.users {
		if existing.Username == u.Username {
			return domain.ErrUsernameTaken
		}
	}
	r.s.st.users[u.ID] = *u
	return nil
}

func (r userRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.st.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r userRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.st.users {
		if u.Username == username {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (r userRepo) SetRole(ctx context.Context, id, roleType string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.st.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Role = roleType
	r.s.st.users[id] = u
	return nil
}

func (r userRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.st.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.s.st.users, id)
	for sid, sale := range r.s.st.sales {
		if sale.SellerID != nil && *sale.SellerID == id {
			sale.SellerID = nil
			r.s.st.sales[sid] = sale
		}
	}
	for cid, it := range r.s.st.cart {
		if it.UserID == id {
			delete(r.s.st.cart, cid)
		}
	}
	return nil
}

// ── Reportes ────────────────────────────────────────────────────────────────

type reportRepo struct{ s *Store }

func (r reportRepo) SalesByCategory(ctx context.Context, categoryID *int64) ([]repository.CategorySalesResult, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	byCat := map[int64]*repository.CategorySalesResult{}
	for _, sale := range r.s.st.sales {
		p := r.s.st.products[sale.ProductID]
		if categoryID != nil && p.CategoryID != *categoryID {
			continue
		}
		row, ok := byCat[p.CategoryID]
		if !ok {
			row = &repository.CategorySalesResult{
				CategoryID:   p.CategoryID,
				CategoryName: r.s.st.categories[p.CategoryID].Name,
			}
			for _, other := range r.s.st.products {
				if other.CategoryID == p.CategoryID {
					row.ProductCount++
				}
			}
			byCat[p.CategoryID] = row
		}
		row.SaleCount++
		row.Revenue = row.Revenue.Add(sale.Total())
	}
	out := make([]repository.CategorySalesResult, 0, len(byCat))
	for _, row := range byCat {
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CategoryName < out[j].CategoryName })
	return out, nil
}

func (r reportRepo) SalesByProduct(ctx context.Context) ([]repository.ProductSalesResult, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	byProd := map[int64]*repository.ProductSalesResult{}
	for _, sale := range r.s.st.sales {
		row, ok := byProd[sale.ProductID]
		if !ok {
			p := r.s.st.products[sale.ProductID]
			row = &repository.ProductSalesResult{
				ProductID:    p.ID,
				ProductName:  p.Name,
				CategoryName: r.s.st.categories[p.CategoryID].Name,
			}
			byProd[sale.ProductID] = row
		}
		row.SaleCount++
		row.UnitsSold += sale.Quantity
		row.Revenue = row.Revenue.Add(sale.Total())
	}
	out := make([]repository.ProductSalesResult, 0, len(byProd))
	for _, row := range byProd {
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductName < out[j].ProductName })
	return out, nil
}
