package dto

// ReportFilters filtros activos devueltos al cliente. Solo aparecen los que se aplicaron.
type ReportFilters struct {
	StartDate  string `json:"inicio,omitempty"`
	EndDate    string `json:"fin,omitempty"`
	CategoryID *int64 `json:"categoria,omitempty"`
	ProductID  *int64 `json:"producto,omitempty"`
}

// TopSellerDTO vendedor con más unidades vendidas.
type TopSellerDTO struct {
	Username string `json:"username"`
	Units    int    `json:"unidades"`
}

// CategoryBreakdownDTO desglose por categoría dentro del reporte de ventas.
type CategoryBreakdownDTO struct {
	CategoryID   int64   `json:"categoria_id"`
	CategoryName string  `json:"categoria"`
	Count        int     `json:"cantidad"`
	Revenue      float64 `json:"ingreso_total"`
	Average      float64 `json:"promedio"`
}

// SalesReportDTO reporte de ventas completo. Los montos son float64: solo se usan para mostrar.
type SalesReportDTO struct {
	TotalSales   int                    `json:"total_ventas"`
	TotalRevenue float64                `json:"ingreso_total"`
	ProductCount int                    `json:"cantidad_productos"`
	TopSeller    *TopSellerDTO          `json:"vendedor_top"`
	ByCategory   []CategoryBreakdownDTO `json:"ventas_por_categoria"`
	Sales        []SaleResponse         `json:"ventas"`
	Filters      ReportFilters          `json:"filtros"`
	GeneratedAt  string                 `json:"generado_en"`
}

// CategoryReportRowDTO fila del reporte por categoría.
type CategoryReportRowDTO struct {
	CategoryID   int64   `json:"categoria_id"`
	CategoryName string  `json:"categoria"`
	SaleCount    int     `json:"total_ventas"`
	Revenue      float64 `json:"ingreso_total"`
	ProductCount int     `json:"cantidad_productos"`
}

// CategoryReportDTO reporte por categoría.
type CategoryReportDTO struct {
	Rows       []CategoryReportRowDTO `json:"categorias"`
	CategoryID *int64                 `json:"categoria_seleccionada,omitempty"`
}

// ProductReportRowDTO fila del reporte por producto.
type ProductReportRowDTO struct {
	ProductID    int64   `json:"producto_id"`
	ProductName  string  `json:"producto"`
	CategoryName string  `json:"categoria"`
	SaleCount    int     `json:"total_ventas"`
	UnitsSold    int     `json:"unidades_vendidas"`
	Revenue      float64 `json:"ingreso_total"`
	Average      float64 `json:"promedio_venta"`
}

// ProductReportDTO reporte por producto.
type ProductReportDTO struct {
	Rows []ProductReportRowDTO `json:"productos"`
}
