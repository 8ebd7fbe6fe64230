// Package pdf renderiza el reporte de ventas ya calculado en un documento A4.
//
// Layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Reporte de Ventas │ Fecha de generación            │
//	│  Filtros aplicados                                          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Métrica | Valor                                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  POR CATEGORÍA: Categoría | Cantidad | Ingreso | Promedio   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/application/reporting"
)

var _ reporting.ReportPDFGenerator = (*MarotoReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorStripe  = &props.Color{Red: 235, Green: 241, Blue: 247}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa reporting.ReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	storeName string
	printer   *message.Printer
}

// NewMarotoReportGenerator construye el generador. storeName aparece como autor del documento.
func NewMarotoReportGenerator(storeName string) *MarotoReportGenerator {
	return &MarotoReportGenerator{
		storeName: storeName,
		printer:   message.NewPrinter(language.Spanish),
	}
}

// GenerateSalesReport genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateSalesReport(report *dto.SalesReportDTO) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("pdf: reporte nil")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Reporte de Ventas", true).
		WithAuthor(g.storeName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	if f := describeFilters(report.Filters); f != "" {
		m.AddRows(row.New(6).Add(col.New(12).Add(
			text.New("Filtros: "+f, props.Text{Size: 8, Color: colorGray, Top: 1}),
		)))
	}
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(sectionTitle("Resumen"))
	m.AddRows(tableHeader([]string{"Métrica", "Valor"}, []int{6, 6}))
	for i, r := range g.summaryRows(report) {
		m.AddRows(stripe(i, r))
	}

	if len(report.ByCategory) > 0 {
		m.AddRows(row.New(6))
		m.AddRows(sectionTitle("Ventas por Categoría"))
		m.AddRows(tableHeader([]string{"Categoría", "Cantidad", "Ingreso Total", "Promedio"}, []int{4, 2, 3, 3}))
		for i, c := range report.ByCategory {
			m.AddRows(stripe(i, row.New(7).Add(
				cell(c.CategoryName, 4, align.Left),
				cell(fmt.Sprintf("%d", c.Count), 2, align.Center),
				cell(g.money(c.Revenue), 3, align.Right),
				cell(g.money(c.Average), 3, align.Right),
			)))
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(report *dto.SalesReportDTO) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("Reporte de Ventas", props.Text{
				Style: fontstyle.Bold, Size: 16, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+report.GeneratedAt, props.Text{
				Size: 8, Align: align.Right, Color: colorGray, Top: 6,
			}),
		),
	)
}

func (g *MarotoReportGenerator) summaryRows(report *dto.SalesReportDTO) []core.Row {
	top := "N/A"
	if report.TopSeller != nil {
		top = fmt.Sprintf("%s (%d uds.)", report.TopSeller.Username, report.TopSeller.Units)
	}
	pair := func(k, v string) core.Row {
		return row.New(7).Add(cell(k, 6, align.Left), cell(v, 6, align.Right))
	}
	return []core.Row{
		pair("Total de ventas", fmt.Sprintf("%d", report.TotalSales)),
		pair("Ingreso total", g.money(report.TotalRevenue)),
		pair("Cantidad de productos", fmt.Sprintf("%d", report.ProductCount)),
		pair("Vendedor top", top),
	}
}

func sectionTitle(title string) core.Row {
	return row.New(9).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Top: 2}),
	))
}

func tableHeader(labels []string, sizes []int) core.Row {
	cols := make([]core.Col, 0, len(labels))
	for i, l := range labels {
		a := align.Right
		if i == 0 {
			a = align.Left
		}
		cols = append(cols, col.New(sizes[i]).Add(text.New(l, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: a, Color: colorWhite, Top: 2, Left: 2, Right: 2,
		})))
	}
	return row.New(8).Add(cols...).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

func cell(s string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(s, props.Text{Size: 9, Align: a, Top: 1.5, Left: 2, Right: 2}))
}

// stripe alterna el fondo de las filas pares.
func stripe(i int, r core.Row) core.Row {
	if i%2 == 1 {
		return r.WithStyle(&props.Cell{BackgroundColor: colorStripe})
	}
	return r
}

// ── helpers ───────────────────────────────────────────────────────────────────

// money formatea con separadores es: 1234567.5 → "$1.234.567,50".
func (g *MarotoReportGenerator) money(v float64) string {
	return g.printer.Sprintf("$%.2f", v)
}

func describeFilters(f dto.ReportFilters) string {
	var parts []string
	if f.StartDate != "" {
		parts = append(parts, "desde "+f.StartDate)
	}
	if f.EndDate != "" {
		parts = append(parts, "hasta "+f.EndDate)
	}
	if f.CategoryID != nil {
		parts = append(parts, fmt.Sprintf("categoría #%d", *f.CategoryID))
	}
	if f.ProductID != nil {
		parts = append(parts, fmt.Sprintf("producto #%d", *f.ProductID))
	}
	return strings.Join(parts, ", ")
}
