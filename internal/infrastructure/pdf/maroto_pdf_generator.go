// Package pdf genera los documentos imprimibles de la tienda: comprobante de
// pedido (venta web o POS) y orden de compra a proveedor.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Tienda + contacto   │  Título + Código + Fecha      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TERCERO: Cliente o proveedor + dirección + teléfono         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | P.Unit | Subtotal                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Total / Pagado / Saldo + estado de pago            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR con el código del documento + leyenda            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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
	"github.com/shopspring/decimal"

	"github.com/jhoicas/furnistore-api/internal/application/ports"
	"github.com/jhoicas/furnistore-api/internal/domain/payment"
	appconfig "github.com/jhoicas/furnistore-api/pkg/config"
	"github.com/jhoicas/furnistore-api/pkg/money"
)

var _ ports.PDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 94, Green: 64, Blue: 36}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa ports.PDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	store appconfig.StoreConfig
}

// NewMarotoPDFGenerator construye el generador con el membrete de la tienda.
func NewMarotoPDFGenerator(store appconfig.StoreConfig) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{store: store}
}

// docLine es una fila de la tabla de productos, común a pedidos y órdenes de compra.
type docLine struct {
	Quantity  int
	Name      string
	UnitPrice decimal.Decimal
	Total     decimal.Decimal
}

// party es el tercero del documento (cliente o proveedor).
type party struct {
	Title   string
	Name    string
	Address string
	Phone   string
	Email   string
}

// document reúne lo que imprime render.
type document struct {
	Title   string
	Code    string
	Date    time.Time
	Status  string
	Party   party
	Lines   []docLine
	Summary payment.Summary
	Legend  string
}

// OrderReceiptPDF comprobante de un pedido con su estado de pago.
func (g *MarotoPDFGenerator) OrderReceiptPDF(_ context.Context, r ports.OrderReceipt) ([]byte, error) {
	o := r.Order
	p := party{Title: "CLIENTE", Name: "Cliente de mostrador", Address: o.Address, Phone: o.Phone}
	if c := r.Customer; c != nil {
		p.Name = c.FullName
		p.Email = c.Email
		p.Address = nonEmpty(o.Address, c.Address)
		p.Phone = nonEmpty(o.Phone, c.PhoneNumber)
	}
	lines := make([]docLine, 0, len(o.Details))
	for _, d := range o.Details {
		lines = append(lines, docLine{Quantity: d.Quantity, Name: d.ProductName, UnitPrice: d.ProductPrice, Total: d.TotalPrice})
	}
	return g.render(document{
		Title:   "COMPROBANTE DE PEDIDO",
		Code:    nonEmpty(o.Code, o.ID),
		Date:    o.CreatedAt,
		Status:  o.Status,
		Party:   p,
		Lines:   lines,
		Summary: r.Summary,
		Legend:  "Gracias por su compra. Conserve este comprobante para garantías y devoluciones.",
	})
}

// PurchaseOrderPDF documento de la orden de compra para el proveedor.
func (g *MarotoPDFGenerator) PurchaseOrderPDF(_ context.Context, d ports.PurchaseOrderDocument) ([]byte, error) {
	po := d.PurchaseOrder
	p := party{Title: "PROVEEDOR", Name: "-"}
	if s := d.Supplier; s != nil {
		p = party{Title: "PROVEEDOR", Name: s.Name, Address: s.Address, Phone: s.Phone, Email: s.Email}
	}
	lines := make([]docLine, 0, len(po.Details))
	for _, l := range po.Details {
		lines = append(lines, docLine{Quantity: l.Quantity, Name: l.ProductName, UnitPrice: l.ProductPrice, Total: l.TotalPrice})
	}
	return g.render(document{
		Title:   "ORDEN DE COMPRA",
		Code:    nonEmpty(po.Code, po.ID),
		Date:    po.CreatedAt,
		Status:  po.Status + " / " + po.WarehouseStatus,
		Party:   p,
		Lines:   lines,
		Summary: d.Summary,
		Legend:  "Favor citar el código de la orden en la factura y en la guía de entrega.",
	})
}

func (g *MarotoPDFGenerator) render(doc document) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(doc.Title+" "+doc.Code, true).
		WithAuthor(g.store.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(partyRow(doc.Party))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableDetailRows(doc.Lines)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(doc.Summary))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(doc))

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: tienda + contacto (izq) y título + código + fecha (der).
func (g *MarotoPDFGenerator) headerRow(doc document) core.Row {
	contact := joinNonEmpty("   |   ", g.store.Address, g.store.Phone, g.store.Email)

	return row.New(20).Add(
		col.New(7).Add(
			text.New(g.store.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(contact, props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(doc.Title, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(doc.Code, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 6,
			}),
			text.New("Fecha: "+doc.Date.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGray,
			}),
			text.New("Estado: "+doc.Status, props.Text{
				Size: 8, Align: align.Right, Top: 17, Color: colorGray,
			}),
		),
	)
}

// partyRow: datos del cliente o proveedor.
func partyRow(p party) core.Row {
	return row.New(16).Add(
		col.New(12).Add(
			text.New(p.Title, props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(p.Name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Dirección: %s   |   Tel: %s   |   Email: %s",
				nonEmpty(p.Address, "-"),
				nonEmpty(p.Phone, "-"),
				nonEmpty(p.Email, "-"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de productos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).WithStyle(&props.Cell{BackgroundColor: colorPrimary}).Add(
		h("Cant.", 1, align.Center),
		h("Producto", 6, align.Left),
		h("Precio Unit.", 2, align.Right),
		h("Subtotal", 3, align.Right),
	)
}

// tableDetailRows: una fila por línea.
func tableDetailRows(lines []docLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, d := range lines {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				strconv.Itoa(d.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				d.Name,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				vnd(d.UnitPrice),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				vnd(d.Total),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: total, pagado y saldo alineados a la derecha.
func totalsRow(s payment.Summary) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top,
		})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}
	grand := func(s string, top float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1, Top: top,
		})
	}

	return row.New(24).Add(
		col.New(4).Add(
			text.New("Estado de pago: "+s.PaymentStatus, props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 1, Color: colorGray,
			}),
		),
		col.New(4).Add(
			label("TOTAL:", 1),
			label("Pagado:", 8),
			label("Saldo:", 15),
		),
		col.New(4).Add(
			grand(vnd(s.Total), 1),
			value(vnd(s.TotalPaid), 8),
			grand(vnd(s.Remaining), 15),
		),
	)
}

// footerRow: QR con el código del documento + leyenda.
func footerRow(doc document) core.Row {
	return row.New(36).Add(
		col.New(3).Add(code.NewQr(doc.Code, props.Rect{
			Percent: 90,
			Center:  true,
		})),
		col.New(9).Add(
			text.New(doc.Code, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6, Left: 3, Color: colorPrimary,
			}),
			text.New(doc.Legend, props.Text{
				Size: 8, Top: 14, Left: 3, Color: colorGray,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// vnd formatea el importe; las fuentes base del PDF no incluyen el símbolo ₫.
func vnd(d decimal.Decimal) string {
	return strings.Replace(money.FormatVND(d), "₫", "VND", 1)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
