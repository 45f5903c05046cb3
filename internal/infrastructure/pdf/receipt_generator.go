// Package pdf implementa la generación del comprobante de venta POS.
//
// Layout del ticket (A5 vertical, estilo impresora de recibos):
//
//	┌──────────────────────────────┐
//	│  NOMBRE TIENDA               │
//	│  Código + Fecha              │
//	│  ──────────────────────────  │
//	│  Cant | Producto | Subtotal  │
//	│  ──────────────────────────  │
//	│  Descuentos / TOTAL          │
//	│  Pagos: efectivo / tarjeta   │
//	│  CÓDIGO DE BARRAS (code128)  │
//	└──────────────────────────────┘
package pdf

import (
	"fmt"

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

	"github.com/jhoicas/Pos-api/internal/application/dto"
	"github.com/jhoicas/Pos-api/internal/application/order"
)

var _ order.ReceiptGenerator = (*ReceiptGenerator)(nil)

var colorGray = &props.Color{Red: 100, Green: 100, Blue: 100}

// ReceiptGenerator implementa order.ReceiptGenerator usando Maroto v2.
type ReceiptGenerator struct {
	shopName string
}

// NewReceiptGenerator construye el generador. shopName encabeza el ticket.
func NewReceiptGenerator(shopName string) *ReceiptGenerator {
	return &ReceiptGenerator{shopName: shopName}
}

// GenerateReceiptPDF genera el comprobante y devuelve sus bytes.
func (g *ReceiptGenerator) GenerateReceiptPDF(o *dto.OrderDetails) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(6).WithRightMargin(6).
		WithTopMargin(6).WithBottomMargin(6).
		WithDefaultFont(&props.Font{Family: "courier", Size: 8}).
		WithTitle("Comprobante de venta", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRows(g.shopName, o)...)
	m.AddRows(line.NewRow(1, props.Line{Thickness: 0.3}))
	m.AddRows(itemHeaderRow())
	for _, r := range itemRows(o.FinishedGoods) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(1, props.Line{Thickness: 0.3}))
	m.AddRows(totalsRows(o)...)
	m.AddRows(line.NewRow(2))
	m.AddRows(barcodeRow(o.TransactionCode))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar comprobante: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRows(shopName string, o *dto.OrderDetails) []core.Row {
	return []core.Row{
		row.New(8).Add(
			col.New(12).Add(
				text.New(shopName, props.Text{Style: fontstyle.Bold, Size: 11, Align: align.Center}),
			),
		),
		row.New(8).Add(
			col.New(6).Add(
				text.New(o.TransactionCode, props.Text{Style: fontstyle.Bold, Size: 8}),
			),
			col.New(6).Add(
				text.New(o.TransactionDateTime.Format("02/01/2006 15:04"), props.Text{
					Size: 8, Align: align.Right, Color: colorGray,
				}),
			),
		),
	}
}

func itemHeaderRow() core.Row {
	return row.New(5).Add(
		col.New(2).Add(text.New("Cant", props.Text{Style: fontstyle.Bold, Size: 7})),
		col.New(6).Add(text.New("Producto", props.Text{Style: fontstyle.Bold, Size: 7})),
		col.New(4).Add(text.New("Subtotal", props.Text{Style: fontstyle.Bold, Size: 7, Align: align.Right})),
	)
}

func itemRows(lines []dto.FinishedGoodLineDTO) []core.Row {
	rows := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		subtotal := l.SellingPrice.Mul(l.FinishedGoodQty).Sub(l.DiscountAmount)
		rows = append(rows, row.New(5).Add(
			col.New(2).Add(text.New(l.FinishedGoodQty.String(), props.Text{Size: 7})),
			col.New(6).Add(text.New(l.FinishedGoodID, props.Text{Size: 7})),
			col.New(4).Add(text.New(subtotal.StringFixed(2), props.Text{Size: 7, Align: align.Right})),
		))
	}
	return rows
}

func totalsRows(o *dto.OrderDetails) []core.Row {
	rows := []core.Row{
		row.New(6).Add(
			col.New(8).Add(text.New("TOTAL", props.Text{Style: fontstyle.Bold, Size: 10})),
			col.New(4).Add(text.New(o.BillTotal.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
			})),
		),
	}
	for _, p := range []struct {
		label  string
		amount decimal.Decimal
	}{
		{"Efectivo", o.CashAmount},
		{"Tarjeta", o.CardAmount},
		{"Billetera", o.WalletIn},
		{"Otro", o.OtherPayment},
	} {
		if p.amount.IsZero() {
			continue
		}
		rows = append(rows, row.New(4).Add(
			col.New(8).Add(text.New(p.label, props.Text{Size: 7, Color: colorGray})),
			col.New(4).Add(text.New(p.amount.StringFixed(2), props.Text{
				Size: 7, Align: align.Right, Color: colorGray,
			})),
		))
	}
	return rows
}

func barcodeRow(transactionCode string) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			code.NewBar(transactionCode, props.Barcode{Center: true, Percent: 80}),
		),
	)
}
