// Package pdf implementa la generación del albarán de entrega (delivery slip).
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Referencia del documento │ Estado + Fecha           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DESTINATARIO: contacto + fecha programada                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | Ubicación origen                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FIRMAS: quien entrega / quien recibe                        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
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

	"github.com/tu-usuario/almacen-api/internal/application/dto"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// DeliverySlipGenerator genera el albarán de una entrega usando Maroto v2.
type DeliverySlipGenerator struct{}

// NewDeliverySlipGenerator construye el generador.
func NewDeliverySlipGenerator() *DeliverySlipGenerator { return &DeliverySlipGenerator{} }

// GenerateDeliverySlip genera el PDF del albarán y devuelve sus bytes.
func (g *DeliverySlipGenerator) GenerateDeliverySlip(_ context.Context, move *dto.MoveResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Albarán de entrega "+move.Reference, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(move))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(recipientRow(move))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableLineRows(move.MoveLines) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(signatureRow(move))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: referencia (izq) y estado + fecha (der).
func headerRow(move *dto.MoveResponse) core.Row {
	fecha := move.CreatedAt.Format("02/01/2006")
	return row.New(18).Add(
		col.New(7).Add(
			text.New("ALBARÁN DE ENTREGA", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(move.Reference, props.Text{
				Style: fontstyle.Bold, Size: 13, Top: 7,
			}),
		),
		col.New(5).Add(
			text.New("Estado: "+move.Status, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// recipientRow: contacto destinatario y fecha programada.
func recipientRow(move *dto.MoveResponse) core.Row {
	programada := "—"
	if move.ScheduleDate != nil {
		programada = move.ScheduleDate.Format("02/01/2006")
	}
	contacto := move.Contact
	if contacto == "" {
		contacto = "—"
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("DESTINATARIO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(contacto, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New("Fecha programada: "+programada, props.Text{
				Size: 8, Top: 12, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 2, align.Center),
		h("Producto", 7, align.Left),
		h("Ubicación origen", 3, align.Left),
	)
}

// tableLineRows: una fila por línea del documento.
func tableLineRows(lines []dto.MoveLineResponse) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		origen := "—"
		if l.FromLocationID != nil {
			origen = *l.FromLocationID
		}
		nombre := l.ProductName
		if nombre == "" {
			nombre = l.ProductID
		}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				l.Quantity.String(),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(7).Add(text.New(
				nombre,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				origen,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
		))
	}
	return result
}

// signatureRow: QR con la referencia y espacios de firma.
func signatureRow(move *dto.MoveResponse) core.Row {
	return row.New(40).Add(
		col.New(4).Add(code.NewQr(move.Reference, props.Rect{
			Percent: 85,
			Center:  true,
		})),
		col.New(4).Add(
			text.New("Entrega:", props.Text{Style: fontstyle.Bold, Size: 8, Top: 6}),
			text.New("_____________________", props.Text{Size: 9, Top: 24, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("Recibe:", props.Text{Style: fontstyle.Bold, Size: 8, Top: 6}),
			text.New("_____________________", props.Text{Size: 9, Top: 24, Color: colorGray}),
		),
	)
}
