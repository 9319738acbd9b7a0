// Package pdf genera la remisión imprimible de un documento de movimiento
// de almacén: encabezado con número/tipo/estado, bodegas origen y destino,
// y la tabla de posiciones con lote y fechas de trazabilidad.
package pdf

import (
	"context"
	"fmt"

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

	appmovement "github.com/jhoicas/almacen-api/internal/application/movement"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 25, Green: 80, Blue: 60}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ appmovement.DocumentPDFGenerator = (*MarotoDocumentGenerator)(nil)

// MarotoDocumentGenerator implementa movement.DocumentPDFGenerator usando Maroto v2.
type MarotoDocumentGenerator struct{}

// NewMarotoDocumentGenerator construye el generador.
func NewMarotoDocumentGenerator() *MarotoDocumentGenerator { return &MarotoDocumentGenerator{} }

// GenerateDocumentPDF genera el PDF de la remisión y devuelve sus bytes.
func (g *MarotoDocumentGenerator) GenerateDocumentPDF(
	_ context.Context,
	doc *entity.Document,
	positions []appmovement.PositionForPDF,
	locationFrom, locationTo *entity.Location,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Remisión de movimiento "+doc.Number, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(locationsRow(locationFrom, locationTo))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableDetailRows(positions) {
		m.AddRows(r)
	}

	generated, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar remisión: %w", err)
	}
	return generated.GetBytes(), nil
}

// headerRow: tipo y número (izq), estado y fecha (der).
func headerRow(doc *entity.Document) core.Row {
	fecha := doc.CreatedAt.Format("02/01/2006")

	return row.New(16).Add(
		col.New(7).Add(
			text.New(typeLabel(doc.Type), props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 1,
			}),
			text.New("Documento: "+doc.Number, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(doc.State, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 1,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// locationsRow: bodega origen y destino según la dirección del documento.
func locationsRow(locationFrom, locationTo *entity.Location) core.Row {
	return row.New(12).Add(
		col.New(6).Add(
			text.New("BODEGA ORIGEN", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(locationLabel(locationFrom), props.Text{Size: 9, Top: 7}),
		),
		col.New(6).Add(
			text.New("BODEGA DESTINO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(locationLabel(locationTo), props.Text{Size: 9, Top: 7}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de posiciones.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Código", 2, align.Left),
		h("Producto", 4, align.Left),
		h("Cantidad", 2, align.Right),
		h("Precio", 2, align.Right),
		h("Lote", 2, align.Center),
	)
}

// tableDetailRows: una fila por posición.
func tableDetailRows(positions []appmovement.PositionForPDF) []core.Row {
	result := make([]core.Row, 0, len(positions))
	for _, p := range positions {
		precio := "—"
		if p.Price != nil {
			precio = "$" + p.Price.StringFixed(2)
		}
		lote := "—"
		if p.Batch != nil {
			lote = *p.Batch
		}
		cantidad := p.Quantity.String()
		if p.UnitMeasure != "" {
			cantidad += " " + p.UnitMeasure
		}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(p.ProductNumber, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(4).Add(text.New(p.ProductName, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(cantidad, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(precio, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(lote, props.Text{Size: 8, Align: align.Center, Top: 1})),
		))
	}
	return result
}

func typeLabel(docType string) string {
	switch docType {
	case entity.DocumentTypeReceipt:
		return "RECEPCIÓN EXTERNA"
	case entity.DocumentTypeRelease:
		return "DESPACHO EXTERNO"
	case entity.DocumentTypeInternalInbound:
		return "ENTRADA INTERNA"
	case entity.DocumentTypeInternalOutbound:
		return "SALIDA INTERNA"
	default:
		return docType
	}
}

func locationLabel(l *entity.Location) string {
	if l == nil {
		return "—"
	}
	return l.Number + " · " + l.Name
}
