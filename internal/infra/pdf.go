package infra

// pdf.go generates A5 picking tickets for warehouse staff using go-pdf/fpdf:
// order code header, state and dates, then the line-item table with product
// code, name, quantity and unit price.
//
// The output file is saved to storagePath/pedido_{codigo}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrianLames/Sistema-Pedidos/internal/dto"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

// GenerarPedidoPDF renders the picking ticket for an order and returns the
// absolute path to the generated file.
func GenerarPedidoPDF(pedido *dto.PedidoInfo, detalles []dto.DetalleConProducto, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("pedido_%s.pdf", pedido.CodigoPedido)
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A5", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 20

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(contentW, 8, "Orden de Pedido", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentW, 7, pedido.CodigoPedido, "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, "Estado: "+pedido.Estado, "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 5, "Creado: "+pedido.FechaCreacion.Format("02/01/2006 15:04"), "", 1, "L", false, 0, "")
	if pedido.FechaEntrega != nil {
		pdf.CellFormat(contentW, 5, "Entrega: "+pedido.FechaEntrega.Format("02/01/2006"), "", 1, "L", false, 0, "")
	}
	if pedido.Observaciones != "" {
		pdf.MultiCell(contentW, 5, "Observaciones: "+pedido.Observaciones, "", "L", false)
	}
	pdf.Ln(2)

	pdf.Line(10, pdf.GetY(), pageW-10, pdf.GetY())
	pdf.Ln(2)

	col1 := contentW * 0.20 // code
	col2 := contentW * 0.42 // name
	col3 := contentW * 0.14 // qty
	col4 := contentW * 0.24 // unit price

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1, 6, "Codigo", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 6, "Producto", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 6, "Cant", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col4, 6, "P. Unit", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	total := decimal.Zero
	for _, d := range detalles {
		nombre := d.Nombre
		if len(nombre) > 28 {
			nombre = nombre[:27] + "…"
		}
		pdf.CellFormat(col1, 6, d.Codigo, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 6, nombre, "", 0, "L", false, 0, "")
		pdf.CellFormat(col3, 6, fmt.Sprintf("x%d", d.Cantidad), "", 0, "C", false, 0, "")
		pdf.CellFormat(col4, 6, "$"+d.PrecioUnitario.StringFixed(2), "", 1, "R", false, 0, "")
		total = total.Add(d.PrecioUnitario.Mul(decimal.NewFromInt(int64(d.Cantidad))))
	}

	pdf.Ln(2)
	pdf.Line(10, pdf.GetY(), pageW-10, pdf.GetY())
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(col1+col2+col3, 7, "TOTAL:", "", 0, "L", false, 0, "")
	pdf.CellFormat(col4, 7, "$"+total.StringFixed(2), "", 1, "R", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	return filePath, nil
}
