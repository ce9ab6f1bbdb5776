package reportes

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"
)

// ExportUseCase exporta el reporte de ventas a PDF y CSV para descarga.
type ExportUseCase struct {
	reportes  *ReporteUseCase
	generator VentasPDFGenerator
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(reportes *ReporteUseCase, generator VentasPDFGenerator) *ExportUseCase {
	return &ExportUseCase{reportes: reportes, generator: generator}
}

// VentasPDF genera el PDF del reporte de ventas del rango.
// Retorna los bytes y el nombre de archivo sugerido.
func (uc *ExportUseCase) VentasPDF(ctx context.Context, desde, hasta time.Time) ([]byte, string, error) {
	reporte, err := uc.reportes.ReporteVentas(ctx, desde, hasta)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err := uc.generator.Generate(reporte)
	if err != nil {
		return nil, "", fmt.Errorf("exportar PDF: %w", err)
	}
	filename := fmt.Sprintf("reporte-ventas-%s.pdf", reporte.Hasta.Format("2006-01-02"))
	return pdfBytes, filename, nil
}

// VentasCSV genera el CSV del reporte de ventas del rango: una fila por día
// más una fila final de totales.
func (uc *ExportUseCase) VentasCSV(ctx context.Context, desde, hasta time.Time) ([]byte, string, error) {
	reporte, err := uc.reportes.ReporteVentas(ctx, desde, hasta)
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"dia", "ventas", "total"}); err != nil {
		return nil, "", err
	}
	for _, d := range reporte.PorDia {
		row := []string{d.Dia, strconv.Itoa(d.Cuenta), d.Total.StringFixed(2)}
		if err := w.Write(row); err != nil {
			return nil, "", err
		}
	}
	if err := w.Write([]string{"total", strconv.Itoa(reporte.CuentaTotal), reporte.Total.StringFixed(2)}); err != nil {
		return nil, "", err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("reporte-ventas-%s.csv", reporte.Hasta.Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}
