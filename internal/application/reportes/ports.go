package reportes

import "github.com/jmgutierrez/ferreteria-api/internal/application/dto"

// VentasPDFGenerator genera la representación gráfica (PDF) del reporte de
// ventas. La implementación vive en infraestructura (maroto).
type VentasPDFGenerator interface {
	Generate(reporte *dto.ReporteVentasResponse) ([]byte, error)
}
