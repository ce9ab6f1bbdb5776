package dto

// Envelope es la forma de toda respuesta de la API: {success, data|message}.
// El panel web consume exactamente este contrato.
type Envelope struct {
	Success bool              `json:"success"`
	Data    interface{}       `json:"data,omitempty"`
	Message string            `json:"message,omitempty"`
	Code    string            `json:"code,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"` // mapa campo → mensaje de validación
}

// OK construye un sobre de éxito.
func OK(data interface{}) Envelope {
	return Envelope{Success: true, Data: data}
}

// Error construye un sobre de error con código estable y mensaje legible.
func Error(code, message string) Envelope {
	return Envelope{Success: false, Code: code, Message: message}
}

// ValidationError construye un sobre con el mapa campo → mensaje.
func ValidationError(errs map[string]string) Envelope {
	return Envelope{Success: false, Code: "VALIDATION", Message: "datos inválidos", Errors: errs}
}

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// DefaultPage aplica valores por defecto si Limit/Offset son cero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total,omitempty"`
}
