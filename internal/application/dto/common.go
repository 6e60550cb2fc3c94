package dto

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit" validate:"min=1,max=100"`
	Offset int `query:"offset" validate:"min=0"`
}

// DefaultPage aplica valores por defecto si Limit/Offset son cero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
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

// Envelope cuerpo estándar de TODAS las respuestas del API:
// { success, data, message }. La consola trata success:false como fallo
// recuperable y muestra message al usuario.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Code    string      `json:"code,omitempty"`
}

// OK envuelve una respuesta exitosa.
func OK(data interface{}) Envelope {
	return Envelope{Success: true, Data: data}
}

// Fail envuelve un error con código y mensaje para el usuario.
func Fail(code, message string) Envelope {
	return Envelope{Success: false, Code: code, Message: message}
}
