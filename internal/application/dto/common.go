package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// OkResponse respuesta simple de confirmación.
type OkResponse struct {
	Ok      bool   `json:"ok"`
	Mensaje string `json:"mensaje,omitempty"`
}
