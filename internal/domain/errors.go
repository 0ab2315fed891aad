package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("producto no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("referencia duplicada")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrInsufficientStock = errors.New("no hay existencias suficientes")
	ErrAlertDelivery     = errors.New("no se pudo enviar la alerta de stock")
)
