package dto

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// Los nombres de campo del API siguen el esquema en español de la tabla:
// referencia, nombre, existencias, stock_minimo, alerta_enviada, cantidad.

// CreateProductRequest entrada para crear un producto.
// Existencias y StockMinimo llegan como número JSON; se exige valor entero
// (la columna es INTEGER). StockMinimo ausente, negativo o no numérico cae a 0.
type CreateProductRequest struct {
	Referencia  int      `json:"referencia" validate:"required,gt=0"`
	Nombre      string   `json:"nombre" validate:"required,min=1,max=200"`
	Existencias *float64 `json:"existencias" validate:"required,gte=0"`
	StockMinimo *float64 `json:"stock_minimo"`
}

// WithdrawRequest entrada para registrar una salida de stock.
type WithdrawRequest struct {
	Cantidad float64 `json:"cantidad"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	Referencia    int    `json:"referencia"`
	Nombre        string `json:"nombre"`
	Existencias   int    `json:"existencias"`
	StockMinimo   int    `json:"stock_minimo"`
	AlertaEnviada bool   `json:"alerta_enviada"`
}

// WithdrawResponse respuesta de una salida registrada.
type WithdrawResponse struct {
	Ok       bool            `json:"ok"`
	Producto ProductResponse `json:"producto"`
}

// ToProductResponse convierte la entidad al DTO de salida.
func ToProductResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		Referencia:    p.Reference,
		Nombre:        p.Name,
		Existencias:   p.Stock,
		StockMinimo:   p.MinStock,
		AlertaEnviada: p.AlertSent,
	}
}
