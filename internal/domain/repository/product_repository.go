package repository

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// ProductRepository puerto de persistencia de productos.
// Las implementaciones deben garantizar que DecrementStock es atómico por
// referencia: dos llamadas concurrentes sobre la misma referencia no pueden
// dejar las existencias por debajo de cero.
type ProductRepository interface {
	// List devuelve todos los productos ordenados por referencia ascendente.
	List(ctx context.Context) ([]*entity.Product, error)

	// GetByReference devuelve el producto o nil si no existe.
	GetByReference(ctx context.Context, reference int) (*entity.Product, error)

	// Create inserta un producto nuevo con alerta_enviada = false.
	// Devuelve domain.ErrDuplicate si la referencia ya existe.
	Create(ctx context.Context, p *entity.Product) error

	// DecrementStock resta quantity a las existencias solo si alcanzan
	// (existencias >= quantity) y devuelve el producto actualizado.
	// Devuelve domain.ErrNotFound si la referencia no existe y
	// domain.ErrInsufficientStock si no hay existencias suficientes;
	// en ambos casos no muta nada.
	DecrementStock(ctx context.Context, reference, quantity int) (*entity.Product, error)

	// MarkAlertSent marca alerta_enviada = true. Idempotente.
	MarkAlertSent(ctx context.Context, reference int) error

	// Clear elimina todos los productos y reinicia la secuencia interna.
	Clear(ctx context.Context) error
}
