package inventory

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando un
// repositorio atado a esa tx. Garantiza atomicidad para la salida de stock:
// si fn devuelve error, todo lo hecho dentro (decremento y marca de alerta)
// se deshace.
type TxRunner interface {
	Run(ctx context.Context, fn func(repo repository.ProductRepository) error) error
}

// Notifier envía la alerta de stock mínimo a un destinatario preconfigurado.
// Un solo intento por llamada, sin reintentos; un fallo debe devolverse como
// error (el caso de uso decide revertir la transacción).
type Notifier interface {
	SendLowStockAlert(ctx context.Context, p *entity.Product) error
}
