package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `referencia, nombre, existencias, stock_minimo, alerta_enviada`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// List devuelve todos los productos ordenados por referencia ascendente.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM productos ORDER BY referencia ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.Reference, &p.Name, &p.Stock, &p.MinStock, &p.AlertSent); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// GetByReference obtiene un producto por referencia, o nil si no existe.
func (r *ProductRepo) GetByReference(ctx context.Context, reference int) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM productos WHERE referencia = $1`
	var p entity.Product
	err := r.q.QueryRow(ctx, query, reference).Scan(&p.Reference, &p.Name, &p.Stock, &p.MinStock, &p.AlertSent)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return &p, nil
}

// Create persiste un nuevo producto con alerta_enviada = false.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO productos (referencia, nombre, existencias, stock_minimo, alerta_enviada)
		VALUES ($1, $2, $3, $4, false)`
	_, err := r.q.Exec(ctx, query, p.Reference, p.Name, p.Stock, p.MinStock)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	p.AlertSent = false
	return nil
}

// DecrementStock resta quantity solo si las existencias alcanzan, en un único
// UPDATE condicional: el lock de fila del UPDATE es el punto de serialización
// por referencia, dos salidas concurrentes no pueden dejar existencias < 0.
func (r *ProductRepo) DecrementStock(ctx context.Context, reference, quantity int) (*entity.Product, error) {
	query := `
		UPDATE productos
		SET existencias = existencias - $1
		WHERE referencia = $2 AND existencias >= $1
		RETURNING ` + productColumns
	var p entity.Product
	err := r.q.QueryRow(ctx, query, quantity, reference).Scan(&p.Reference, &p.Name, &p.Stock, &p.MinStock, &p.AlertSent)
	if err == nil {
		return &p, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("decrement existencias: %w", err)
	}

	// Sin fila afectada: distinguir producto inexistente de stock insuficiente.
	existing, err := r.GetByReference(ctx, reference)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	return nil, domain.ErrInsufficientStock
}

// MarkAlertSent marca alerta_enviada = true. Idempotente.
func (r *ProductRepo) MarkAlertSent(ctx context.Context, reference int) error {
	_, err := r.q.Exec(ctx, `UPDATE productos SET alerta_enviada = true WHERE referencia = $1`, reference)
	if err != nil {
		return fmt.Errorf("marcar alerta_enviada: %w", err)
	}
	return nil
}

// Clear elimina todos los productos y reinicia la secuencia del id interno.
func (r *ProductRepo) Clear(ctx context.Context) error {
	_, err := r.q.Exec(ctx, `TRUNCATE TABLE productos RESTART IDENTITY CASCADE`)
	if err != nil {
		return fmt.Errorf("vaciar productos: %w", err)
	}
	return nil
}
