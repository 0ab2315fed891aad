package inventory

import (
	"context"
	"math"
	"strings"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// ProductUseCase operaciones CRUD simples sobre productos: listar, crear y
// vaciado administrativo. Las mutaciones de stock van por WithdrawUseCase.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// List devuelve todos los productos ordenados por referencia ascendente.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, dto.ToProductResponse(p))
	}
	return out, nil
}

// Create valida e inserta un producto nuevo con alerta_enviada = false.
// stock_minimo ausente o negativo cae a 0; si trae decimales se trunca.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Referencia <= 0 || strings.TrimSpace(in.Nombre) == "" || in.Existencias == nil {
		return nil, domain.ErrInvalidInput
	}
	stock, ok := integralStock(*in.Existencias)
	if !ok {
		return nil, domain.ErrInvalidInput
	}

	minStock := 0
	if in.StockMinimo != nil && !math.IsNaN(*in.StockMinimo) && !math.IsInf(*in.StockMinimo, 0) && *in.StockMinimo >= 0 {
		minStock = int(math.Floor(*in.StockMinimo))
	}

	p := &entity.Product{
		Reference: in.Referencia,
		Name:      in.Nombre,
		Stock:     stock,
		MinStock:  minStock,
		AlertSent: false,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	out := dto.ToProductResponse(p)
	return &out, nil
}

// Clear vacía la tabla de productos (reset administrativo).
func (uc *ProductUseCase) Clear(ctx context.Context) error {
	return uc.repo.Clear(ctx)
}

// integralStock acepta existencias solo como número finito, >= 0 y entero.
func integralStock(s float64) (int, bool) {
	if math.IsNaN(s) || math.IsInf(s, 0) || s < 0 {
		return 0, false
	}
	if s != math.Trunc(s) || s > math.MaxInt32 {
		return 0, false
	}
	return int(s), true
}
