package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var (
	_ repository.ProductRepository = (*Store)(nil)
	_ repository.ProductRepository = (*txRepo)(nil)
	_ inventory.TxRunner           = (*TxRunner)(nil)
)

// Store repositorio de productos en memoria, para tests y arranques sin
// PostgreSQL. Un mutex global serializa todas las mutaciones: el decremento
// condicional queda linealizable por referencia, igual que el lock de fila
// del UPDATE en la implementación PostgreSQL.
type Store struct {
	mu       sync.Mutex
	products map[int]*entity.Product
}

// NewStore construye el repositorio vacío.
func NewStore() *Store {
	return &Store{products: make(map[int]*entity.Product)}
}

func (s *Store) List(ctx context.Context) ([]*entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list()
}

func (s *Store) GetByReference(ctx context.Context, reference int) (*entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getByReference(reference)
}

func (s *Store) Create(ctx context.Context, p *entity.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.create(p)
}

func (s *Store) DecrementStock(ctx context.Context, reference, quantity int) (*entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.decrementStock(reference, quantity)
}

func (s *Store) MarkAlertSent(ctx context.Context, reference int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.markAlertSent(reference)
}

func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = make(map[int]*entity.Product)
	return nil
}

// Implementaciones sin lock: el caller ya sostiene s.mu.

func (s *Store) list() ([]*entity.Product, error) {
	list := make([]*entity.Product, 0, len(s.products))
	for _, p := range s.products {
		list = append(list, cloneProduct(p))
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Reference < list[j].Reference })
	return list, nil
}

func (s *Store) getByReference(reference int) (*entity.Product, error) {
	p, ok := s.products[reference]
	if !ok {
		return nil, nil
	}
	return cloneProduct(p), nil
}

func (s *Store) create(p *entity.Product) error {
	if _, ok := s.products[p.Reference]; ok {
		return domain.ErrDuplicate
	}
	stored := cloneProduct(p)
	stored.AlertSent = false
	s.products[p.Reference] = stored
	p.AlertSent = false
	return nil
}

func (s *Store) decrementStock(reference, quantity int) (*entity.Product, error) {
	p, ok := s.products[reference]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if p.Stock < quantity {
		return nil, domain.ErrInsufficientStock
	}
	p.Stock -= quantity
	return cloneProduct(p), nil
}

func (s *Store) markAlertSent(reference int) error {
	if p, ok := s.products[reference]; ok {
		p.AlertSent = true
	}
	return nil
}

// snapshot copia profunda del estado actual, para rollback de TxRunner.
func (s *Store) snapshot() map[int]*entity.Product {
	snap := make(map[int]*entity.Product, len(s.products))
	for ref, p := range s.products {
		snap[ref] = cloneProduct(p)
	}
	return snap
}

func cloneProduct(p *entity.Product) *entity.Product {
	if p == nil {
		return nil
	}
	clone := *p
	return &clone
}

// TxRunner unidad de trabajo sobre Store: toma el mutex global durante toda
// la transacción (transacción de escritor único) y restaura un snapshot si
// fn devuelve error, imitando el Rollback de PostgreSQL.
type TxRunner struct {
	store *Store
}

// NewTxRunner construye el runner sobre el store.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

// Run ejecuta fn con un repositorio atado a la "transacción". Con error de fn
// el estado del store vuelve al snapshot previo (todo o nada).
func (r *TxRunner) Run(ctx context.Context, fn func(repo repository.ProductRepository) error) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	snap := r.store.snapshot()
	if err := fn(&txRepo{store: r.store}); err != nil {
		r.store.products = snap
		return err
	}
	return nil
}

// txRepo repositorio dentro de una transacción: opera sin tomar el mutex
// porque Run ya lo sostiene.
type txRepo struct {
	store *Store
}

func (r *txRepo) List(ctx context.Context) ([]*entity.Product, error) {
	return r.store.list()
}

func (r *txRepo) GetByReference(ctx context.Context, reference int) (*entity.Product, error) {
	return r.store.getByReference(reference)
}

func (r *txRepo) Create(ctx context.Context, p *entity.Product) error {
	return r.store.create(p)
}

func (r *txRepo) DecrementStock(ctx context.Context, reference, quantity int) (*entity.Product, error) {
	return r.store.decrementStock(reference, quantity)
}

func (r *txRepo) MarkAlertSent(ctx context.Context, reference int) error {
	return r.store.markAlertSent(reference)
}

func (r *txRepo) Clear(ctx context.Context) error {
	r.store.products = make(map[int]*entity.Product)
	return nil
}
