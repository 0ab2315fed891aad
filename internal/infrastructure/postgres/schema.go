package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/almacen-api/pkg/logger"
)

// Init crea la tabla productos si no existe y aplica migraciones suaves para
// bases que vienen de versiones anteriores del esquema. Es idempotente.
func Init(ctx context.Context, q Querier, log *logger.Logger) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS productos (
			id SERIAL PRIMARY KEY,
			referencia INTEGER,
			nombre TEXT NOT NULL,
			existencias INTEGER NOT NULL CHECK (existencias >= 0),
			stock_minimo INTEGER NOT NULL DEFAULT 0,
			alerta_enviada BOOLEAN NOT NULL DEFAULT false
		)`,
		// Migraciones suaves: columnas añadidas después de la primera versión.
		`ALTER TABLE productos ADD COLUMN IF NOT EXISTS stock_minimo INTEGER NOT NULL DEFAULT 0`,
		`ALTER TABLE productos ADD COLUMN IF NOT EXISTS alerta_enviada BOOLEAN NOT NULL DEFAULT false`,
		`ALTER TABLE productos ADD COLUMN IF NOT EXISTS referencia INTEGER`,
		// Bases antiguas sin referencia: heredar el id interno.
		`UPDATE productos SET referencia = id WHERE referencia IS NULL`,
		`ALTER TABLE productos ALTER COLUMN referencia SET NOT NULL`,
		`CREATE UNIQUE INDEX IF NOT EXISTS productos_referencia_uq ON productos (referencia)`,
		`ALTER TABLE productos DROP COLUMN IF EXISTS creado_en`,
	}
	for _, stmt := range statements {
		if _, err := q.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init esquema productos: %w", err)
		}
	}
	log.Debug().Msg("esquema productos verificado")
	return nil
}

// Seed inserta 30 productos de ejemplo (referencias 1001..1030) si la tabla
// está vacía. No hace nada si ya hay datos.
func Seed(ctx context.Context, q Querier, log *logger.Logger) error {
	var n int
	if err := q.QueryRow(ctx, `SELECT COUNT(*)::int FROM productos`).Scan(&n); err != nil {
		return fmt.Errorf("contar productos: %w", err)
	}
	if n > 0 {
		log.Info().Int("productos", n).Msg("seed omitido: la tabla ya tiene datos")
		return nil
	}

	query := `INSERT INTO productos (referencia, nombre, existencias) VALUES `
	args := make([]any, 0, 30*3)
	p := 1
	for i := 0; i < 30; i++ {
		if i > 0 {
			query += ","
		}
		query += fmt.Sprintf("($%d, $%d, $%d)", p, p+1, p+2)
		p += 3
		args = append(args, 1000+i+1, fmt.Sprintf("Producto %d", i+1), 10+(i%7))
	}
	if _, err := q.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("seed productos: %w", err)
	}
	log.Info().Int("productos", 30).Msg("seed inicial insertado")
	return nil
}
