package inventory

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/internal/observability"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

// WithdrawUseCase registra salidas de stock de forma transaccional.
// El decremento condicional, la marca alerta_enviada y el envío del correo
// forman una sola unidad de trabajo: si el correo falla, el decremento y la
// marca se revierten. El envío ocurre antes del Commit, de modo que
// alerta_enviada = true nunca queda persistido sin un envío exitoso.
type WithdrawUseCase struct {
	txRunner     TxRunner
	notifier     Notifier
	alertTimeout time.Duration
	log          *logger.Logger
}

// NewWithdrawUseCase construye el caso de uso. alertTimeout acota el envío
// SMTP para que una salida no pueda colgarse indefinidamente.
func NewWithdrawUseCase(txRunner TxRunner, notifier Notifier, alertTimeout time.Duration, log *logger.Logger) *WithdrawUseCase {
	return &WithdrawUseCase{
		txRunner:     txRunner,
		notifier:     notifier,
		alertTimeout: alertTimeout,
		log:          log,
	}
}

// Withdraw descuenta quantity de las existencias del producto reference.
// Si las existencias caen a <= stock_minimo y aún no hay alerta, marca la
// alerta y envía el correo dentro de la misma transacción.
//
// Errores: domain.ErrInvalidInput (referencia o cantidad mal formadas),
// domain.ErrNotFound, domain.ErrInsufficientStock, domain.ErrAlertDelivery
// (correo falló o expiró; la transacción completa se revierte).
func (uc *WithdrawUseCase) Withdraw(ctx context.Context, reference int, quantity float64) (*entity.Product, error) {
	if reference <= 0 {
		observability.SalidasTotal.WithLabelValues("invalido").Inc()
		return nil, domain.ErrInvalidInput
	}
	qty, ok := integralQuantity(quantity)
	if !ok {
		observability.SalidasTotal.WithLabelValues("invalido").Inc()
		return nil, domain.ErrInvalidInput
	}

	txID := uuid.New().String()
	var result *entity.Product

	err := uc.txRunner.Run(ctx, func(repo repository.ProductRepository) error {
		p, err := repo.DecrementStock(ctx, reference, qty)
		if err != nil {
			return err
		}

		// Si cae a <= stock_minimo y aún no hay alerta: marcar + enviar.
		// El check y el set ocurren bajo el mismo lock de fila que el
		// decremento, así que a lo sumo una salida concurrente por
		// referencia observa el estado pre-alerta.
		if p.BelowThreshold() && !p.AlertSent {
			if err := repo.MarkAlertSent(ctx, p.Reference); err != nil {
				return err
			}
			alertCtx, cancel := context.WithTimeout(ctx, uc.alertTimeout)
			defer cancel()
			if err := uc.notifier.SendLowStockAlert(alertCtx, p); err != nil {
				return fmt.Errorf("%w: %v", domain.ErrAlertDelivery, err)
			}
			p.AlertSent = true
			observability.AlertasEnviadasTotal.Inc()
			uc.log.Info().
				Str("tx_id", txID).
				Int("referencia", p.Reference).
				Int("existencias", p.Stock).
				Int("stock_minimo", p.MinStock).
				Msg("alerta de stock mínimo enviada")
		}

		result = p
		return nil
	})
	if err != nil {
		uc.log.Warn().
			Str("tx_id", txID).
			Int("referencia", reference).
			Int("cantidad", qty).
			Err(err).
			Msg("salida de stock rechazada")
		observability.SalidasTotal.WithLabelValues(withdrawOutcome(err)).Inc()
		return nil, err
	}

	uc.log.Info().
		Str("tx_id", txID).
		Int("referencia", result.Reference).
		Int("cantidad", qty).
		Int("existencias", result.Stock).
		Msg("salida de stock registrada")
	observability.SalidasTotal.WithLabelValues("ok").Inc()
	return result, nil
}

// integralQuantity acepta la cantidad JSON solo si es un número finito,
// mayor que cero y de valor entero (las existencias son una columna INTEGER).
func integralQuantity(q float64) (int, bool) {
	if math.IsNaN(q) || math.IsInf(q, 0) || q <= 0 {
		return 0, false
	}
	if q != math.Trunc(q) || q > math.MaxInt32 {
		return 0, false
	}
	return int(q), true
}

func withdrawOutcome(err error) string {
	switch {
	case errors.Is(err, domain.ErrInsufficientStock):
		return "sin_stock"
	case errors.Is(err, domain.ErrNotFound):
		return "no_encontrado"
	case errors.Is(err, domain.ErrAlertDelivery):
		return "alerta_fallida"
	default:
		return "error"
	}
}
