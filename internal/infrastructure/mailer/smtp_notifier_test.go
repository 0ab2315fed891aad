package mailer

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/pkg/config"
)

func producto() *entity.Product {
	return &entity.Product{Reference: 1001, Name: "Widget", Stock: 4, MinStock: 5}
}

func TestAlertSubject(t *testing.T) {
	assert.Equal(t, "⚠️ Stock mínimo: Widget (ref 1001) (quedan 4)", alertSubject(producto()))
}

func TestAlertBody(t *testing.T) {
	body := alertBody(producto())
	assert.Contains(t, body, "Alerta de stock mínimo")
	assert.Contains(t, body, "Producto: Widget")
	assert.Contains(t, body, "Referencia: 1001")
	assert.Contains(t, body, "Quedan: 4")
	assert.Contains(t, body, "Stock mínimo: 5")
}

func TestFrom_PorDefectoUsaElUsuarioSMTP(t *testing.T) {
	n := NewSMTPNotifier(config.SMTPConfig{User: "bodega@example.com"}, config.AlertConfig{EmailTo: "x@example.com"})
	assert.Equal(t, "Almacen <bodega@example.com>", n.from())

	n = NewSMTPNotifier(config.SMTPConfig{User: "bodega@example.com", From: "Almacén Central <alertas@example.com>"}, config.AlertConfig{EmailTo: "x@example.com"})
	assert.Equal(t, "Almacén Central <alertas@example.com>", n.from())
}

func TestSend_SinDestinatario_Falla(t *testing.T) {
	n := NewSMTPNotifier(config.SMTPConfig{User: "u", Password: "p"}, config.AlertConfig{})
	err := n.SendLowStockAlert(context.Background(), producto())
	assert.ErrorContains(t, err, "ALERT_EMAIL_TO")
}

func TestSend_SinCredenciales_Falla(t *testing.T) {
	n := NewSMTPNotifier(config.SMTPConfig{}, config.AlertConfig{EmailTo: "x@example.com"})
	err := n.SendLowStockAlert(context.Background(), producto())
	assert.ErrorContains(t, err, "SMTP_USER")
}

func TestSend_RespetaElDeadline(t *testing.T) {
	// Host inexistente: el dial no puede completar y el deadline corta
	n := NewSMTPNotifier(config.SMTPConfig{
		Host: "smtp.invalid", Port: 587, User: "u", Password: "p",
	}, config.AlertConfig{EmailTo: "x@example.com"})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := n.SendLowStockAlert(ctx, producto())
	assert.Error(t, err)
	assert.Less(t, time.Since(start), 5*time.Second, "el envío no debe colgarse más allá del deadline")
}
