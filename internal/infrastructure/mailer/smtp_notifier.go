package mailer

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/pkg/config"
)

var _ inventory.Notifier = (*SMTPNotifier)(nil)

// SMTPNotifier envía la alerta de stock mínimo por correo (STARTTLS en 587).
// Un intento por llamada, sin reintentos: el fallo se devuelve al caso de uso
// para que revierta la transacción de salida.
type SMTPNotifier struct {
	smtp config.SMTPConfig
	to   string
}

// NewSMTPNotifier construye el notificador con la configuración SMTP y el destinatario.
func NewSMTPNotifier(smtp config.SMTPConfig, alert config.AlertConfig) *SMTPNotifier {
	return &SMTPNotifier{smtp: smtp, to: alert.EmailTo}
}

// SendLowStockAlert envía el correo de alerta. Respeta la cancelación de ctx:
// si el deadline vence antes de completar el envío, devuelve el error de ctx
// (el envío en curso queda huérfano, no hay forma de abortar SMTP a medias).
func (n *SMTPNotifier) SendLowStockAlert(ctx context.Context, p *entity.Product) error {
	if n.to == "" {
		return fmt.Errorf("falta ALERT_EMAIL_TO")
	}
	if n.smtp.User == "" || n.smtp.Password == "" {
		return fmt.Errorf("faltan SMTP_USER / SMTP_PASS")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.from())
	m.SetHeader("To", n.to)
	m.SetHeader("Subject", alertSubject(p))
	m.SetBody("text/plain", alertBody(p))

	d := gomail.NewDialer(n.smtp.Host, n.smtp.Port, n.smtp.User, n.smtp.Password)

	done := make(chan error, 1)
	go func() { done <- d.DialAndSend(m) }()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("enviar alerta: %w", err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("enviar alerta: %w", ctx.Err())
	}
}

func (n *SMTPNotifier) from() string {
	if n.smtp.From != "" {
		return n.smtp.From
	}
	return fmt.Sprintf("Almacen <%s>", n.smtp.User)
}

func alertSubject(p *entity.Product) string {
	return fmt.Sprintf("⚠️ Stock mínimo: %s (ref %d) (quedan %d)", p.Name, p.Reference, p.Stock)
}

func alertBody(p *entity.Product) string {
	return fmt.Sprintf(`Alerta de stock mínimo

Producto: %s
Referencia: %d
Quedan: %d
Stock mínimo: %d
`, p.Name, p.Reference, p.Stock, p.MinStock)
}
