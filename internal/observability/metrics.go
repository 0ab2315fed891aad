package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Contadores del negocio expuestos en /metrics.
var (
	// SalidasTotal cuenta salidas de stock por resultado:
	// ok, sin_stock, no_encontrado, invalido, alerta_fallida, error.
	SalidasTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "almacen_salidas_total",
		Help: "Salidas de stock registradas, por resultado.",
	}, []string{"resultado"})

	// AlertasEnviadasTotal cuenta alertas de stock mínimo enviadas con éxito.
	AlertasEnviadasTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "almacen_alertas_enviadas_total",
		Help: "Alertas de stock mínimo enviadas por correo.",
	})
)
