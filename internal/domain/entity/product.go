package entity

// Product representa un producto del almacén. Reference es el identificador
// externo (único, inmutable); el id serial de la tabla es solo interno.
// AlertSent es monótono: una vez en true no vuelve a false, solo el vaciado
// administrativo lo reinicia (no hay reposición en este sistema).
type Product struct {
	Reference int    // referencia externa, entero > 0, única
	Name      string // nombre, no vacío
	Stock     int    // existencias actuales, siempre >= 0
	MinStock  int    // umbral de alerta (stock_minimo), >= 0
	AlertSent bool   // alerta_enviada: true si ya se notificó el episodio actual
}

// BelowThreshold indica si el producto está en o por debajo del stock mínimo.
func (p *Product) BelowThreshold() bool {
	return p.Stock <= p.MinStock
}
