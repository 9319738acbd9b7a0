package entity

import "time"

// Product representa un producto o SKU movido entre bodegas.
type Product struct {
	ID          string
	Number      string // código único
	Name        string
	UnitMeasure string // und, kg, lt...
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
