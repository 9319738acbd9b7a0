package entity

import "time"

// LocationPolicy agrupa las banderas de política de una bodega que gobiernan
// la validación de posiciones: qué atributos opcionales pasan a ser obligatorios
// y si los borradores de salida reservan stock.
type LocationPolicy struct {
	RequirePrice          bool
	RequireBatch          bool
	RequireProductionDate bool
	RequireExpirationDate bool
	DraftMakesReservation bool
}

// Location representa una bodega (almacén). Las banderas de política se
// administran por la API de catálogo; el validador solo las lee.
type Location struct {
	ID                    string
	Number                string // código corto, único
	Name                  string
	RequirePrice          bool
	RequireBatch          bool
	RequireProductionDate bool
	RequireExpirationDate bool
	DraftMakesReservation bool
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// Policy devuelve las banderas de política como value object.
func (l *Location) Policy() LocationPolicy {
	return LocationPolicy{
		RequirePrice:          l.RequirePrice,
		RequireBatch:          l.RequireBatch,
		RequireProductionDate: l.RequireProductionDate,
		RequireExpirationDate: l.RequireExpirationDate,
		DraftMakesReservation: l.DraftMakesReservation,
	}
}
