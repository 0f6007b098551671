package entity

import "time"

// Empresa es un contribuyente atendido por el despacho.
type Empresa struct {
	ID              int64
	Nombre          string
	NIT             string
	SectorEconomico string
	NomenclaturaID  int64
	CreatedAt       time.Time
}
