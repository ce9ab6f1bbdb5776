package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Roles válidos para Usuario.
const (
	RolAdmin    = "admin"
	RolVendedor = "vendedor"
	RolEmpleado = "empleado"
	RolCliente  = "cliente"
)

// Usuario representa un usuario del sistema.
type Usuario struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt; vacío para cuentas creadas vía Google
	Rol          string
	Activo       bool
	GoogleID     string // sub de Google si la cuenta entró por OAuth
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ClienteFrecuente es la proyección de clientes recurrentes derivada de las
// ventas completadas; alimenta el autocompletado de caja.
type ClienteFrecuente struct {
	Nombre       string
	Telefono     string
	DNI          string
	Compras      int
	TotalGastado decimal.Decimal
}
