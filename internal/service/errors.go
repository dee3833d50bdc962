package service

import (
	"errors"
	"fmt"
)

// Sentinel errors the handler layer maps to HTTP status codes.
var (
	ErrUsuarioNoEncontrado = errors.New("Usuario no encontrado")
	ErrCredenciales        = errors.New("Contraseña incorrecta")
	ErrTokenInvalido       = errors.New("Token inválido")
	ErrEmailDuplicado      = errors.New("El email ya está registrado")
	ErrCodigoDuplicado     = errors.New("El código de producto ya existe")
	ErrPedidoNoEncontrado  = errors.New("Pedido no encontrado")
	ErrPedidoSinDetalles   = errors.New("El pedido no tiene productos")
)

// ErrStockInsuficiente identifies the product that blocked a stock decrement.
// Depending on the operation the handler maps it to 503 (transactional paths)
// or 409 (the per-line update_status path).
type ErrStockInsuficiente struct {
	ProductoID uint
}

func (e *ErrStockInsuficiente) Error() string {
	return fmt.Sprintf("Stock insuficiente para el producto ID %d", e.ProductoID)
}

// ErrTransicionInvalida reports a disallowed order state change.
type ErrTransicionInvalida struct {
	Desde, Hacia string
}

func (e *ErrTransicionInvalida) Error() string {
	return fmt.Sprintf("Transición de estado no permitida: %s → %s", e.Desde, e.Hacia)
}
