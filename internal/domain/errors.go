package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrEmptyCart         = errors.New("el carrito está vacío")
	ErrInsufficientStock = errors.New("stock insuficiente")

	// ErrActiveReturnExists: ya hay una devolución pendiente o en proceso
	// para el mismo par (pedido, producto).
	ErrActiveReturnExists = errors.New("ya existe una devolución activa para este producto del pedido")

	// ErrUnknownReportType es la única condición fatal del generador de reportes:
	// un type desconocido es un error de programación del caller, no un dato transitorio.
	ErrUnknownReportType = errors.New("tipo de reporte desconocido")

	ErrInvalidStatusTransition = errors.New("transición de estado no permitida")
)
