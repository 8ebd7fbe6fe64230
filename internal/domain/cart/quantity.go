// Package cart contiene las reglas puras de cantidades del carrito.
package cart

// AddQuantity devuelve la cantidad resultante de agregar requested unidades a una línea
// que ya tiene existing (0 si no existe), acotada al stock disponible.
// Tanto lo solicitado como el total combinado se acotan a stock.
func AddQuantity(existing, requested, stock int) int {
	if stock < 0 {
		stock = 0
	}
	if requested > stock {
		requested = stock
	}
	total := existing + requested
	if total > stock {
		total = stock
	}
	return total
}

// SetQuantity resuelve una actualización de cantidad: remove es true si la línea
// debe borrarse (qty <= 0 o producto sin stock); si no, qty queda acotada a stock.
func SetQuantity(qty, stock int) (newQty int, remove bool) {
	if qty <= 0 {
		return 0, true
	}
	if qty > stock {
		qty = stock
	}
	if qty <= 0 {
		return 0, true
	}
	return qty, false
}
