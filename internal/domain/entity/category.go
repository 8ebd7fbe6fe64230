package entity

// Category agrupa productos del catálogo. El nombre es único en la práctica pero no se fuerza.
type Category struct {
	ID          int64
	Name        string
	Description string
}
