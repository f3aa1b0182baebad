package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByID y GetForUpdate devuelven (nil, nil) si el producto no existe.
type ProductRepository interface {
	Create(product *entity.Product) error // asigna ID
	GetByID(id int64) (*entity.Product, error)
	GetForUpdate(id int64) (*entity.Product, error) // SELECT FOR UPDATE, usar dentro de tx
	ListActive() ([]*entity.Product, error)
	Update(product *entity.Product) error
}
