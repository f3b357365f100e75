package service

import (
	"inventory/internal/domain/entity"
)

// LabelService renders and reads the QR labels stuck on shelves.
type LabelService interface {
	// GenerateProductLabel returns a PNG QR code pointing at the product.
	GenerateProductLabel(product *entity.Product) ([]byte, error)

	// ParseProductLabel extracts the product ID from scanned label content.
	ParseProductLabel(data string) (string, error)
}
