// Package qrcode renders product shelf labels as QR codes.
package qrcode

import (
	"encoding/json"
	"fmt"
	"strings"

	"inventory/internal/domain/entity"
	"inventory/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const labelType = "product"

type labelService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// LabelData is the JSON payload encoded in a product label.
type LabelData struct {
	ProductID string `json:"product_id"`
	SKU       string `json:"sku"`
	Type      string `json:"type"`
	URL       string `json:"url,omitempty"`
}

// NewLabelService creates a label service. baseURL, when set, is joined with the product ID into a link.
func NewLabelService(size int, errorCorrectionLevel, baseURL string) service.LabelService {
	return &labelService{
		size:                 size,
		errorCorrectionLevel: parseRecoveryLevel(errorCorrectionLevel),
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToLower(level) {
	case "l", "low":
		return qrcode.Low
	case "q", "high":
		return qrcode.High
	case "h", "highest":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateProductLabel renders the product label as PNG.
func (s *labelService) GenerateProductLabel(product *entity.Product) ([]byte, error) {
	if product == nil || product.ID == "" {
		return nil, fmt.Errorf("product ID is required")
	}

	data := LabelData{
		ProductID: product.ID,
		SKU:       product.SKU,
		Type:      labelType,
	}
	if s.baseURL != "" {
		data.URL = s.baseURL + "/" + product.ID
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal label data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseProductLabel reads scanned label content and returns the product ID.
func (s *labelService) ParseProductLabel(raw string) (string, error) {
	var data LabelData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return "", fmt.Errorf("failed to unmarshal label data: %w", err)
	}

	if data.Type != labelType {
		return "", fmt.Errorf("invalid label type: %s", data.Type)
	}
	if data.ProductID == "" {
		return "", fmt.Errorf("label has no product ID")
	}

	return data.ProductID, nil
}
