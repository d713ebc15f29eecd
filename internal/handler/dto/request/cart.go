package request

import "strings"

// AddLineRequest adds a product to the cart either by id (picked from the
// search results) or by scanned barcode. Exactly one of the two is expected.
type AddLineRequest struct {
	ProductID *int64  `json:"product_id,omitempty"`
	Barcode   *string `json:"barcode,omitempty"`
}

func (r AddLineRequest) GetBarcode() string {
	if r.Barcode == nil {
		return ""
	}
	return strings.TrimSpace(*r.Barcode)
}

func (r AddLineRequest) HasExactlyOneTarget() bool {
	byID := r.ProductID != nil
	byCode := r.GetBarcode() != ""
	return byID != byCode
}

type SetQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

type SearchRequest struct {
	Q string `json:"q"`
}
