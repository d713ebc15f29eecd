package response

import (
	"pos-gateway/internal/usecase/queries"
)

type MemberResponse struct {
	MemberID     int64   `json:"memberId"`
	Name         string  `json:"name"`
	Phone        string  `json:"phone"`
	DiscountRate float64 `json:"discountRate"`
}

func FromMemberView(view *queries.MemberView) *MemberResponse {
	return &MemberResponse{
		MemberID:     view.MemberID,
		Name:         view.Name,
		Phone:        view.Phone,
		DiscountRate: view.DiscountRate,
	}
}
