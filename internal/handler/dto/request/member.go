package request

import "strings"

// AttachMemberRequest sets the member phone on the register. An empty phone
// detaches the member.
type AttachMemberRequest struct {
	Phone string `json:"phone"`
}

func (r AttachMemberRequest) TrimmedPhone() string {
	return strings.TrimSpace(r.Phone)
}

type RegisterMemberRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
}
