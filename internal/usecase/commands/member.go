package commands

import (
	"context"

	"pos-gateway/internal/domain/member"
	"pos-gateway/internal/pkg/errs"
	"pos-gateway/internal/usecase/queries"
)

var (
	ErrNameTooShort = errs.New("member name too short")
	ErrPhoneFormat  = errs.New("member phone must be exactly 10 digits")
)

type MemberCommands interface {
	RegisterMember(ctx context.Context, token, name, phone string) (*queries.MemberView, error)
}

type memberUseCaseImpl struct {
	directory MemberDirectory
}

func NewMemberUseCase(directory MemberDirectory) MemberCommands {
	return &memberUseCaseImpl{directory: directory}
}

// RegisterMember validates locally first (no request leaves on malformed
// input) and then defers to the store backend, which owns uniqueness checks.
func (m *memberUseCaseImpl) RegisterMember(ctx context.Context, token, name, phone string) (*queries.MemberView, error) {
	validName, err := member.NewName(name)
	if err != nil {
		return nil, errs.Mark(err, ErrNameTooShort)
	}
	validPhone, err := member.NewPhone(phone)
	if err != nil {
		return nil, errs.Mark(err, ErrPhoneFormat)
	}

	created, err := m.directory.CreateMember(ctx, token, validName, validPhone)
	if err != nil {
		return nil, err
	}

	return &queries.MemberView{
		MemberID:     created.MemberID,
		Name:         created.Name,
		Phone:        created.Phone.String(),
		DiscountRate: created.DiscountRate,
	}, nil
}
