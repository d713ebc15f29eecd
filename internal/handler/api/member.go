package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	reqdto "pos-gateway/internal/handler/dto/request"
	resdto "pos-gateway/internal/handler/dto/response"
	"pos-gateway/internal/handler/middleware"
	"pos-gateway/internal/usecase/commands"
)

type MemberHandler struct {
	memberCommands commands.MemberCommands
}

func NewMemberHandler(memberCommands commands.MemberCommands) *MemberHandler {
	return &MemberHandler{
		memberCommands: memberCommands,
	}
}

// @Summary Register member
// @Description Register a new member at the store; uniqueness is enforced by the store backend
// @Tags members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RegisterMemberRequest true "Member details"
// @Success 201 {object} resdto.MemberResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /members [post]
func (h *MemberHandler) RegisterMember(c *gin.Context) {
	token := middleware.GetToken(c)

	var req reqdto.RegisterMemberRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.memberCommands.RegisterMember(c.Request.Context(), token, req.Name, req.Phone)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrNameTooShort):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Member name must be at least 2 characters",
			})
		case errors.Is(err, commands.ErrPhoneFormat):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Member phone must be exactly 10 digits",
			})
		default:
			respondUpstream(c, err)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromMemberView(view))
}
