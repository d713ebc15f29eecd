package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"pos-gateway/internal/domain/cart"
	reqdto "pos-gateway/internal/handler/dto/request"
	resdto "pos-gateway/internal/handler/dto/response"
	"pos-gateway/internal/handler/middleware"
	"pos-gateway/internal/usecase/commands"
	"pos-gateway/internal/usecase/queries"
)

type PosHandler struct {
	registerCommands commands.RegisterCommands
	checkoutCommands commands.CheckoutCommands
	registerQueries  queries.RegisterQueries
}

func NewPosHandler(
	registerCommands commands.RegisterCommands,
	checkoutCommands commands.CheckoutCommands,
	registerQueries queries.RegisterQueries,
) *PosHandler {
	return &PosHandler{
		registerCommands: registerCommands,
		checkoutCommands: checkoutCommands,
		registerQueries:  registerQueries,
	}
}

// @Summary Get cart
// @Description Get the register's current cart with a recomputed estimate
// @Tags pos
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.CartResponse
// @Failure 401 {object} map[string]string
// @Router /pos/cart [get]
func (h *PosHandler) GetCart(c *gin.Context) {
	cashierID, token, ok := callerContext(c)
	if !ok {
		return
	}

	view, err := h.registerQueries.Cart(c.Request.Context(), token, cashierID)
	if err != nil {
		respondUpstream(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

// @Summary Add cart line
// @Description Add one unit of a product, by id from the search results or by scanned barcode
// @Tags pos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AddLineRequest true "Product id or barcode"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /pos/cart/lines [post]
func (h *PosHandler) AddCartLine(c *gin.Context) {
	cashierID, token, ok := callerContext(c)
	if !ok {
		return
	}

	var req reqdto.AddLineRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}
	if !req.HasExactlyOneTarget() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Exactly one of product_id or barcode is required",
		})
		return
	}

	var err error
	if req.ProductID != nil {
		err = h.registerCommands.AddProduct(c.Request.Context(), token, cashierID, *req.ProductID)
	} else {
		err = h.registerCommands.AddByBarcode(c.Request.Context(), token, cashierID, req.GetBarcode())
	}
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Product not found",
			})
		case errors.Is(err, cart.ErrStockLimitExceeded):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Requested quantity exceeds available stock",
			})
		default:
			respondUpstream(c, err)
		}
		return
	}

	h.respondCart(c, token, cashierID)
}

// @Summary Set line quantity
// @Description Set the quantity of a cart line; quantities below 1 clamp to 1
// @Tags pos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param productId path int true "Product ID"
// @Param request body reqdto.SetQuantityRequest true "New quantity"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /pos/cart/lines/{productId} [patch]
func (h *PosHandler) SetLineQuantity(c *gin.Context) {
	cashierID, token, ok := callerContext(c)
	if !ok {
		return
	}

	productID, err := parseProductID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID format",
		})
		return
	}

	var req reqdto.SetQuantityRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.registerCommands.SetQuantity(c.Request.Context(), cashierID, productID, *req.Quantity); err != nil {
		switch {
		case errors.Is(err, cart.ErrLineNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Cart line not found",
			})
		case errors.Is(err, cart.ErrStockLimitExceeded):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Requested quantity exceeds available stock",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	h.respondCart(c, token, cashierID)
}

// @Summary Remove cart line
// @Description Remove a line from the cart; removing an absent line is a no-op
// @Tags pos
// @Produce json
// @Security BearerAuth
// @Param productId path int true "Product ID"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Router /pos/cart/lines/{productId} [delete]
func (h *PosHandler) RemoveCartLine(c *gin.Context) {
	cashierID, token, ok := callerContext(c)
	if !ok {
		return
	}

	productID, err := parseProductID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID format",
		})
		return
	}

	if err := h.registerCommands.RemoveLine(c.Request.Context(), cashierID, productID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	h.respondCart(c, token, cashierID)
}

// @Summary Clear cart
// @Description Remove all lines from the cart
// @Tags pos
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.CartResponse
// @Router /pos/cart [delete]
func (h *PosHandler) ClearCart(c *gin.Context) {
	cashierID, token, ok := callerContext(c)
	if !ok {
		return
	}

	if err := h.registerCommands.ClearCart(c.Request.Context(), cashierID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	h.respondCart(c, token, cashierID)
}

// @Summary Attach member
// @Description Set the member phone on the register; the discount rate resolves asynchronously. An empty phone detaches the member.
// @Tags pos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AttachMemberRequest true "Member phone"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Router /pos/member [put]
func (h *PosHandler) AttachMember(c *gin.Context) {
	cashierID, token, ok := callerContext(c)
	if !ok {
		return
	}

	var req reqdto.AttachMemberRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.registerCommands.SetMemberPhone(c.Request.Context(), token, cashierID, req.TrimmedPhone()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	h.respondCart(c, token, cashierID)
}

// @Summary Update search query
// @Description Record the search-as-you-type input; the catalog lookup fires after the settle delay
// @Tags pos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SearchRequest true "Search query"
// @Success 202 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /pos/search [put]
func (h *PosHandler) SetSearchQuery(c *gin.Context) {
	cashierID, token, ok := callerContext(c)
	if !ok {
		return
	}

	var req reqdto.SearchRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.registerCommands.SetSearchQuery(c.Request.Context(), token, cashierID, req.Q); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"query": req.Q,
	})
}

// @Summary Get search results
// @Description Get the latest settled search results for the register
// @Tags pos
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.SearchResponse
// @Router /pos/search [get]
func (h *PosHandler) GetSearchResults(c *gin.Context) {
	cashierID, _, ok := callerContext(c)
	if !ok {
		return
	}

	view, err := h.registerQueries.Search(c.Request.Context(), cashierID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromSearchView(view))
}

// @Summary Checkout
// @Description Submit the cart as a transaction; on success the cart is cleared and promotions refreshed
// @Tags pos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CheckoutRequest true "Payment method"
// @Success 201 {object} resdto.CheckoutResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /pos/checkout [post]
func (h *PosHandler) Checkout(c *gin.Context) {
	cashierID, token, ok := callerContext(c)
	if !ok {
		return
	}

	var req reqdto.CheckoutRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.checkoutCommands.Checkout(c.Request.Context(), token, cashierID, req.PaymentMethod)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrCartEmpty):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Cart is empty",
			})
		case errors.Is(err, commands.ErrInvalidPhone):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Member phone must be exactly 10 digits",
			})
		case errors.Is(err, commands.ErrInvalidPayment):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid payment method",
			})
		case errors.Is(err, commands.ErrNotSignedIn):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
		case errors.Is(err, commands.ErrStockExceeded):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Cart exceeds available stock",
			})
		case errors.Is(err, commands.ErrCheckoutInProgress):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Checkout already in progress",
			})
		default:
			respondUpstream(c, err)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromTransactionResult(result))
}

func (h *PosHandler) respondCart(c *gin.Context, token string, cashierID uuid.UUID) {
	view, err := h.registerQueries.Cart(c.Request.Context(), token, cashierID)
	if err != nil {
		respondUpstream(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

func callerContext(c *gin.Context) (uuid.UUID, string, bool) {
	cashierID, ok := middleware.GetCashierID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return uuid.Nil, "", false
	}
	return cashierID, middleware.GetToken(c), true
}

func parseProductID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("productId"), 10, 64)
}
