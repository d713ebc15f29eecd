//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"pos-gateway/internal/domain/cart"
	"pos-gateway/internal/handler/api"
	"pos-gateway/internal/infra"
	"pos-gateway/internal/pkg/money"
	"pos-gateway/internal/usecase/commands"
	"pos-gateway/internal/usecase/queries"
	"pos-gateway/tests/common/httptest"
	commandsmock "pos-gateway/tests/mock/commands"
	queriesmock "pos-gateway/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PosHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockRegister *commandsmock.MockRegisterCommands
	mockCheckout *commandsmock.MockCheckoutCommands
	mockQueries  *queriesmock.MockRegisterQueries
	handler      *api.PosHandler
	cashierID    uuid.UUID
}

func (s *PosHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockRegister = commandsmock.NewMockRegisterCommands(s.mockCtrl)
	s.mockCheckout = commandsmock.NewMockCheckoutCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRegisterQueries(s.mockCtrl)
	s.handler = api.NewPosHandler(s.mockRegister, s.mockCheckout, s.mockQueries)
	s.cashierID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		c.Set("cashier_id", s.cashierID)
		c.Set("cashier_role", "cashier")
		c.Set("bearer_token", "bearer-token")
		c.Next()
	}

	pos := s.router.Group("/api/pos", authMiddleware)
	pos.GET("/cart", s.handler.GetCart)
	pos.DELETE("/cart", s.handler.ClearCart)
	pos.POST("/cart/lines", s.handler.AddCartLine)
	pos.PATCH("/cart/lines/:productId", s.handler.SetLineQuantity)
	pos.DELETE("/cart/lines/:productId", s.handler.RemoveCartLine)
	pos.PUT("/member", s.handler.AttachMember)
	pos.PUT("/search", s.handler.SetSearchQuery)
	pos.GET("/search", s.handler.GetSearchResults)
	pos.POST("/checkout", s.handler.Checkout)
}

func (s *PosHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPosHandlerSuite(t *testing.T) {
	suite.Run(t, new(PosHandlerTestSuite))
}

func sampleCartView() *queries.CartView {
	return &queries.CartView{
		Lines: []queries.CartLineView{
			{
				ProductID:     1,
				Name:          "Milk 1L",
				Barcode:       "8850001",
				UnitPrice:     money.New(2550),
				Quantity:      2,
				StockQuantity: 12,
				LineTotal:     money.New(5100),
			},
		},
		Estimate: queries.EstimateView{
			Subtotal:           money.New(5100),
			SubtotalAfterPromo: money.New(5100),
			EstimatedTotal:     money.New(5100),
		},
	}
}

// ================================================================================
// TestGetCart
// ================================================================================

func (s *PosHandlerTestSuite) TestGetCart() {
	s.Run("success: returns the cart with its estimate", func() {
		s.mockQueries.EXPECT().Cart(gomock.Any(), "bearer-token", s.cashierID).
			Return(sampleCartView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/pos/cart", nil, "bearer-token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		lines := body["lines"].([]any)
		s.Len(lines, 1)
		line := lines[0].(map[string]any)
		s.Equal("Milk 1L", line["name"])
		s.Equal("25.50", line["unitPrice"])
		estimate := body["estimate"].(map[string]any)
		s.Equal("51.00", estimate["estimatedTotal"])
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/pos/cart", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}

// ================================================================================
// TestAddCartLine
// ================================================================================

func (s *PosHandlerTestSuite) TestAddCartLine() {
	url := "/api/pos/cart/lines"

	s.Run("success: add by product id returns the updated cart", func() {
		s.mockRegister.EXPECT().AddProduct(gomock.Any(), "bearer-token", s.cashierID, int64(1)).
			Return(nil).Times(1)
		s.mockQueries.EXPECT().Cart(gomock.Any(), "bearer-token", s.cashierID).
			Return(sampleCartView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"product_id": 1}, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: add by barcode", func() {
		s.mockRegister.EXPECT().AddByBarcode(gomock.Any(), "bearer-token", s.cashierID, "8850001").
			Return(nil).Times(1)
		s.mockQueries.EXPECT().Cart(gomock.Any(), "bearer-token", s.cashierID).
			Return(sampleCartView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"barcode": "8850001"}, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 when both id and barcode are sent", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"product_id": 1, "barcode": "8850001"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Exactly one")
	})

	s.Run("error: 400 when neither id nor barcode is sent", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Exactly one")
	})

	s.Run("error: 404 for an unknown product", func() {
		s.mockRegister.EXPECT().AddProduct(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(commands.ErrProductNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"product_id": 99}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Product not found")
	})

	s.Run("error: 409 when the stock ceiling is hit", func() {
		s.mockRegister.EXPECT().AddProduct(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cart.ErrStockLimitExceeded).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"product_id": 1}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "stock")
	})
}

// ================================================================================
// TestSetLineQuantity
// ================================================================================

func (s *PosHandlerTestSuite) TestSetLineQuantity() {
	s.Run("success: sets the quantity", func() {
		s.mockRegister.EXPECT().SetQuantity(gomock.Any(), s.cashierID, int64(1), 3).
			Return(nil).Times(1)
		s.mockQueries.EXPECT().Cart(gomock.Any(), "bearer-token", s.cashierID).
			Return(sampleCartView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/api/pos/cart/lines/1", map[string]any{"quantity": 3}, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on a non-numeric product id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/api/pos/cart/lines/abc", map[string]any{"quantity": 3}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "product ID")
	})

	s.Run("error: 400 when quantity is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/api/pos/cart/lines/1", map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 404 for an absent line", func() {
		s.mockRegister.EXPECT().SetQuantity(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cart.ErrLineNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/api/pos/cart/lines/99", map[string]any{"quantity": 2}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})

	s.Run("error: 409 over the stock ceiling", func() {
		s.mockRegister.EXPECT().SetQuantity(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cart.ErrStockLimitExceeded).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/api/pos/cart/lines/1", map[string]any{"quantity": 99}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})
}

// ================================================================================
// TestRemoveAndClear
// ================================================================================

func (s *PosHandlerTestSuite) TestRemoveAndClear() {
	s.Run("remove line returns the updated cart", func() {
		s.mockRegister.EXPECT().RemoveLine(gomock.Any(), s.cashierID, int64(1)).
			Return(nil).Times(1)
		s.mockQueries.EXPECT().Cart(gomock.Any(), "bearer-token", s.cashierID).
			Return(sampleCartView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/pos/cart/lines/1", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("clear cart", func() {
		s.mockRegister.EXPECT().ClearCart(gomock.Any(), s.cashierID).
			Return(nil).Times(1)
		s.mockQueries.EXPECT().Cart(gomock.Any(), "bearer-token", s.cashierID).
			Return(&queries.CartView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/pos/cart", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}

// ================================================================================
// TestAttachMember
// ================================================================================

func (s *PosHandlerTestSuite) TestAttachMember() {
	url := "/api/pos/member"

	s.Run("success: phone is forwarded trimmed", func() {
		s.mockRegister.EXPECT().SetMemberPhone(gomock.Any(), "bearer-token", s.cashierID, "0812345678").
			Return(nil).Times(1)
		s.mockQueries.EXPECT().Cart(gomock.Any(), "bearer-token", s.cashierID).
			Return(sampleCartView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"phone": " 0812345678 "}, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: empty phone detaches", func() {
		s.mockRegister.EXPECT().SetMemberPhone(gomock.Any(), "bearer-token", s.cashierID, "").
			Return(nil).Times(1)
		s.mockQueries.EXPECT().Cart(gomock.Any(), "bearer-token", s.cashierID).
			Return(&queries.CartView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"phone": ""}, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}

// ================================================================================
// TestSearch
// ================================================================================

func (s *PosHandlerTestSuite) TestSearch() {
	url := "/api/pos/search"

	s.Run("put records the query and returns 202", func() {
		s.mockRegister.EXPECT().SetSearchQuery(gomock.Any(), "bearer-token", s.cashierID, "milk").
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"q": "milk"}, "bearer-token")

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusAccepted, &body)
		s.Equal("milk", body["query"])
	})

	s.Run("get returns the settled results", func() {
		s.mockQueries.EXPECT().Search(gomock.Any(), s.cashierID).
			Return(&queries.SearchView{
				Query: "milk",
				Results: []queries.ProductView{
					{ProductID: 1, Name: "Milk 1L", SellingPrice: money.New(2550), StockQuantity: 12},
				},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("milk", body["query"])
		results := body["results"].([]any)
		s.Len(results, 1)
	})
}

// ================================================================================
// TestCheckout
// ================================================================================

func (s *PosHandlerTestSuite) TestCheckout() {
	url := "/api/pos/checkout"
	reqBody := map[string]any{"payment_method": "Cash"}

	s.Run("success: 201 with the server totals", func() {
		s.mockCheckout.EXPECT().Checkout(gomock.Any(), "bearer-token", s.cashierID, "Cash").
			Return(&commands.TransactionResult{
				TransactionID: 42,
				Subtotal:      money.New(20000),
				TotalAmount:   money.New(17100),
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.EqualValues(42, body["transactionId"])
		s.Equal("171.00", body["totalAmount"])
	})

	s.Run("error: 400 when payment_method is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	checkoutErrCases := []struct {
		name       string
		err        error
		expectCode int
		expectMsg  string
	}{
		{name: "empty cart", err: commands.ErrCartEmpty, expectCode: http.StatusBadRequest, expectMsg: "Cart is empty"},
		{name: "partial member phone", err: commands.ErrInvalidPhone, expectCode: http.StatusBadRequest, expectMsg: "10 digits"},
		{name: "unknown payment method", err: commands.ErrInvalidPayment, expectCode: http.StatusBadRequest, expectMsg: "payment"},
		{name: "stale stock", err: commands.ErrStockExceeded, expectCode: http.StatusConflict, expectMsg: "stock"},
		{name: "already in flight", err: commands.ErrCheckoutInProgress, expectCode: http.StatusConflict, expectMsg: "in progress"},
		{
			name:       "backend rejection surfaces verbatim",
			err:        infra.WrapUpstreamErr("Insufficient stock for product Milk 1L", nil, infra.KindRejected),
			expectCode: http.StatusUnprocessableEntity,
			expectMsg:  "Insufficient stock for product Milk 1L",
		},
		{
			name:       "backend unreachable",
			err:        infra.WrapUpstreamErr("store API unreachable", nil, infra.KindUnavailable),
			expectCode: http.StatusBadGateway,
			expectMsg:  "unavailable",
		},
	}

	for _, tc := range checkoutErrCases {
		s.Run("error: "+tc.name, func() {
			s.mockCheckout.EXPECT().Checkout(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return(nil, tc.err).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
		})
	}
}
