package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	resdto "pos-gateway/internal/handler/dto/response"
	"pos-gateway/internal/handler/middleware"
	"pos-gateway/internal/usecase/queries"
)

type CatalogHandler struct {
	catalogQueries queries.CatalogQueries
}

func NewCatalogHandler(catalogQueries queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{
		catalogQueries: catalogQueries,
	}
}

// @Summary Search products
// @Description Search the store catalog by name/brand/category or by exact barcode
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param q query string false "Search text"
// @Param barcode query string false "Exact barcode"
// @Success 200 {array} resdto.ProductResponse
// @Failure 401 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /products [get]
func (h *CatalogHandler) SearchProducts(c *gin.Context) {
	token := middleware.GetToken(c)

	views, err := h.catalogQueries.SearchProducts(c.Request.Context(), token, c.Query("q"), c.Query("barcode"))
	if err != nil {
		respondUpstream(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromProductViews(views))
}

// @Summary List active promotions
// @Description List promotions currently running at the store
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.PromotionResponse
// @Failure 401 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /promotions [get]
func (h *CatalogHandler) ListPromotions(c *gin.Context) {
	token := middleware.GetToken(c)

	views, err := h.catalogQueries.ActivePromotions(c.Request.Context(), token)
	if err != nil {
		respondUpstream(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromPromotionViews(views))
}
