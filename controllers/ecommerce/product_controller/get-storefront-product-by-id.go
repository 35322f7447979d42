package product_controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/models"
	"go.uber.org/zap"
)

// GetStorefrontProductByID godoc
// @Summary Get single product details for storefront
// @Description Get detailed product information by ID, with up to four related products from the same category
// @Tags store
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse{data=models.ProductDetail}
// @Failure 404 {object} models.ApiResponse
// @Router /store/products/{id} [get]
func (ctl *Controller) GetStorefrontProductByID(c *gin.Context) {
	productID := strings.TrimSpace(c.Param("id"))

	product, ok := ctl.catalog.ByID(productID)
	if !ok {
		ctl.logger.Debug("[store.product] not found", zap.String("product_id", productID))
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	detail := models.ProductDetail{
		Product: product,
		Related: ctl.catalog.Related(product.ID, relatedLimit),
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product fetched successfully", detail))
}
