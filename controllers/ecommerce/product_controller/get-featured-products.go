package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/models"
)

// GetFeaturedProducts godoc
// @Summary Get featured products
// @Description Products highlighted on the home page, in catalog order
// @Tags store
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]models.Product}
// @Router /store/products/featured [get]
func (ctl *Controller) GetFeaturedProducts(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Featured products fetched successfully", ctl.catalog.Featured()))
}
