package checkout_controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/middleware"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/models"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/services"
	"go.uber.org/zap"
)

// DownloadReceiptPDF godoc
// @Summary Download order receipt PDF
// @Description Generate and download a receipt PDF for the confirmed order
// @Tags checkout
// @Produce octet-stream
// @Success 200 "PDF file"
// @Failure 404 {object} models.ApiResponse "No order placed yet"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /checkout/receipt [get]
func (ctl *Controller) DownloadReceiptPDF(c *gin.Context) {
	s, ok := middleware.CurrentSession(c)
	if !ok {
		return
	}

	order, placed := s.Checkout.Order()
	if !placed {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "No order has been placed"))
		return
	}
	ctl.logger.Debug("[checkout.receipt] request", zap.String("order_number", order.OrderNumber))

	// Order numbers are random and can repeat across sessions
	key := fmt.Sprintf("%s/%s/%d", s.ID, order.OrderNumber, order.PlacedAt.UnixNano())
	pdf, err := ctl.receipts.Render(key, func() ([]byte, error) {
		return services.RenderReceiptPDF(order, ctl.site)
	})
	if err != nil {
		ctl.logger.Error("[checkout.receipt] failed to generate PDF",
			zap.String("order_number", order.OrderNumber),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to generate receipt"))
		return
	}

	filename := fmt.Sprintf("receipt-%s.pdf", order.OrderNumber)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"; filename*=UTF-8''%s`, filename, filename))
	c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
	c.Header("Pragma", "no-cache")
	c.Header("Expires", "0")
	c.Data(http.StatusOK, "application/pdf", pdf)
}
