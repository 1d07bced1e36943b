package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storyreel-backend/internal/models"
	"storyreel-backend/internal/stock"
)

type StockHandler struct {
	matcher *stock.Matcher
}

func NewStockHandler(matcher *stock.Matcher) *StockHandler {
	return &StockHandler{matcher: matcher}
}

// Search godoc
// @Summary     Search stock footage
// @Description Runs the fixed provider chain (Pexels, Pixabay, built-in catalog). The built-in catalog never returns an empty set.
// @Tags        stock
// @Produce     json
// @Security    Bearer
// @Param       query query string true "Search terms"
// @Success     200 {object} models.StockSearchResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /stock/search [get]
func (h *StockHandler) Search(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "query is required"})
		return
	}

	results, provider, err := h.matcher.Search(query, 10)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "stock search failed",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.StockSearchResponse{
		Results:  results,
		Provider: provider,
	})
}
