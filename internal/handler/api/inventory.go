package api

import (
	"net/http"
	"strconv"

	resdto "dakar-rentals/internal/handler/dto/response"
	"dakar-rentals/internal/handler/httperr"
	"dakar-rentals/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type InventoryHandler struct {
	queries queries.InventoryQueries
}

func NewInventoryHandler(inventoryQueries queries.InventoryQueries) *InventoryHandler {
	return &InventoryHandler{queries: inventoryQueries}
}

// @Summary List apartments
// @Description Available apartments unless all=true.
// @Tags inventory
// @Produce json
// @Param all query bool false "include unavailable apartments"
// @Success 200 {array} resdto.ApartmentResponse
// @Router /api/apartments [get]
func (h *InventoryHandler) ListApartments(c *gin.Context) {
	views, err := h.queries.ListApartments(c.Request.Context(), includeAll(c))
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, "Apartment not found")
		return
	}

	res, err := resdto.FromApartmentViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.MsgInternal, nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary List cars
// @Description Available cars unless all=true.
// @Tags inventory
// @Produce json
// @Param all query bool false "include unavailable cars"
// @Success 200 {array} resdto.CarResponse
// @Router /api/cars [get]
func (h *InventoryHandler) ListCars(c *gin.Context) {
	views, err := h.queries.ListCars(c.Request.Context(), includeAll(c))
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, "Car not found")
		return
	}

	res, err := resdto.FromCarViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.MsgInternal, nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Quote a stay
// @Description Prices a prospective booking without saving it.
// @Tags inventory
// @Produce json
// @Param type query string true "apartment or car"
// @Param entity_id query string true "item ID"
// @Param start_date query string false "YYYY-MM-DD"
// @Param end_date query string false "YYYY-MM-DD"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/quote [get]
func (h *InventoryHandler) Quote(c *gin.Context) {
	view, err := h.queries.Quote(c.Request.Context(), queries.QuoteRequest{
		Type:      c.Query("type"),
		EntityID:  c.Query("entity_id"),
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
	})
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, "Item not found")
		return
	}

	res, err := resdto.FromQuoteView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.MsgInternal, nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

func includeAll(c *gin.Context) bool {
	all, _ := strconv.ParseBool(c.Query("all"))
	return all
}
