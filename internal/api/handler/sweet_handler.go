package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sweetshop/sweet-shop-api/internal/core/ports"
)

// SweetHandler handles HTTP requests for catalog operations.
type SweetHandler struct {
	sweets ports.SweetService
}

func NewSweetHandler(sweets ports.SweetService) *SweetHandler {
	return &SweetHandler{sweets: sweets}
}

// Create handles POST /api/sweets (admin only).
//
// @Summary      Add a catalog item
// @Tags         sweets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createSweetRequest  true  "Sweet details"
// @Success      201   {object}  sweetResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/sweets [post]
func (h *SweetHandler) Create(c echo.Context) error {
	var req createSweetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sweet, err := h.sweets.Create(c.Request().Context(), toCreateInput(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, sweetResponse{
		Message: "Sweet added successfully",
		Sweet:   sweet,
	})
}

// List handles GET /api/sweets.
//
// @Summary      List the whole catalog
// @Tags         sweets
// @Produce      json
// @Success      200  {array}   domain.Sweet
// @Failure      500  {object}  errorResponse
// @Router       /api/sweets [get]
func (h *SweetHandler) List(c echo.Context) error {
	sweets, err := h.sweets.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sweets)
}

// Search handles GET /api/sweets/search with optional name, category,
// minPrice and maxPrice query parameters.
//
// @Summary      Search the catalog
// @Tags         sweets
// @Produce      json
// @Param        name      query     string  false  "Substring match on name (case-insensitive)"
// @Param        category  query     string  false  "Substring match on category (case-insensitive)"
// @Param        minPrice  query     number  false  "Inclusive lower price bound"
// @Param        maxPrice  query     number  false  "Inclusive upper price bound"
// @Success      200       {array}   domain.Sweet
// @Failure      500       {object}  errorResponse
// @Router       /api/sweets/search [get]
func (h *SweetHandler) Search(c echo.Context) error {
	sweets, err := h.sweets.Search(c.Request().Context(), toSearchFilter(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sweets)
}

// Purchase handles POST /api/sweets/:id/purchase.
//
// @Summary      Purchase one unit
// @Tags         sweets
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Sweet id"
// @Success      200  {object}  purchaseResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/sweets/{id}/purchase [post]
func (h *SweetHandler) Purchase(c echo.Context) error {
	result, err := h.sweets.Purchase(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, purchaseResponse{
		Message:   "You purchased " + result.Name,
		Remaining: result.Remaining,
	})
}

// Update handles PUT /api/sweets/:id (admin only).
//
// @Summary      Update a catalog item
// @Tags         sweets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Sweet id"
// @Param        body  body      updateSweetRequest  true  "Fields to change"
// @Success      200   {object}  sweetResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/sweets/{id} [put]
func (h *SweetHandler) Update(c echo.Context) error {
	var req updateSweetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sweet, err := h.sweets.Update(c.Request().Context(), c.Param("id"), toPatch(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, sweetResponse{
		Message: "Sweet updated successfully",
		Sweet:   sweet,
	})
}

// Delete handles DELETE /api/sweets/:id (admin only).
//
// @Summary      Delete a catalog item
// @Tags         sweets
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Sweet id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/sweets/{id} [delete]
func (h *SweetHandler) Delete(c echo.Context) error {
	if err := h.sweets.Remove(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Sweet deleted successfully"})
}

// Restock handles POST /api/sweets/:id/restock (admin only). The amount is
// read permissively: absent or unparseable values restock nothing.
//
// @Summary      Restock a catalog item
// @Tags         sweets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Sweet id"
// @Success      200  {object}  restockResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/sweets/{id}/restock [post]
func (h *SweetHandler) Restock(c echo.Context) error {
	var body map[string]any
	_ = c.Bind(&body)
	amount := coerceAmount(body["amount"])

	result, err := h.sweets.Restock(c.Request().Context(), c.Param("id"), amount)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, restockResponse{
		Message:     "Restocked " + result.Name,
		NewQuantity: result.NewQuantity,
	})
}
