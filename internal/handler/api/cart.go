package api

import (
	"errors"
	"net/http"

	reqdto "leen-studio/internal/handler/dto/request"
	"leen-studio/internal/handler/middleware"
	"leen-studio/internal/usecase/commands"
	"leen-studio/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	cartCommands   commands.CartCommands
	sessionQueries queries.SessionQueries
}

func NewCartHandler(cartCommands commands.CartCommands, sessionQueries queries.SessionQueries) *CartHandler {
	return &CartHandler{
		cartCommands:   cartCommands,
		sessionQueries: sessionQueries,
	}
}

// @Summary Get cart
// @Description Get the session cart, saved list and derived totals
// @Tags cart
// @Produce json
// @Success 200 {object} queries.CartView
// @Router /cart [get]
func (h *CartHandler) Get(c *gin.Context) {
	sessionID, ok := middleware.MustSessionID(c)
	if !ok {
		return
	}

	view, err := h.sessionQueries.Cart(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Add cart item
// @Description Add a product to the cart, or bump its quantity
// @Tags cart
// @Accept json
// @Produce json
// @Param request body reqdto.AddCartItemRequest true "Product to add"
// @Success 200 {object} queries.CartView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	sessionID, ok := middleware.MustSessionID(c)
	if !ok {
		return
	}

	var req reqdto.AddCartItemRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.cartCommands.AddItem(c.Request.Context(), sessionID, req.ProductID, req.Silent)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Remove cart item
// @Description Remove a product line from the cart; unknown ids are a no-op
// @Tags cart
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} queries.CartView
// @Router /cart/items/{id} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	sessionID, ok := middleware.MustSessionID(c)
	if !ok {
		return
	}

	view, err := h.cartCommands.RemoveItem(c.Request.Context(), sessionID, c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Clear cart
// @Description Empty the cart and drop any applied promo
// @Tags cart
// @Produce json
// @Success 200 {object} queries.CartView
// @Router /cart/clear [post]
func (h *CartHandler) Clear(c *gin.Context) {
	sessionID, ok := middleware.MustSessionID(c)
	if !ok {
		return
	}

	view, err := h.cartCommands.Clear(c.Request.Context(), sessionID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Toggle save-for-later
// @Description Move a product between the cart and the saved list
// @Tags cart
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} queries.CartView
// @Failure 404 {object} map[string]string
// @Router /cart/items/{id}/save [post]
func (h *CartHandler) ToggleSaved(c *gin.Context) {
	sessionID, ok := middleware.MustSessionID(c)
	if !ok {
		return
	}

	view, err := h.cartCommands.ToggleSaved(c.Request.Context(), sessionID, c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Move saved item to cart
// @Description Return a saved product to the cart with quantity one
// @Tags cart
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} queries.CartView
// @Failure 404 {object} map[string]string
// @Router /cart/saved/{id}/move [post]
func (h *CartHandler) MoveToCart(c *gin.Context) {
	sessionID, ok := middleware.MustSessionID(c)
	if !ok {
		return
	}

	view, err := h.cartCommands.MoveToCart(c.Request.Context(), sessionID, c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Apply cart promo
// @Description Apply a percentage promo code to the cart total
// @Tags cart
// @Accept json
// @Produce json
// @Param request body reqdto.CartPromoRequest true "Promo code"
// @Success 200 {object} queries.CartView
// @Failure 400 {object} map[string]string
// @Router /cart/promo [post]
func (h *CartHandler) ApplyPromo(c *gin.Context) {
	sessionID, ok := middleware.MustSessionID(c)
	if !ok {
		return
	}

	var req reqdto.CartPromoRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.cartCommands.ApplyPromo(c.Request.Context(), sessionID, req.Code)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Remove cart promo
// @Description Remove the applied promo code
// @Tags cart
// @Produce json
// @Success 200 {object} queries.CartView
// @Router /cart/promo [delete]
func (h *CartHandler) RemovePromo(c *gin.Context) {
	sessionID, ok := middleware.MustSessionID(c)
	if !ok {
		return
	}

	view, err := h.cartCommands.RemovePromo(c.Request.Context(), sessionID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Set drawer visibility
// @Description Open or close the cart drawer
// @Tags cart
// @Accept json
// @Produce json
// @Param request body reqdto.CartDrawerRequest true "Drawer state"
// @Success 200 {object} queries.CartView
// @Failure 400 {object} map[string]string
// @Router /cart/drawer [put]
func (h *CartHandler) SetDrawer(c *gin.Context) {
	sessionID, ok := middleware.MustSessionID(c)
	if !ok {
		return
	}

	var req reqdto.CartDrawerRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.cartCommands.SetDrawer(c.Request.Context(), sessionID, *req.Open)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *CartHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
	case errors.Is(err, commands.ErrInvalidPromoCode):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid promo code",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
