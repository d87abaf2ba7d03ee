package api

import (
	"net/http"

	"leen-studio/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// ShopHandler serves the fixed catalogs and the public testimony list.
type ShopHandler struct {
	catalog      queries.CatalogQueries
	testimonials queries.TestimonialQueries
}

func NewShopHandler(catalog queries.CatalogQueries, testimonials queries.TestimonialQueries) *ShopHandler {
	return &ShopHandler{
		catalog:      catalog,
		testimonials: testimonials,
	}
}

// @Summary List boutique products
// @Description List the boutique catalog
// @Tags catalog
// @Produce json
// @Success 200 {array} queries.ProductView
// @Router /catalog/products [get]
func (h *ShopHandler) Products(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Products(c.Request.Context()))
}

// @Summary List class services
// @Description List the bookable class services
// @Tags catalog
// @Produce json
// @Success 200 {array} queries.ServiceView
// @Router /catalog/services [get]
func (h *ShopHandler) Services(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Services(c.Request.Context()))
}

// @Summary List membership tiers
// @Description List the membership tiers
// @Tags catalog
// @Produce json
// @Success 200 {array} queries.TierView
// @Router /catalog/tiers [get]
func (h *ShopHandler) Tiers(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Tiers(c.Request.Context()))
}

// @Summary List testimonials
// @Description List testimonies for the landing page, newest first
// @Tags testimonials
// @Produce json
// @Success 200 {array} queries.TestimonialView
// @Router /testimonials [get]
func (h *ShopHandler) Testimonials(c *gin.Context) {
	items, err := h.testimonials.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, items)
}
