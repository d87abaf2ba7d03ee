package api

import (
	"errors"
	"net/http"

	"leen-studio/internal/domain/testimonial"
	reqdto "leen-studio/internal/handler/dto/request"
	resdto "leen-studio/internal/handler/dto/response"
	pkgerrs "leen-studio/internal/pkg/errs"
	"leen-studio/internal/usecase/commands"
	"leen-studio/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminHandler serves everything behind the passkey gate.
type AdminHandler struct {
	dashboardQueries    queries.DashboardQueries
	testimonialQueries  queries.TestimonialQueries
	testimonialCommands commands.TestimonialCommands
}

func NewAdminHandler(
	dashboardQueries queries.DashboardQueries,
	testimonialQueries queries.TestimonialQueries,
	testimonialCommands commands.TestimonialCommands,
) *AdminHandler {
	return &AdminHandler{
		dashboardQueries:    dashboardQueries,
		testimonialQueries:  testimonialQueries,
		testimonialCommands: testimonialCommands,
	}
}

// @Summary Verify passkey
// @Description Confirm that the supplied passkey opens the dashboard
// @Tags admin
// @Produce json
// @Param X-Admin-Passkey header string true "Shared admin passphrase"
// @Success 200 {object} resdto.VerifyResponse
// @Failure 401 {object} map[string]string
// @Router /admin/verify [post]
func (h *AdminHandler) Verify(c *gin.Context) {
	// The passkey middleware already rejected anything invalid.
	c.JSON(http.StatusOK, resdto.VerifyResponse{Verified: true})
}

// @Summary Dashboard
// @Description Get the dashboard metric tiles and weekly series
// @Tags admin
// @Produce json
// @Param X-Admin-Passkey header string true "Shared admin passphrase"
// @Success 200 {object} queries.DashboardView
// @Failure 401 {object} map[string]string
// @Router /admin/dashboard [get]
func (h *AdminHandler) Dashboard(c *gin.Context) {
	c.JSON(http.StatusOK, h.dashboardQueries.Dashboard(c.Request.Context()))
}

// @Summary List testimonials
// @Description List testimonies for management, newest first
// @Tags admin
// @Produce json
// @Param X-Admin-Passkey header string true "Shared admin passphrase"
// @Success 200 {array} queries.TestimonialView
// @Failure 401 {object} map[string]string
// @Router /admin/testimonials [get]
func (h *AdminHandler) ListTestimonials(c *gin.Context) {
	items, err := h.testimonialQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, items)
}

// @Summary Create testimonial
// @Description Add a testimony to the landing page list
// @Tags admin
// @Accept json
// @Produce json
// @Param X-Admin-Passkey header string true "Shared admin passphrase"
// @Param request body reqdto.CreateTestimonialRequest true "Testimonial"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/testimonials [post]
func (h *AdminHandler) CreateTestimonial(c *gin.Context) {
	var req reqdto.CreateTestimonialRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.testimonialCommands.Create(c.Request.Context(), req.Author, req.Location, req.Text, req.Rating)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id.String()})
}

// @Summary Update testimonial
// @Description Replace the fields of an existing testimony
// @Tags admin
// @Accept json
// @Produce json
// @Param X-Admin-Passkey header string true "Shared admin passphrase"
// @Param id path string true "Testimonial ID"
// @Param request body reqdto.UpdateTestimonialRequest true "Testimonial"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/testimonials/{id} [put]
func (h *AdminHandler) UpdateTestimonial(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid testimonial ID format",
		})
		return
	}

	var req reqdto.UpdateTestimonialRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.testimonialCommands.Update(c.Request.Context(), id, req.Author, req.Location, req.Text, req.Rating); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete testimonial
// @Description Remove a testimony
// @Tags admin
// @Produce json
// @Param X-Admin-Passkey header string true "Shared admin passphrase"
// @Param id path string true "Testimonial ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/testimonials/{id} [delete]
func (h *AdminHandler) DeleteTestimonial(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid testimonial ID format",
		})
		return
	}

	if err := h.testimonialCommands.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, pkgerrs.ErrTestimonialNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Testimonial not found",
		})
	case errors.Is(err, testimonial.ErrEmptyAuthor),
		errors.Is(err, testimonial.ErrEmptyText),
		errors.Is(err, testimonial.ErrInvalidRating):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
