package api

import (
	"errors"
	"net/http"

	"leen-studio/internal/domain/membership"
	reqdto "leen-studio/internal/handler/dto/request"
	resdto "leen-studio/internal/handler/dto/response"
	"leen-studio/internal/handler/middleware"
	"leen-studio/internal/usecase/commands"
	"leen-studio/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type MembershipHandler struct {
	membershipCommands commands.MembershipCommands
	sessionQueries     queries.SessionQueries
}

func NewMembershipHandler(membershipCommands commands.MembershipCommands, sessionQueries queries.SessionQueries) *MembershipHandler {
	return &MembershipHandler{
		membershipCommands: membershipCommands,
		sessionQueries:     sessionQueries,
	}
}

// @Summary Get membership state
// @Description Get the session membership wizard state
// @Tags membership
// @Produce json
// @Success 200 {object} queries.MembershipView
// @Router /membership [get]
func (h *MembershipHandler) Get(c *gin.Context) {
	sessionID, ok := middleware.MustSessionID(c)
	if !ok {
		return
	}

	view, err := h.sessionQueries.Membership(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Select tier
// @Description Choose a membership tier and advance to authentication
// @Tags membership
// @Accept json
// @Produce json
// @Param request body reqdto.SelectTierRequest true "Tier selection"
// @Success 200 {object} queries.MembershipView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /membership/tier [post]
func (h *MembershipHandler) SelectTier(c *gin.Context) {
	sessionID, ok := middleware.MustSessionID(c)
	if !ok {
		return
	}

	var req reqdto.SelectTierRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.membershipCommands.SelectTier(c.Request.Context(), sessionID, req.TierID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Authenticate
// @Description Complete the signup/login step of the membership flow
// @Tags membership
// @Accept json
// @Produce json
// @Param request body reqdto.MemberAuthRequest true "Credentials"
// @Success 200 {object} resdto.MemberAuthResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /membership/auth [post]
func (h *MembershipHandler) Authenticate(c *gin.Context) {
	sessionID, ok := middleware.MustSessionID(c)
	if !ok {
		return
	}

	var req reqdto.MemberAuthRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.membershipCommands.Authenticate(c.Request.Context(), sessionID, req.Mode, req.Name, req.Email, req.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAuthResult(result))
}

// @Summary Set daycare add-on
// @Description Toggle the monthly daycare add-on at the vow step
// @Tags membership
// @Accept json
// @Produce json
// @Param request body reqdto.DaycareRequest true "Daycare toggle"
// @Success 200 {object} queries.MembershipView
// @Failure 400 {object} map[string]string
// @Router /membership/daycare [put]
func (h *MembershipHandler) SetDaycare(c *gin.Context) {
	sessionID, ok := middleware.MustSessionID(c)
	if !ok {
		return
	}

	var req reqdto.DaycareRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.membershipCommands.SetDaycare(c.Request.Context(), sessionID, *req.Add)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Seal covenant
// @Description Process the vow payment and issue the member id
// @Tags membership
// @Accept json
// @Produce json
// @Param request body reqdto.SealCovenantRequest true "Vow details"
// @Success 200 {object} queries.MembershipView
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /membership/seal [post]
func (h *MembershipHandler) SealCovenant(c *gin.Context) {
	sessionID, ok := middleware.MustSessionID(c)
	if !ok {
		return
	}

	var req reqdto.SealCovenantRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.membershipCommands.SealCovenant(c.Request.Context(), sessionID, req.Daycare, req.Method)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Step back
// @Description Move one wizard step backward without losing entered data
// @Tags membership
// @Produce json
// @Success 200 {object} queries.MembershipView
// @Failure 409 {object} map[string]string
// @Router /membership/back [post]
func (h *MembershipHandler) Back(c *gin.Context) {
	sessionID, ok := middleware.MustSessionID(c)
	if !ok {
		return
	}

	view, err := h.membershipCommands.Back(c.Request.Context(), sessionID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Reset membership
// @Description Return the wizard to the tier step, dropping all state
// @Tags membership
// @Produce json
// @Success 200 {object} queries.MembershipView
// @Router /membership/reset [post]
func (h *MembershipHandler) Reset(c *gin.Context) {
	sessionID, ok := middleware.MustSessionID(c)
	if !ok {
		return
	}

	view, err := h.membershipCommands.Reset(c.Request.Context(), sessionID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *MembershipHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrTierNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Tier not found",
		})
	case errors.Is(err, commands.ErrUnknownPaymentMethod):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Unknown payment method",
		})
	case errors.Is(err, membership.ErrEmptyName),
		errors.Is(err, membership.ErrInvalidEmail),
		errors.Is(err, membership.ErrEmptyPassword),
		errors.Is(err, membership.ErrUnknownAuthMode):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Invalid credentials",
		})
	case errors.Is(err, membership.ErrDaycareIncluded):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Daycare is already included in this tier",
		})
	case errors.Is(err, membership.ErrTierRequired),
		errors.Is(err, membership.ErrNotAuthenticated):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Earlier wizard steps are incomplete",
		})
	case errors.Is(err, membership.ErrAlreadySealed),
		errors.Is(err, membership.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Invalid wizard transition",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
