//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"leen-studio/internal/domain/membership"
	"leen-studio/internal/handler/api"
	resdto "leen-studio/internal/handler/dto/response"
	"leen-studio/internal/usecase/commands"
	"leen-studio/internal/usecase/queries"
	"leen-studio/tests/common/httptest"
	commandsmock "leen-studio/tests/mock/commands"
	queriesmock "leen-studio/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type MembershipHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	sessionID    uuid.UUID
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockMembershipCommands
	mockQueries  *queriesmock.MockSessionQueries
	handler      *api.MembershipHandler
}

func (s *MembershipHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.sessionID = uuid.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockMembershipCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockSessionQueries(s.mockCtrl)
	s.handler = api.NewMembershipHandler(s.mockCommands, s.mockQueries)

	session := stubSession(s.sessionID)
	s.router.GET("/membership", session, s.handler.Get)
	s.router.POST("/membership/tier", session, s.handler.SelectTier)
	s.router.POST("/membership/auth", session, s.handler.Authenticate)
	s.router.PUT("/membership/daycare", session, s.handler.SetDaycare)
	s.router.POST("/membership/seal", session, s.handler.SealCovenant)
	s.router.POST("/membership/back", session, s.handler.Back)
	s.router.POST("/membership/reset", session, s.handler.Reset)
}

func (s *MembershipHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestMembershipHandlerSuite(t *testing.T) {
	suite.Run(t, new(MembershipHandlerTestSuite))
}

func (s *MembershipHandlerTestSuite) TestGet() {
	s.Run("success: returns the wizard state", func() {
		view := &queries.MembershipView{Step: "tier"}
		s.mockQueries.EXPECT().Membership(gomock.Any(), s.sessionID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/membership", nil, "")

		var response queries.MembershipView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("tier", response.Step)
	})
}

func (s *MembershipHandlerTestSuite) TestSelectTier() {
	url := "/membership/tier"

	s.Run("success: advances to the auth step", func() {
		view := &queries.MembershipView{Step: "auth", TotalCents: 25000}
		s.mockCommands.EXPECT().SelectTier(gomock.Any(), s.sessionID, "disciple").
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"tierId": "disciple"}, "")

		var response queries.MembershipView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(25000), response.TotalCents)
	})

	s.Run("error: 404 for an unknown tier", func() {
		s.mockCommands.EXPECT().SelectTier(gomock.Any(), s.sessionID, "gold").
			Return(nil, commands.ErrTierNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"tierId": "gold"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Tier not found")
	})

	s.Run("error: 400 Bad Request when tierId is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *MembershipHandlerTestSuite) TestAuthenticate() {
	url := "/membership/auth"
	reqBody := map[string]any{
		"mode":     "signup",
		"name":     "Grace",
		"email":    "grace@example.com",
		"password": "hallelujah",
	}

	s.Run("success: returns the token and membership view", func() {
		result := &commands.AuthResult{
			View:        &queries.MembershipView{Step: "vow", Authenticated: true},
			AccessToken: "signed.jwt.token",
		}
		s.mockCommands.EXPECT().Authenticate(gomock.Any(), s.sessionID, "signup", "Grace", "grace@example.com", "hallelujah").
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.MemberAuthResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("signed.jwt.token", response.AccessToken)
		s.True(response.Membership.Authenticated)
	})

	s.Run("error: 400 Bad Request for an unlisted mode", func() {
		body := map[string]any{"mode": "oauth", "email": "grace@example.com", "password": "x"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 422 for credential validation failures", func() {
		for _, domainErr := range []error{membership.ErrEmptyName, membership.ErrInvalidEmail, membership.ErrEmptyPassword} {
			s.mockCommands.EXPECT().Authenticate(gomock.Any(), s.sessionID, "signup", "Grace", "grace@example.com", "hallelujah").
				Return(nil, domainErr).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Invalid credentials")
		}
	})

	s.Run("error: 422 when no tier is selected", func() {
		s.mockCommands.EXPECT().Authenticate(gomock.Any(), s.sessionID, "signup", "Grace", "grace@example.com", "hallelujah").
			Return(nil, membership.ErrTierRequired).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Earlier wizard steps are incomplete")
	})
}

func (s *MembershipHandlerTestSuite) TestSetDaycare() {
	url := "/membership/daycare"

	s.Run("success: toggles the add-on", func() {
		view := &queries.MembershipView{Daycare: true, TotalCents: 26000}
		s.mockCommands.EXPECT().SetDaycare(gomock.Any(), s.sessionID, true).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"add": true}, "")

		var response queries.MembershipView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(26000), response.TotalCents)
	})

	s.Run("error: 400 when the tier already includes daycare", func() {
		s.mockCommands.EXPECT().SetDaycare(gomock.Any(), s.sessionID, true).
			Return(nil, membership.ErrDaycareIncluded).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"add": true}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Daycare is already included")
	})
}

func (s *MembershipHandlerTestSuite) TestSealCovenant() {
	url := "/membership/seal"
	reqBody := map[string]any{"daycare": false, "method": "paypal"}

	s.Run("success: returns the member id", func() {
		view := &queries.MembershipView{Step: "success", MemberID: "LOC-1234-25"}
		s.mockCommands.EXPECT().SealCovenant(gomock.Any(), s.sessionID, false, "paypal").
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response queries.MembershipView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("LOC-1234-25", response.MemberID)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "unknown payment method",
				commandsError:  commands.ErrUnknownPaymentMethod,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Unknown payment method",
			},
			{
				name:           "not authenticated",
				commandsError:  membership.ErrNotAuthenticated,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Earlier wizard steps are incomplete",
			},
			{
				name:           "already sealed",
				commandsError:  membership.ErrAlreadySealed,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Invalid wizard transition",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("store failure"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().SealCovenant(gomock.Any(), s.sessionID, false, "paypal").
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *MembershipHandlerTestSuite) TestBackAndReset() {
	s.Run("success: back returns 200 OK", func() {
		s.mockCommands.EXPECT().Back(gomock.Any(), s.sessionID).
			Return(&queries.MembershipView{Step: "auth"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/membership/back", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 409 at the first step", func() {
		s.mockCommands.EXPECT().Back(gomock.Any(), s.sessionID).
			Return(nil, membership.ErrInvalidTransition).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/membership/back", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Invalid wizard transition")
	})

	s.Run("success: reset returns the fresh wizard", func() {
		s.mockCommands.EXPECT().Reset(gomock.Any(), s.sessionID).
			Return(&queries.MembershipView{Step: "tier"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/membership/reset", nil, "")

		var response queries.MembershipView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("tier", response.Step)
	})
}
