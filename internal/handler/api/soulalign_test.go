//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"leen-studio/internal/handler/api"
	"leen-studio/internal/usecase/queries"
	"leen-studio/internal/usecase/shared"
	"leen-studio/tests/common/httptest"
	queriesmock "leen-studio/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SoulAlignHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockSoulAlignQueries
	handler     *api.SoulAlignHandler
}

func (s *SoulAlignHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	// The production router enables this so a GET on the relay answers
	// 405 rather than 404.
	s.router.HandleMethodNotAllowed = true

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockSoulAlignQueries(s.mockCtrl)
	s.handler = api.NewSoulAlignHandler(s.mockQueries)

	s.router.POST("/soul-alignment", s.handler.Align)
}

func (s *SoulAlignHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSoulAlignHandlerSuite(t *testing.T) {
	suite.Run(t, new(SoulAlignHandlerTestSuite))
}

func (s *SoulAlignHandlerTestSuite) TestAlign() {
	url := "/soul-alignment"
	reqBody := map[string]any{"userFeeling": "anxious but hopeful"}

	s.Run("success: the userFeeling body key returns the mantra and recommendation", func() {
		view := &queries.AlignmentView{
			Mantra:         "Let peace carry you.",
			Recommendation: "Reformer: Ascension",
		}
		s.mockQueries.EXPECT().Align(gomock.Any(), "anxious but hopeful").
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response queries.AlignmentView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Reformer: Ascension", response.Recommendation)
	})

	s.Run("error: 400 Bad Request when userFeeling is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 500 when no API key is configured", func() {
		s.mockQueries.EXPECT().Align(gomock.Any(), "anxious but hopeful").
			Return(nil, shared.ErrAlignerNotConfigured).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Soul alignment is not configured")
	})

	s.Run("error: 500 for other failures", func() {
		s.mockQueries.EXPECT().Align(gomock.Any(), "anxious but hopeful").
			Return(nil, errors.New("relay failure")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})

	s.Run("error: 405 Method Not Allowed on GET", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		s.Equal(http.StatusMethodNotAllowed, rec.Code)
	})
}
