//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"leen-studio/internal/domain/booking"
	"leen-studio/internal/handler/api"
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

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	sessionID    uuid.UUID
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockSessionQueries
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.sessionID = uuid.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockSessionQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	session := stubSession(s.sessionID)
	s.router.GET("/booking", session, s.handler.Get)
	s.router.POST("/booking/service", session, s.handler.SelectService)
	s.router.POST("/booking/soul-check", session, s.handler.SoulCheck)
	s.router.POST("/booking/schedule", session, s.handler.SelectSchedule)
	s.router.POST("/booking/contact", session, s.handler.SetContact)
	s.router.POST("/booking/promo", session, s.handler.ApplyPromo)
	s.router.PUT("/booking/daycare", session, s.handler.SetDaycare)
	s.router.POST("/booking/confirm", session, s.handler.Confirm)
	s.router.POST("/booking/back", session, s.handler.Back)
	s.router.POST("/booking/reset", session, s.handler.Reset)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestGet() {
	s.Run("success: returns the wizard state with date window and slots", func() {
		view := &queries.BookingView{
			Step:       "service",
			DateWindow: []string{"2025-06-16"},
			TimeSlots:  []string{"07:00 AM"},
		}
		s.mockQueries.EXPECT().Booking(gomock.Any(), s.sessionID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/booking", nil, "")

		var response queries.BookingView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("service", response.Step)
		s.NotEmpty(response.DateWindow)
	})
}

func (s *BookingHandlerTestSuite) TestSelectService() {
	url := "/booking/service"

	s.Run("success: returns 200 OK with the advanced wizard", func() {
		view := &queries.BookingView{Step: "schedule"}
		s.mockCommands.EXPECT().SelectService(gomock.Any(), s.sessionID, "2").
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"serviceId": "2"}, "")

		var response queries.BookingView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("schedule", response.Step)
	})

	s.Run("error: 404 for an unknown service", func() {
		s.mockCommands.EXPECT().SelectService(gomock.Any(), s.sessionID, "99").
			Return(nil, commands.ErrServiceNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"serviceId": "99"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Service not found")
	})

	s.Run("error: 400 Bad Request when serviceId is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *BookingHandlerTestSuite) TestSoulCheck() {
	url := "/booking/soul-check"

	s.Run("success: records the alignment and advances", func() {
		view := &queries.BookingView{
			Step:      "schedule",
			Alignment: &queries.AlignmentView{Mantra: "Peace.", Recommendation: "Mat: Grounded Faith"},
		}
		s.mockCommands.EXPECT().SoulCheck(gomock.Any(), s.sessionID, "weary but hopeful").
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"feeling": "weary but hopeful"}, "")

		var response queries.BookingView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.NotNil(response.Alignment)
	})

	s.Run("error: 400 Bad Request when feeling is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *BookingHandlerTestSuite) TestSelectSchedule() {
	url := "/booking/schedule"
	reqBody := map[string]any{"date": "2025-06-16", "timeSlot": "10:00 AM"}

	s.Run("success: returns 200 OK", func() {
		view := &queries.BookingView{Step: "contact", Date: "2025-06-16", TimeSlot: "10:00 AM"}
		s.mockCommands.EXPECT().SelectSchedule(gomock.Any(), s.sessionID, "2025-06-16", "10:00 AM").
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "date outside the window",
				commandsError:  booking.ErrDateOutOfWindow,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid schedule selection",
			},
			{
				name:           "unknown time slot",
				commandsError:  booking.ErrUnknownTimeSlot,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid schedule selection",
			},
			{
				name:           "service not selected yet",
				commandsError:  booking.ErrServiceRequired,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Earlier wizard steps are incomplete",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().SelectSchedule(gomock.Any(), s.sessionID, "2025-06-16", "10:00 AM").
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestSetContact() {
	url := "/booking/contact"
	reqBody := map[string]any{"name": "Grace", "channel": "email", "value": "grace@example.com"}

	s.Run("success: returns 200 OK", func() {
		view := &queries.BookingView{Step: "offering"}
		s.mockCommands.EXPECT().SetContact(gomock.Any(), s.sessionID, "Grace", "email", "grace@example.com").
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request for an unlisted channel", func() {
		body := map[string]any{"name": "Grace", "channel": "fax", "value": "grace@example.com"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 422 for contact validation failures", func() {
		for _, domainErr := range []error{booking.ErrEmptyName, booking.ErrInvalidEmail, booking.ErrInvalidPhone} {
			s.mockCommands.EXPECT().SetContact(gomock.Any(), s.sessionID, "Grace", "email", "grace@example.com").
				Return(nil, domainErr).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Invalid contact details")
		}
	})
}

func (s *BookingHandlerTestSuite) TestApplyPromo() {
	url := "/booking/promo"

	s.Run("success: returns 200 OK with the discount", func() {
		view := &queries.BookingView{PromoCode: "ALIGN", DiscountCents: 500}
		s.mockCommands.EXPECT().ApplyPromo(gomock.Any(), s.sessionID, "ALIGN").
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"code": "ALIGN"}, "")

		var response queries.BookingView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(500), response.DiscountCents)
	})

	s.Run("error: 400 for an unknown code", func() {
		s.mockCommands.EXPECT().ApplyPromo(gomock.Any(), s.sessionID, "BOGUS").
			Return(nil, booking.ErrUnknownPromo).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"code": "BOGUS"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, booking.ErrUnknownPromo.Error())
	})
}

func (s *BookingHandlerTestSuite) TestSetDaycare() {
	url := "/booking/daycare"

	s.Run("success: toggles the add-on", func() {
		view := &queries.BookingView{Daycare: true, TotalCents: 3000}
		s.mockCommands.EXPECT().SetDaycare(gomock.Any(), s.sessionID, true).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"add": true}, "")

		var response queries.BookingView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Daycare)
	})

	s.Run("error: 400 Bad Request when add is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *BookingHandlerTestSuite) TestConfirm() {
	url := "/booking/confirm"
	reqBody := map[string]any{"daycare": true, "method": "debit"}

	s.Run("success: returns the ticket", func() {
		view := &queries.BookingView{Step: "ticket", TicketID: "LOC-12345-2025"}
		s.mockCommands.EXPECT().Confirm(gomock.Any(), s.sessionID, true, "debit").
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response queries.BookingView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("LOC-12345-2025", response.TicketID)
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
				name:           "incomplete earlier steps",
				commandsError:  booking.ErrContactRequired,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Earlier wizard steps are incomplete",
			},
			{
				name:           "already confirmed",
				commandsError:  booking.ErrAlreadyConfirmed,
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
				s.mockCommands.EXPECT().Confirm(gomock.Any(), s.sessionID, true, "debit").
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestBack() {
	s.Run("success: returns 200 OK", func() {
		s.mockCommands.EXPECT().Back(gomock.Any(), s.sessionID).
			Return(&queries.BookingView{Step: "contact"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/booking/back", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 409 at the first step", func() {
		s.mockCommands.EXPECT().Back(gomock.Any(), s.sessionID).
			Return(nil, booking.ErrInvalidTransition).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/booking/back", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Invalid wizard transition")
	})
}

func (s *BookingHandlerTestSuite) TestReset() {
	s.Run("success: returns the fresh wizard", func() {
		s.mockCommands.EXPECT().Reset(gomock.Any(), s.sessionID).
			Return(&queries.BookingView{Step: "service"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/booking/reset", nil, "")

		var response queries.BookingView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("service", response.Step)
	})
}
