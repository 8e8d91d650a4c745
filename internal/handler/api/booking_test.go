//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"staybook/internal/domain/user"
	"staybook/internal/handler/api"
	resdto "staybook/internal/handler/dto/response"
	"staybook/internal/usecase/commands"
	"staybook/internal/usecase/queries"
	"staybook/tests/common/builder"
	"staybook/tests/common/httptest"
	"staybook/tests/common/testutil"
	commandsmock "staybook/tests/mock/commands"
	queriesmock "staybook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
	authedUserID uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)
	s.authedUserID = uuid.New()

	// Bookings are open to guests; a bearer token attaches the user.
	optionalAuth := func(c *gin.Context) {
		if token := c.GetHeader("Authorization"); token != "" {
			c.Set("user_id", s.authedUserID)
			role := user.RoleGuest
			if strings.Contains(token, "admin") {
				role = user.RoleAdmin
			}
			c.Set("user_role", role)
		}
		c.Next()
	}
	requireAuth := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		c.Set("user_id", s.authedUserID)
		c.Next()
	}

	s.router.POST("/bookings", optionalAuth, s.handler.CreateBooking)
	s.router.GET("/bookings", optionalAuth, s.handler.ListGuestBookings)
	s.router.GET("/bookings/:id", optionalAuth, s.handler.GetBooking)
	s.router.GET("/admin/bookings", requireAuth, s.handler.ListAllBookings)
	s.router.PATCH("/admin/bookings/:id/status", requireAuth, s.handler.UpdateBookingStatus)
	s.router.DELETE("/admin/bookings/:id", requireAuth, s.handler.DeleteBooking)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

// ================================================================================
// TestCreateBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/bookings"

	reqBody := builder.NewBookingBuilder().BuildCreateRequestDTO()
	returnView := builder.NewBookingBuilder().BuildViewQuery()

	s.Run("success: returns 201 Created for anonymous guest", func() {
		s.mockCommands.EXPECT().Admit(gomock.Any(), gomock.Any(), (*uuid.UUID)(nil)).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal(returnView.Nights, response.Nights)
		s.Equal(returnView.TotalCents, response.TotalPrice)
		s.Equal(returnView.Status, response.Status)
	})

	s.Run("success: attaches the authenticated user", func() {
		s.mockCommands.EXPECT().Admit(gomock.Any(), gomock.Any(), gomock.Not(gomock.Nil())).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 Bad Request when apartment id is missing", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("apartment", nil))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 400 Bad Request for malformed body", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("guests", "two"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: maps admission errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "apartment not found",
				commandsError:  commands.ErrApartmentNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Apartment not found",
			},
			{
				name:           "apartment unavailable",
				commandsError:  commands.ErrApartmentUnavailable,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "not available",
			},
			{
				name:           "invalid date range",
				commandsError:  commands.ErrInvalidDateRange,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Check-out date must be after check-in date",
			},
			{
				name:           "capacity exceeded",
				commandsError:  commands.ErrCapacityExceeded,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "exceeds apartment capacity",
			},
			{
				name:           "missing guest info",
				commandsError:  commands.ErrMissingGuestInfo,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Guest name, email and phone are required",
			},
			{
				name:           "date conflict",
				commandsError:  commands.ErrDateConflict,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "already booked for the selected dates",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Admit(gomock.Any(), reqBody, gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGetBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetBooking() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String()

	returnView := builder.NewBookingBuilder().BuildViewQuery()
	returnView.ID = bookingID

	s.Run("success: returns 200 OK with BookingResponse", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), bookingID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(bookingID, response.ID)
		s.Equal(returnView.GuestEmail, response.GuestEmail)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/invalid-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID")
	})

	s.Run("error: 404 Not Found for missing booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), bookingID).
			Return(nil, queries.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 500 on query failure", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), bookingID).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestListGuestBookings
// ================================================================================

func (s *BookingHandlerTestSuite) TestListGuestBookings() {
	items := []*queries.BookingView{
		builder.NewBookingBuilder().BuildViewQuery(),
		builder.NewBookingBuilder().BuildViewQuery(),
	}

	s.Run("success: filters by guest email", func() {
		s.mockQueries.EXPECT().ListForGuest(gomock.Any(), "maria@example.com", "").
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?email=maria@example.com", nil, "")

		var response []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
	})

	s.Run("success: filters by guest phone", func() {
		s.mockQueries.EXPECT().ListForGuest(gomock.Any(), "", "+351-912-000-111").
			Return(items[:1], nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?phone=%2B351-912-000-111", nil, "")

		var response []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})

	s.Run("success: lowercases the email filter", func() {
		s.mockQueries.EXPECT().ListForGuest(gomock.Any(), "maria@example.com", "").
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?email=Maria@Example.COM", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: accepts the long-form parameter names", func() {
		s.mockQueries.EXPECT().ListForGuest(gomock.Any(), "maria@example.com", "+351-912-000-111").
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?guestEmail=maria@example.com&guestPhone=%2B351-912-000-111", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: admins see every booking regardless of filters", func() {
		s.mockQueries.EXPECT().ListAll(gomock.Any()).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?email=maria@example.com", nil, "admin-token")

		var response []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
	})

	s.Run("success: non-admin tokens still get the filtered view", func() {
		s.mockQueries.EXPECT().ListForGuest(gomock.Any(), "maria@example.com", "").
			Return(items[:1], nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?email=maria@example.com", nil, "guest-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: empty filters return an empty list", func() {
		s.mockQueries.EXPECT().ListForGuest(gomock.Any(), "", "").
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "")

		var response []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response)
	})

	s.Run("error: 500 on query failure", func() {
		s.mockQueries.EXPECT().ListForGuest(gomock.Any(), "", "").
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestListAllBookings
// ================================================================================

func (s *BookingHandlerTestSuite) TestListAllBookings() {
	url := "/admin/bookings"

	items := []*queries.BookingView{
		builder.NewBookingBuilder().BuildViewQuery(),
	}

	s.Run("success: returns every booking", func() {
		s.mockQueries.EXPECT().ListAll(gomock.Any()).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Authentication required")
	})
}

// ================================================================================
// TestUpdateBookingStatus
// ================================================================================

func (s *BookingHandlerTestSuite) TestUpdateBookingStatus() {
	bookingID := uuid.New()
	url := "/admin/bookings/" + bookingID.String() + "/status"

	reqBody := map[string]string{"status": "confirmed"}
	returnView := builder.NewBookingBuilder().BuildViewQuery()
	returnView.ID = bookingID
	returnView.Status = "confirmed"

	s.Run("success: returns 200 OK with the updated booking", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), bookingID, "confirmed").
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("confirmed", response.Status)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/admin/bookings/invalid-uuid/status", reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID")
	})

	s.Run("error: 400 Bad Request when status is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]string{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Authentication required")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "unknown status value",
				commandsError:  commands.ErrInvalidStatusValue,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid booking status",
			},
			{
				name:           "booking not found",
				commandsError:  commands.ErrBookingNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Booking not found",
			},
			{
				name:           "reactivation conflicts with a newer booking",
				commandsError:  commands.ErrDateConflict,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "already booked",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), bookingID, "confirmed").
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestDeleteBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestDeleteBooking() {
	bookingID := uuid.New()
	url := "/admin/bookings/" + bookingID.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), bookingID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/bookings/invalid-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Authentication required")
	})

	s.Run("error: 404 Not Found for missing booking", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), bookingID).
			Return(commands.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}
