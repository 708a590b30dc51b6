package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Domenick1991/booktofly/internal/auth"
	"github.com/Domenick1991/booktofly/internal/domain"
)

type MockFlightUseCase struct {
	mock.Mock
}

func (m *MockFlightUseCase) ListByType(ctx context.Context, flightType string) ([]domain.Flight, error) {
	args := m.Called(ctx, flightType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) GetByNumber(ctx context.Context, flightNumber string) (*domain.Flight, error) {
	args := m.Called(ctx, flightNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) Create(ctx context.Context, flight *domain.Flight) (*domain.Flight, error) {
	args := m.Called(ctx, flight)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) Update(ctx context.Context, flightNumber string, flight *domain.Flight) error {
	args := m.Called(ctx, flightNumber, flight)
	return args.Error(0)
}

func (m *MockFlightUseCase) Delete(ctx context.Context, flightNumber string) error {
	args := m.Called(ctx, flightNumber)
	return args.Error(0)
}

var testIssuer = auth.NewTokenIssuer([]byte("0123456789abcdef0123456789abcdef"), "booktofly", "booktofly-clients")

func newFlightRouter(service *MockFlightUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewFlightHandler(service, testIssuer, zap.NewNop()).Register(router.Group("/api/FlightDetailsController"))
	return router
}

func TestFlightHandler_ListByType(t *testing.T) {
	service := &MockFlightUseCase{}
	router := newFlightRouter(service)

	flights := []domain.Flight{{FlightNumber: "IF1", FlightName: "Air Alpha", FlightType: domain.FlightTypeInternational}}
	service.On("ListByType", mock.Anything, "IF").Return(flights, nil).Once()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/FlightDetailsController/DisplayFlightsByType/IF", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "IF1")
	service.AssertExpectations(t)
}

func TestFlightHandler_ListByType_BadCode(t *testing.T) {
	service := &MockFlightUseCase{}
	router := newFlightRouter(service)

	service.On("ListByType", mock.Anything, "XX").Return(nil, domain.ErrValidation).Once()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/FlightDetailsController/DisplayFlightsByType/XX", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFlightHandler_Get_NotFound(t *testing.T) {
	service := &MockFlightUseCase{}
	router := newFlightRouter(service)

	service.On("GetByNumber", mock.Anything, "DF9").Return(nil, domain.ErrNotFound).Once()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/FlightDetailsController/GetFlightDetails/DF9", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFlightHandler_Create(t *testing.T) {
	service := &MockFlightUseCase{}
	router := newFlightRouter(service)

	created := &domain.Flight{FlightNumber: "DF1", FlightName: "Air Alpha", Source: "Delhi", Destination: "Mumbai",
		AvailableSeats: 120, TicketPrice: 4500, DepartureTime: "10:30:00", ArrivalTime: "12:45:00",
		FlightType: domain.FlightTypeDomestic}
	service.On("Create", mock.Anything, mock.Anything).Return(created, nil).Once()

	token, err := testIssuer.Issue("root", auth.RoleAdmin, time.Hour)
	require.NoError(t, err)

	body := `{"flightNumber":"DF1","flightName":"Air Alpha","source":"Delhi","destination":"Mumbai","availableSeats":120,"ticketPrice":4500,"departureTime":"10:30:00","arrivalTime":"12:45:00"}`
	req := httptest.NewRequest("POST", "/api/FlightDetailsController/AddFlight", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "/api/FlightDetailsController/GetFlightDetails/DF1", w.Header().Get("Location"))
	assert.Contains(t, w.Body.String(), "Domestic Flight")
	service.AssertExpectations(t)
}

func TestFlightHandler_Create_RequiresAdmin(t *testing.T) {
	service := &MockFlightUseCase{}
	router := newFlightRouter(service)

	token, err := testIssuer.Issue("alice", auth.RoleUser, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/api/FlightDetailsController/AddFlight", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	service.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestFlightHandler_Create_BindingRejectsBadNumber(t *testing.T) {
	service := &MockFlightUseCase{}
	router := newFlightRouter(service)

	token, err := testIssuer.Issue("root", auth.RoleAdmin, time.Hour)
	require.NoError(t, err)

	body := `{"flightNumber":"XX1","flightName":"Air Alpha","source":"Delhi","destination":"Mumbai","availableSeats":120,"ticketPrice":4500,"departureTime":"10:30:00","arrivalTime":"12:45:00"}`
	req := httptest.NewRequest("POST", "/api/FlightDetailsController/AddFlight", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	service.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestFlightHandler_Delete_NotFound(t *testing.T) {
	service := &MockFlightUseCase{}
	router := newFlightRouter(service)

	service.On("Delete", mock.Anything, "DF9").Return(domain.ErrNotFound).Once()

	token, err := testIssuer.Issue("root", auth.RoleAdmin, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest("DELETE", "/api/FlightDetailsController/DeleteFlight/DF9", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
