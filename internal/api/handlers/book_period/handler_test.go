package book_period

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ApartmentBooking/internal/api/handlers"
	"github.com/m04kA/SMC-ApartmentBooking/internal/domain"
	bookPeriod "github.com/m04kA/SMC-ApartmentBooking/internal/usecase/book_period"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *bookPeriod.Request) (*bookPeriod.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*bookPeriod.Response)
	return resp, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(uc BookPeriodUseCase, periodID, body string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/periods/{periodId}/reservations", NewHandler(uc, nopLogger{}).Handle).Methods(http.MethodPost)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/periods/"+periodID+"/reservations", strings.NewReader(body)))
	return rec
}

func TestHandler_Created(t *testing.T) {
	periodID := uuid.New()
	start := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)

	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, &bookPeriod.Request{
		PeriodID: periodID,
		Guest:    domain.GuestInfo{Name: "Anna"},
	}).Return(&bookPeriod.Response{
		ID:          uuid.New(),
		ApartmentID: uuid.New(),
		PeriodID:    periodID,
		StartDate:   start,
		EndDate:     start.AddDate(0, 0, 7),
		Guest:       domain.GuestInfo{Name: "Anna"},
		Nights:      7,
		TotalAmount: 560,
		CreatedAt:   time.Now(),
	}, nil)

	rec := serve(uc, periodID.String(), `{"userName":"Anna"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp ReservationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, periodID.String(), resp.PeriodID)
	assert.Equal(t, 7, resp.Nights)
	uc.AssertExpectations(t)
}

func TestHandler_AlreadyBooked(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.Anything).Return(nil, domain.ErrPeriodAlreadyBooked)

	rec := serve(uc, uuid.NewString(), `{"userName":"Anna"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	var body handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, domain.CodePeriodAlreadyBooked, body.Code)
}

func TestHandler_InvalidPeriodID(t *testing.T) {
	uc := &mockUseCase{}

	rec := serve(uc, "not-a-uuid", `{"userName":"Anna"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}
