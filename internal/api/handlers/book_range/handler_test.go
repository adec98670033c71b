package book_range

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
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
	bookRange "github.com/m04kA/SMC-ApartmentBooking/internal/usecase/book_range"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *bookRange.Request) (*bookRange.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*bookRange.Response)
	return resp, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(uc BookRangeUseCase, apartmentID, body string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/apartments/{apartmentId}/reservations", NewHandler(uc, nopLogger{}).Handle).Methods(http.MethodPost)

	req := httptest.NewRequest(http.MethodPost, "/apartments/"+apartmentID+"/reservations", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

const validBody = `{"startDate":"2025-07-01","endDate":"2025-07-04","userName":"Ivan Petrov","userEmail":"ivan@example.com"}`

func TestHandler_Created(t *testing.T) {
	apartmentID := uuid.New()
	start := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 3)

	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *bookRange.Request) bool {
		return req.ApartmentID == apartmentID && req.StartDate.Equal(start) && req.EndDate.Equal(end) && req.Guest.Name == "Ivan Petrov"
	})).Return(&bookRange.Response{
		ID:          uuid.New(),
		ApartmentID: apartmentID,
		StartDate:   start,
		EndDate:     end,
		Guest:       domain.GuestInfo{Name: "Ivan Petrov"},
		Nights:      3,
		TotalAmount: 300,
		CreatedAt:   time.Now(),
	}, nil)

	rec := serve(uc, apartmentID.String(), validBody)

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp ReservationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2025-07-01", resp.StartDate)
	assert.Equal(t, "2025-07-04", resp.EndDate)
	assert.Equal(t, 3, resp.Nights)
	assert.Equal(t, 300.0, resp.TotalAmount)
	assert.Equal(t, "Ivan Petrov", resp.UserName)
	uc.AssertExpectations(t)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name       string
		ucErr      error
		wantStatus int
		wantCode   string
	}{
		{name: "lost race", ucErr: domain.ErrDatesNoLongerAvailable, wantStatus: http.StatusConflict, wantCode: domain.CodeDatesNoLongerAvailable},
		{name: "too many nights", ucErr: fmt.Errorf("%w: 3 nights, maximum 2", domain.ErrTooManyNights), wantStatus: http.StatusUnprocessableEntity, wantCode: domain.CodeTooManyNights},
		{name: "apartment missing", ucErr: domain.ErrApartmentNotFound, wantStatus: http.StatusNotFound, wantCode: domain.CodeApartmentNotFound},
		{name: "store down", ucErr: domain.WrapStore(errors.New("dial tcp")), wantStatus: http.StatusServiceUnavailable, wantCode: domain.CodeStoreUnavailable},
		{name: "unknown outcome", ucErr: fmt.Errorf("%w: %w", domain.ErrOutcomeUnknown, context.DeadlineExceeded), wantStatus: http.StatusGatewayTimeout, wantCode: domain.CodeOutcomeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.ucErr)

			rec := serve(uc, uuid.NewString(), validBody)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Code)
		})
	}
}

func TestHandler_RejectsBadInput(t *testing.T) {
	tests := []struct {
		name        string
		apartmentID string
		body        string
		wantStatus  int
	}{
		{name: "bad apartment id", apartmentID: "42", body: validBody, wantStatus: http.StatusBadRequest},
		{name: "malformed json", apartmentID: uuid.NewString(), body: `{"startDate":`, wantStatus: http.StatusBadRequest},
		{name: "missing guest name", apartmentID: uuid.NewString(), body: `{"startDate":"2025-07-01","endDate":"2025-07-04"}`, wantStatus: http.StatusUnprocessableEntity},
		{name: "bad date format", apartmentID: uuid.NewString(), body: `{"startDate":"01.07.2025","endDate":"2025-07-04","userName":"Ivan"}`, wantStatus: http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}

			rec := serve(uc, tt.apartmentID, tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
		})
	}
}
