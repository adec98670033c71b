package validate_stay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ApartmentBooking/internal/domain"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) ValidateStay(ctx context.Context, apartmentID uuid.UUID, start, end time.Time) error {
	return m.Called(ctx, apartmentID, start, end).Error(0)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(svc AvailabilityService, target string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/apartments/{apartmentId}/stay-validation", NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandler(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		svcErr     error
		wantStatus int
		wantValid  bool
		wantCode   string
		wantNights int
	}{
		{name: "valid stay", query: "?start=2025-07-01&end=2025-07-04", wantStatus: http.StatusOK, wantValid: true, wantNights: 3},
		{name: "too few nights", query: "?start=2025-07-01&end=2025-07-02", svcErr: fmt.Errorf("%w: 1 nights, minimum 2", domain.ErrTooFewNights), wantStatus: http.StatusOK, wantCode: domain.CodeTooFewNights, wantNights: 1},
		{name: "inverted range", query: "?start=2025-07-04&end=2025-07-01", svcErr: domain.ErrInvalidRange, wantStatus: http.StatusOK, wantCode: domain.CodeInvalidRange, wantNights: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			svc.On("ValidateStay", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(tt.svcErr)

			rec := serve(svc, "/apartments/"+uuid.NewString()+"/stay-validation"+tt.query)

			require.Equal(t, tt.wantStatus, rec.Code)
			var resp StayValidationResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantValid, resp.Valid)
			assert.Equal(t, tt.wantCode, resp.Code)
			assert.Equal(t, tt.wantNights, resp.Nights)
		})
	}
}

func TestHandler_ServiceFailures(t *testing.T) {
	svc := &mockService{}
	svc.On("ValidateStay", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(domain.ErrWrongBookingMode)
	rec := serve(svc, "/apartments/"+uuid.NewString()+"/stay-validation?start=2025-07-01&end=2025-07-04")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	svc = &mockService{}
	svc.On("ValidateStay", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(domain.WrapStore(errors.New("down")))
	rec = serve(svc, "/apartments/"+uuid.NewString()+"/stay-validation?start=2025-07-01&end=2025-07-04")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandler_MissingDates(t *testing.T) {
	svc := &mockService{}

	rec := serve(svc, "/apartments/"+uuid.NewString()+"/stay-validation?start=2025-07-01")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "ValidateStay", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
