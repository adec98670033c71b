package delete_reservation

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ApartmentBooking/internal/api/middleware"
	"github.com/m04kA/SMC-ApartmentBooking/internal/domain"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Delete(ctx context.Context, kind domain.ReservationKind, id uuid.UUID) error {
	return m.Called(ctx, kind, id).Error(0)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(svc ReservationService, target string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/reservations/{kind}/{reservationId}", NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodDelete)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, target, nil))
	return rec
}

func TestHandler(t *testing.T) {
	id := uuid.New()

	svc := &mockService{}
	svc.On("Delete", mock.Anything, domain.ReservationKindPeriod, id).Return(nil).Once()
	svc.On("Delete", mock.Anything, domain.ReservationKindPeriod, id).Return(domain.ErrReservationNotFound).Once()

	rec := serve(svc, "/reservations/period/"+id.String())
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = serve(svc, "/reservations/period/"+id.String())
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(svc, "/reservations/period/123")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	svc.AssertExpectations(t)
}

type recordingLogger struct {
	mu    sync.Mutex
	infos []string
}

func (l *recordingLogger) Info(format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.infos = append(l.infos, fmt.Sprintf(format, v...))
}

func (l *recordingLogger) Warn(string, ...interface{})  {}
func (l *recordingLogger) Error(string, ...interface{}) {}

func TestHandler_LogsAdminSubject(t *testing.T) {
	const secret = "test-secret"
	id := uuid.New()

	svc := &mockService{}
	svc.On("Delete", mock.Anything, domain.ReservationKindRange, id).Return(nil)

	log := &recordingLogger{}
	router := mux.NewRouter()
	admin := router.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(secret, "admin", log))
	admin.HandleFunc("/reservations/{kind}/{reservationId}", NewHandler(svc, log).Handle).Methods(http.MethodDelete)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, middleware.AdminClaims{
		Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "ops@example.com",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte(secret))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodDelete, "/admin/reservations/range/"+id.String(), nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Len(t, log.infos, 1)
	assert.Contains(t, log.infos[0], "admin=ops@example.com")
	assert.Contains(t, log.infos[0], id.String())
	svc.AssertExpectations(t)
}
