package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ApartmentBooking/internal/domain"
	"github.com/m04kA/SMC-ApartmentBooking/pkg/daterange"
)

// maxBodyBytes ограничение размера тела запроса
const maxBodyBytes = 1 << 20

var validate = validator.New()

var (
	// ErrMalformedBody тело запроса не является корректным JSON
	ErrMalformedBody = errors.New("handlers: malformed request body")
	// ErrInvalidParam некорректный параметр пути или запроса
	ErrInvalidParam = errors.New("handlers: invalid parameter")
)

// DecodeJSON декодирует тело запроса
func DecodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	return nil
}

// DecodeAndValidate декодирует тело и проверяет теги validate.
// Ошибка валидации оборачивает domain.ErrInvalidInput.
func DecodeAndValidate(r *http.Request, dst interface{}) error {
	if err := DecodeJSON(r, dst); err != nil {
		return err
	}
	if err := validate.Struct(dst); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, describeValidation(err))
	}
	return nil
}

func describeValidation(err error) string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err.Error()
	}
	parts := make([]string, 0, len(ve))
	for _, fe := range ve {
		parts = append(parts, fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}

// RespondRequestError отвечает на ошибку разбора запроса: 400 для битого JSON, иначе по коду ошибки
func RespondRequestError(w http.ResponseWriter, err error, message string) {
	if errors.Is(err, ErrMalformedBody) || errors.Is(err, ErrInvalidParam) {
		RespondBadRequest(w, message)
		return
	}
	RespondDomainError(w, err)
}

// PathUUID читает UUID из переменной пути mux
func PathUUID(r *http.Request, name string) (uuid.UUID, error) {
	raw := mux.Vars(r)[name]
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s=%q", ErrInvalidParam, name, raw)
	}
	return id, nil
}

// QueryDate читает обязательную дату YYYY-MM-DD из query
func QueryDate(r *http.Request, name string) (time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return time.Time{}, fmt.Errorf("%w: %s is required", ErrInvalidParam, name)
	}
	d, err := daterange.Parse(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s=%q", ErrInvalidParam, name, raw)
	}
	return d, nil
}

// QueryUUID читает необязательный UUID из query, nil если параметр не задан
func QueryUUID(r *http.Request, name string) (*uuid.UUID, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s=%q", ErrInvalidParam, name, raw)
	}
	return &id, nil
}

// FormatDates форматирует список дат как YYYY-MM-DD
func FormatDates(days []time.Time) []string {
	out := make([]string, 0, len(days))
	for _, d := range days {
		out = append(out, daterange.Format(d))
	}
	return out
}
