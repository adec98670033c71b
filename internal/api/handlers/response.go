package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/m04kA/SMC-ApartmentBooking/internal/domain"
)

const (
	CodeBadRequest   = "bad_request"
	CodeUnauthorized = "unauthorized"
	CodeForbidden    = "forbidden"

	msgInternalError = "внутренняя ошибка сервера"
)

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Сообщения по умолчанию для кодов бизнес-ошибок
var defaultMessages = map[string]string{
	domain.CodeInvalidRange:           "дата выезда должна быть позже даты заезда",
	domain.CodeTooFewNights:           "слишком мало ночей для этого апартамента",
	domain.CodeTooManyNights:          "слишком много ночей для этого апартамента",
	domain.CodeDatesNoLongerAvailable: "выбранные даты уже заняты, выберите другие",
	domain.CodePeriodAlreadyBooked:    "период уже забронирован",
	domain.CodeApartmentNotFound:      "апартамент не найден",
	domain.CodePeriodNotFound:         "период не найден",
	domain.CodeReservationNotFound:    "бронирование не найдено",
	domain.CodeStoreUnavailable:       "хранилище временно недоступно, повторите попытку",
	domain.CodeWrongBookingMode:       "операция недоступна для режима бронирования апартамента",
	domain.CodePeriodIsBooked:         "нельзя удалить забронированный период",
	domain.CodePeriodOverlap:          "период пересекается с другим периодом апартамента",
	domain.CodeBookingModeLocked:      "нельзя сменить режим бронирования, пока есть бронирования",
	domain.CodeInvalidInput:           "некорректные входные данные",
	domain.CodeOutcomeUnknown:         "результат бронирования неизвестен, проверьте доступность дат",
	domain.CodeInternal:               msgInternalError,
}

// StatusFor возвращает HTTP статус для кода ошибки
func StatusFor(code string) int {
	switch code {
	case domain.CodeInvalidRange, domain.CodeTooFewNights, domain.CodeTooManyNights,
		domain.CodeInvalidInput, domain.CodeWrongBookingMode:
		return http.StatusUnprocessableEntity
	case domain.CodeApartmentNotFound, domain.CodePeriodNotFound, domain.CodeReservationNotFound:
		return http.StatusNotFound
	case domain.CodeDatesNoLongerAvailable, domain.CodePeriodAlreadyBooked, domain.CodePeriodIsBooked,
		domain.CodePeriodOverlap, domain.CodeBookingModeLocked:
		return http.StatusConflict
	case domain.CodeStoreUnavailable:
		return http.StatusServiceUnavailable
	case domain.CodeOutcomeUnknown:
		return http.StatusGatewayTimeout
	case CodeBadRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// RespondJSON отправляет JSON ответ
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// RespondNoContent отправляет 204
func RespondNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// RespondError отправляет ошибку с кодом и сообщением
func RespondError(w http.ResponseWriter, status int, code, message string) {
	RespondJSON(w, status, ErrorResponse{Code: code, Message: message})
}

func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, CodeBadRequest, message)
}

func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, CodeUnauthorized, message)
}

func RespondForbidden(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusForbidden, CodeForbidden, message)
}

func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, domain.CodeInternal, msgInternalError)
}

// RespondDomainError отвечает на ошибку сервиса или use case и возвращает выбранный статус.
// Для ошибок валидации в сообщение попадает текст ошибки.
func RespondDomainError(w http.ResponseWriter, err error) int {
	code := domain.ErrorCode(err)
	status := StatusFor(code)

	message := defaultMessages[code]
	if code == domain.CodeInvalidInput || code == domain.CodeTooFewNights || code == domain.CodeTooManyNights {
		message = message + ": " + err.Error()
	}

	RespondError(w, status, code, message)
	return status
}
