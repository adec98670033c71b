package validate_stay

// StayValidationResponse результат проверки количества ночей.
// При нарушении ограничений Valid=false и Code содержит код ошибки.
type StayValidationResponse struct {
	Valid   bool   `json:"valid"`
	Nights  int    `json:"nights"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}
