package period_availability

// PeriodAvailabilityResponse можно ли забронировать период
type PeriodAvailabilityResponse struct {
	ApartmentID string `json:"apartmentId"`
	PeriodID    string `json:"periodId"`
	Available   bool   `json:"available"`
}
