package check_availability

// AvailabilityResponse результат проверки доступности дат
type AvailabilityResponse struct {
	ApartmentID string `json:"apartmentId"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Available   bool   `json:"available"`
}
