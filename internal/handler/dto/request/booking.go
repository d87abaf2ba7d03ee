package request

type SelectServiceRequest struct {
	ServiceID string `json:"serviceId" binding:"required"`
}

type SoulCheckRequest struct {
	Feeling string `json:"feeling" binding:"required"`
}

type SelectScheduleRequest struct {
	Date     string `json:"date" binding:"required"`
	TimeSlot string `json:"timeSlot" binding:"required"`
}

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Channel string `json:"channel" binding:"required,oneof=email phone"`
	Value   string `json:"value" binding:"required"`
}

type BookingPromoRequest struct {
	Code string `json:"code" binding:"required"`
}

type DaycareRequest struct {
	Add *bool `json:"add" binding:"required"`
}

type ConfirmBookingRequest struct {
	Daycare bool   `json:"daycare"`
	Method  string `json:"method" binding:"required"`
}
