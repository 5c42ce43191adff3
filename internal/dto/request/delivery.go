package request

type UpdateDeliveryStatusRequest struct {
	Status         string  `json:"status" validate:"required,oneof=preparing shipped delivered returned"`
	TrackingNumber *string `json:"tracking_number,omitempty" validate:"omitempty,min=4,max=64"`
}
