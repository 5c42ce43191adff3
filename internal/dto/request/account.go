package request

type UpdateAccountStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active inactive suspended"`
}
