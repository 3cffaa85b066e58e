package request

// Status values contain spaces ("On Progress"), so the allowed set is
// checked in the service against entity.OrderStatuses rather than a oneof tag.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
