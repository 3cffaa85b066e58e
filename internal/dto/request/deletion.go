package request

// DeleteUserRequest carries the ids for privileged tenant deletion. Both are
// required, but the check is done in the service so the failure surfaces as
// the MissingIdentifiers error before any provider call.
type DeleteUserRequest struct {
	UserID string `json:"userId"`
	ShopID string `json:"shopId"`
}
