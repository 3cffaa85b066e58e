package response

type QRCodeResponse struct {
	URL string `json:"url"`
}
