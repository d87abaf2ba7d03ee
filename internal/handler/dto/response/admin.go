package response

type VerifyResponse struct {
	Verified bool `json:"verified"`
}

type CreatedResponse struct {
	ID string `json:"id"`
}
