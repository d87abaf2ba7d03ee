package request

type AddCartItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Silent    bool   `json:"silent"`
}

type CartPromoRequest struct {
	Code string `json:"code" binding:"required"`
}

type CartDrawerRequest struct {
	Open *bool `json:"open" binding:"required"`
}
