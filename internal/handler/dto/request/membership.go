package request

type SelectTierRequest struct {
	TierID string `json:"tierId" binding:"required"`
}

type MemberAuthRequest struct {
	Mode     string `json:"mode" binding:"required,oneof=signup login"`
	Name     string `json:"name"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type SealCovenantRequest struct {
	Daycare bool   `json:"daycare"`
	Method  string `json:"method" binding:"required"`
}
