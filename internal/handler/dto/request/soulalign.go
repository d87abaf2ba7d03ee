package request

type SoulAlignRequest struct {
	UserFeeling string `json:"userFeeling" binding:"required"`
}
