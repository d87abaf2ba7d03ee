package response

import (
	"leen-studio/internal/usecase/commands"
	"leen-studio/internal/usecase/queries"
)

type MemberAuthResponse struct {
	AccessToken string                  `json:"accessToken"`
	Membership  *queries.MembershipView `json:"membership"`
}

func FromAuthResult(r *commands.AuthResult) *MemberAuthResponse {
	return &MemberAuthResponse{
		AccessToken: r.AccessToken,
		Membership:  r.View,
	}
}
