package apiclient

import (
	"context"

	"tripgo-web/referral"
)

// ReferralTreeResponse — дерево партнёрской сети вместе с агрегатами.
// Приходит одним ответом: раскрытие узлов дозагрузок не делает.
type ReferralTreeResponse struct {
	Tree  []referral.Node `json:"tree"`
	Stats *referral.Stats `json:"stats"`
}

// GetReferralTree запрашивает реферальную сеть текущего пользователя.
// 404 — пользователь не участник программы, 403 — нет доступа.
func (c *Client) GetReferralTree(ctx context.Context, token string) (*ReferralTreeResponse, error) {
	var out ReferralTreeResponse
	if err := c.get(ctx, "/affiliate/referral-tree", token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AffiliateProfile — сведения об участии в партнёрской программе.
type AffiliateProfile struct {
	PartnerCode string  `json:"partnerCode"`
	InviteLink  string  `json:"inviteLink"`
	Commission  float64 `json:"commissionPercent"`
}

// GetAffiliateProfile — код и пригласительная ссылка партнёра.
func (c *Client) GetAffiliateProfile(ctx context.Context, token string) (*AffiliateProfile, error) {
	var out AffiliateProfile
	if err := c.get(ctx, "/affiliate/profile", token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// JoinAffiliate регистрирует пользователя в партнёрской программе.
func (c *Client) JoinAffiliate(ctx context.Context, token string) (*AffiliateProfile, error) {
	var out AffiliateProfile
	if err := c.post(ctx, "/affiliate/join", token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
