package referral

import "time"

// Статусы реферала в партнёрской программе
const (
	StatusActive = "active"
)

// ReferralUser — учётка приглашённого пользователя внутри узла дерева.
type ReferralUser struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

// Node — один участник реферальной сети вместе со своей структурой.
// Дерево целиком считает и отдаёт backend; веб-слой его не пересчитывает.
type Node struct {
	ID                   string       `json:"id"`
	Level                int          `json:"level"` // 1 = приглашён напрямую
	Status               string       `json:"status"`
	Verified             bool         `json:"verified"`
	TotalEarnings        float64      `json:"totalEarnings"`
	DirectReferralsCount int          `json:"directReferralsCount"`
	CreatedAt            time.Time    `json:"createdAt"`
	User                 ReferralUser `json:"user"`
	Children             []Node       `json:"children,omitempty"`
}

// Stats — агрегаты по всей сети, посчитанные backend'ом.
type Stats struct {
	TotalReferrals             int     `json:"totalReferrals"`
	DirectReferrals            int     `json:"directReferrals"`
	ActiveReferrals            int     `json:"activeReferrals"`
	TotalEarnings              float64 `json:"totalEarnings"`
	AverageEarningsPerReferral float64 `json:"averageEarningsPerReferral"`
}

// HasChildren — есть ли у узла своя структура. Отсутствующий и пустой
// список детей равнозначны.
func (n *Node) HasChildren() bool {
	return len(n.Children) > 0
}

// TopLevelIDs возвращает идентификаторы узлов первого уровня.
func TopLevelIDs(nodes []Node) []string {
	ids := make([]string, 0, len(nodes))
	for i := range nodes {
		ids = append(ids, nodes[i].ID)
	}
	return ids
}
