package referral

import (
	"strings"
	"testing"
	"time"
)

func testTree() []Node {
	joined := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	return []Node{
		{
			ID: "n1", Level: 1, Status: StatusActive, Verified: true,
			TotalEarnings: 1500, DirectReferralsCount: 2, CreatedAt: joined,
			User: ReferralUser{ID: "u1", Email: "anna@example.com", FirstName: "Anna", LastName: "Ivanova"},
			Children: []Node{
				{
					ID: "n1-1", Level: 2, Status: "inactive",
					CreatedAt: joined, User: ReferralUser{ID: "u2", Email: "boris@example.com"},
				},
				{
					ID: "n1-2", Level: 2, Status: StatusActive, DirectReferralsCount: 1,
					CreatedAt: joined, User: ReferralUser{ID: "u3", Email: "vera@example.com", FirstName: "Vera"},
					Children: []Node{
						{ID: "n1-2-1", Level: 3, Status: StatusActive, CreatedAt: joined,
							User: ReferralUser{ID: "u4", Email: "gleb@example.com"}},
					},
				},
			},
		},
		{
			ID: "n2", Level: 1, Status: "pending", CreatedAt: joined,
			User: ReferralUser{ID: "u5", Email: "dima@example.com"},
		},
		{
			ID: "n3", Level: 1, Status: StatusActive, CreatedAt: joined,
			User:     ReferralUser{ID: "u6", Email: "egor@example.com"},
			Children: []Node{},
		},
	}
}

func TestRenderCollapsedShowsOnlyTopLevel(t *testing.T) {
	rows := Render(testTree(), NewExpansionState(), "/referral")
	if len(rows) != 3 {
		t.Fatalf("expected 3 top-level rows, got %d", len(rows))
	}
	for _, r := range rows {
		if r.Depth != 0 {
			t.Errorf("row %s: depth = %d, want 0", r.ID, r.Depth)
		}
	}
}

// Кнопка раскрытия есть только у узлов с детьми; пустой и отсутствующий
// список детей равнозначны.
func TestRenderExpandAffordance(t *testing.T) {
	rows := Render(testTree(), NewExpansionState(), "/referral")
	byID := map[string]Row{}
	for _, r := range rows {
		byID[r.ID] = r
	}

	if !byID["n1"].HasChildren {
		t.Errorf("n1 has children, affordance expected")
	}
	if byID["n1"].ToggleURL == "" {
		t.Errorf("n1 must have a toggle link")
	}
	if byID["n2"].HasChildren {
		t.Errorf("n2 is a leaf (children absent), no affordance expected")
	}
	if byID["n3"].HasChildren {
		t.Errorf("n3 is a leaf (children empty), no affordance expected")
	}
	if byID["n2"].ToggleURL != "" || byID["n3"].ToggleURL != "" {
		t.Errorf("leaves must not get toggle links")
	}
}

func TestRenderExpandedNestsChildren(t *testing.T) {
	s := ParseExpansion("n1")
	rows := Render(testTree(), s, "/referral")
	// n1 + два ребёнка + n2 + n3
	if len(rows) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(rows))
	}
	if rows[0].ID != "n1" || rows[1].ID != "n1-1" || rows[2].ID != "n1-2" {
		t.Fatalf("unexpected order: %s %s %s", rows[0].ID, rows[1].ID, rows[2].ID)
	}
	if rows[1].Depth != 1 || rows[2].Depth != 1 {
		t.Fatalf("children must be one depth level deeper")
	}
	// Внук n1-2-1 не виден: n1-2 не раскрыт
	for _, r := range rows {
		if r.ID == "n1-2-1" {
			t.Fatalf("grandchild rendered while its parent is collapsed")
		}
	}

	s.Toggle("n1-2")
	rows = Render(testTree(), s, "/referral")
	if len(rows) != 6 {
		t.Fatalf("expected 6 rows with grandchild, got %d", len(rows))
	}
}

func TestTierSaturates(t *testing.T) {
	cases := []struct {
		level int
		want  int
	}{
		{0, 1}, {1, 1}, {2, 2}, {3, 3}, {4, 4}, {5, 4}, {7, 4}, {42, 4},
	}
	for _, tc := range cases {
		if got := Tier(tc.level); got != tc.want {
			t.Errorf("Tier(%d) = %d, want %d", tc.level, got, tc.want)
		}
	}
	// Узел 7-го уровня рисуется тем же ярусом, что и узел 4-го
	if Tier(7) != Tier(4) {
		t.Errorf("levels 7 and 4 must share a tier")
	}
}

func TestRenderRowContent(t *testing.T) {
	rows := Render(testTree(), NewExpansionState(), "/referral")
	n1 := rows[0]

	if n1.DisplayName != "Anna Ivanova" {
		t.Errorf("display name = %q", n1.DisplayName)
	}
	if !n1.Verified {
		t.Errorf("verified flag lost")
	}
	if n1.JoinDate != "15.03.2024" {
		t.Errorf("join date = %q", n1.JoinDate)
	}
	if n1.Earnings != "1 500,00 ₽" {
		t.Errorf("earnings = %q", n1.Earnings)
	}
	if n1.DirectCountLabel != "2 реферала" {
		t.Errorf("direct count label = %q", n1.DirectCountLabel)
	}
	if !n1.StatusActive || n1.StatusLabel != "Активен" {
		t.Errorf("status = %v %q", n1.StatusActive, n1.StatusLabel)
	}

	n2 := rows[1]
	if n2.DirectCountLabel != "" {
		t.Errorf("zero referrals must render no count label, got %q", n2.DirectCountLabel)
	}
	if n2.StatusActive {
		t.Errorf("pending status must not be active")
	}
}

// Зацикленный или аномально глубокий ответ не должен уронить рендер.
func TestRenderDepthCap(t *testing.T) {
	deep := Node{ID: "d0", Level: 1, User: ReferralUser{Email: "d@example.com"}}
	cur := &deep
	ids := []string{"d0"}
	for i := 1; i < 100; i++ {
		id := "d" + strings.Repeat("x", i)
		cur.Children = []Node{{ID: id, Level: i + 1, User: ReferralUser{Email: "d@example.com"}}}
		cur = &cur.Children[0]
		ids = append(ids, id)
	}

	s := NewExpansionState()
	for _, id := range ids {
		s[id] = struct{}{}
	}

	rows := Render([]Node{deep}, s, "/referral")
	if len(rows) != maxRenderDepth {
		t.Fatalf("expected render capped at %d rows, got %d", maxRenderDepth, len(rows))
	}
}

func TestRenderStatsVerbatim(t *testing.T) {
	view := RenderStats(&Stats{
		TotalReferrals:             10,
		DirectReferrals:            3,
		ActiveReferrals:            7,
		TotalEarnings:              2500,
		AverageEarningsPerReferral: 250,
	})
	if view == nil {
		t.Fatal("expected stats view")
	}
	if view.TotalReferrals != 10 || view.DirectReferrals != 3 || view.ActiveReferrals != 7 {
		t.Fatalf("counts changed: %+v", view)
	}
	if view.TotalEarnings != "2 500,00 ₽" {
		t.Fatalf("total earnings = %q", view.TotalEarnings)
	}
}

func TestRenderStatsNilOmitsPanel(t *testing.T) {
	if RenderStats(nil) != nil {
		t.Fatal("nil stats must produce no panel")
	}
}
