package referral

import "fmt"

// maxRenderDepth страхует от зацикленного ответа backend'а: сервер
// гарантирует дерево, но слепо доверять этому не стоит.
const maxRenderDepth = 16

// tierCount — количество визуальных ярусов. Уровни глубже последнего
// яруса прижимаются к нему, а не плодят новые стили.
const tierCount = 4

// Row — один узел дерева, подготовленный к выводу в шаблоне.
// Дерево разворачивается в плоский список: шаблону остаётся только range.
type Row struct {
	ID               string
	Depth            int // 0 — узлы первого уровня
	Level            int
	Tier             int // 1..tierCount
	DisplayName      string
	Verified         bool
	JoinDate         string
	Earnings         string
	StatusActive     bool
	StatusLabel      string
	DirectCountLabel string // пусто, когда рефералов нет
	HasChildren      bool
	Expanded         bool
	ToggleURL        string
}

// StatsView — значения панели агрегатов, как их прислал backend.
type StatsView struct {
	TotalReferrals  int
	DirectReferrals int
	ActiveReferrals int
	TotalEarnings   string
	AverageEarnings string
}

// Tier возвращает визуальный ярус для уровня: 1..4, глубже — всегда 4.
func Tier(level int) int {
	if level < 1 {
		return 1
	}
	if level > tierCount {
		return tierCount
	}
	return level
}

// Render разворачивает дерево в список строк с учётом множества раскрытия.
// Чистая функция от (дерево, множество): никаких дозагрузок при раскрытии —
// все потомки уже пришли в исходном ответе.
func Render(nodes []Node, expansion ExpansionState, path string) []Row {
	rows := make([]Row, 0, len(nodes))
	for i := range nodes {
		rows = renderNode(rows, &nodes[i], expansion, path, 0)
	}
	return rows
}

func renderNode(rows []Row, n *Node, expansion ExpansionState, path string, depth int) []Row {
	if depth >= maxRenderDepth {
		return rows
	}

	row := Row{
		ID:           n.ID,
		Depth:        depth,
		Level:        n.Level,
		Tier:         Tier(n.Level),
		DisplayName:  DisplayName(n.User),
		Verified:     n.Verified,
		JoinDate:     n.CreatedAt.Format("02.01.2006"),
		Earnings:     FormatMoney(n.TotalEarnings),
		StatusActive: n.Status == StatusActive,
		StatusLabel:  statusLabel(n.Status),
		HasChildren:  n.HasChildren(),
		Expanded:     expansion.IsExpanded(n.ID),
	}
	if n.DirectReferralsCount > 0 {
		row.DirectCountLabel = fmt.Sprintf("%d %s",
			n.DirectReferralsCount, PluralReferrals(n.DirectReferralsCount))
	}
	if row.HasChildren {
		row.ToggleURL = ToggleURL(path, expansion, n.ID)
	}
	rows = append(rows, row)

	if row.HasChildren && row.Expanded {
		for i := range n.Children {
			rows = renderNode(rows, &n.Children[i], expansion, path, depth+1)
		}
	}
	return rows
}

func statusLabel(status string) string {
	if status == StatusActive {
		return "Активен"
	}
	return "Неактивен"
}

// RenderStats собирает панель агрегатов. Значения не пересчитываются —
// выводится ровно то, что прислал backend. nil → панель не показываем.
func RenderStats(stats *Stats) *StatsView {
	if stats == nil {
		return nil
	}
	return &StatsView{
		TotalReferrals:  stats.TotalReferrals,
		DirectReferrals: stats.DirectReferrals,
		ActiveReferrals: stats.ActiveReferrals,
		TotalEarnings:   FormatMoney(stats.TotalEarnings),
		AverageEarnings: FormatMoney(stats.AverageEarningsPerReferral),
	}
}
