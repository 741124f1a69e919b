package referral

import (
	"net/url"
	"sort"
	"strings"
)

// ExpansionState — множество раскрытых узлов дерева. Живёт только в
// представлении: на первой загрузке пустое, между запросами переносится
// через query-параметр open и никогда не уходит на backend.
type ExpansionState map[string]struct{}

func NewExpansionState() ExpansionState {
	return make(ExpansionState)
}

// ParseExpansion восстанавливает множество из значения query-параметра.
func ParseExpansion(raw string) ExpansionState {
	s := NewExpansionState()
	if raw == "" {
		return s
	}
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			s[id] = struct{}{}
		}
	}
	return s
}

func (s ExpansionState) IsExpanded(id string) bool {
	_, ok := s[id]
	return ok
}

// Toggle добавляет id, если его нет, иначе убирает. Дети узла не трогаются.
func (s ExpansionState) Toggle(id string) {
	if _, ok := s[id]; ok {
		delete(s, id)
	} else {
		s[id] = struct{}{}
	}
}

// ExpandAll заменяет множество идентификаторами узлов первого уровня.
// Потомки глубже первого уровня намеренно не добавляются — поведение
// исходной страницы, см. DESIGN.md.
func (s ExpansionState) ExpandAll(topLevel []string) {
	for id := range s {
		delete(s, id)
	}
	for _, id := range topLevel {
		s[id] = struct{}{}
	}
}

// CollapseAll очищает множество.
func (s ExpansionState) CollapseAll() {
	for id := range s {
		delete(s, id)
	}
}

// Encode сериализует множество обратно в значение query-параметра.
// Порядок стабильный, чтобы ссылки не «дрожали» между рендерами.
func (s ExpansionState) Encode() string {
	if len(s) == 0 {
		return ""
	}
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return strings.Join(ids, ",")
}

func (s ExpansionState) clone() ExpansionState {
	c := make(ExpansionState, len(s))
	for id := range s {
		c[id] = struct{}{}
	}
	return c
}

// pageURL собирает ссылку на страницу с заданным множеством раскрытия.
func pageURL(path string, s ExpansionState) string {
	enc := s.Encode()
	if enc == "" {
		return path
	}
	return path + "?open=" + url.QueryEscape(enc)
}

// ToggleURL — ссылка, по которой узел меняет раскрытие.
func ToggleURL(path string, s ExpansionState, id string) string {
	next := s.clone()
	next.Toggle(id)
	return pageURL(path, next)
}

// ExpandAllURL — ссылка «развернуть все».
func ExpandAllURL(path string, topLevel []string) string {
	next := NewExpansionState()
	next.ExpandAll(topLevel)
	return pageURL(path, next)
}

// CollapseAllURL — ссылка «свернуть все».
func CollapseAllURL(path string) string {
	return pageURL(path, NewExpansionState())
}
