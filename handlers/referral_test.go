package handlers

import (
	"html/template"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"tripgo-web/apiclient"
	"tripgo-web/config"
	"tripgo-web/logging"
	"tripgo-web/models"
	"tripgo-web/referral"
)

func setupHandlers(t *testing.T, backendURL string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	if err := logging.InitLogger(false, "error"); err != nil {
		t.Fatalf("init logger: %v", err)
	}
	Init(&config.Config{
		BackendBaseURL: backendURL,
		AuthBaseURL:    backendURL + "/auth",
		BackendTimeout: 5 * time.Second,
		SessionCookie:  "tripgo_session",
	})
}

func apiErr(status int, msg string) error {
	return &apiclient.APIError{StatusCode: status, Message: msg}
}

func TestBuildReferralStateNotPartner(t *testing.T) {
	state := buildReferralState(nil, apiErr(http.StatusNotFound, ""))

	if state.ErrorKind != referralErrNoPartner {
		t.Fatalf("kind = %q, want %q", state.ErrorKind, referralErrNoPartner)
	}
	if state.Tree == nil || len(state.Tree) != 0 {
		t.Fatalf("tree must be empty non-nil, got %#v", state.Tree)
	}
	if state.Stats != nil {
		t.Fatalf("stats must be nil")
	}
	if state.ErrorMessage == "" {
		t.Fatalf("not-partner state needs a message")
	}
}

func TestBuildReferralStateForbidden(t *testing.T) {
	state := buildReferralState(nil, apiErr(http.StatusForbidden, ""))
	if state.ErrorKind != referralErrForbidden {
		t.Fatalf("kind = %q", state.ErrorKind)
	}
}

func TestBuildReferralStateGenericKeepsServerMessage(t *testing.T) {
	state := buildReferralState(nil, apiErr(http.StatusInternalServerError, "база прилегла"))
	if state.ErrorKind != referralErrGeneric {
		t.Fatalf("kind = %q", state.ErrorKind)
	}
	if !strings.Contains(state.ErrorMessage, "база прилегла") {
		t.Fatalf("server message lost: %q", state.ErrorMessage)
	}
}

func TestBuildReferralStateEmptyPayloadIsGenericError(t *testing.T) {
	state := buildReferralState(&apiclient.ReferralTreeResponse{}, nil)
	if state.ErrorKind != referralErrGeneric {
		t.Fatalf("empty payload must classify as generic, got %q", state.ErrorKind)
	}
}

func TestBuildReferralStateSuccess(t *testing.T) {
	resp := &apiclient.ReferralTreeResponse{
		Tree:  []referral.Node{{ID: "a"}, {ID: "b"}, {ID: "c"}},
		Stats: &referral.Stats{TotalReferrals: 3},
	}
	state := buildReferralState(resp, nil)
	if state.ErrorKind != referralErrNone {
		t.Fatalf("unexpected error kind %q", state.ErrorKind)
	}
	if len(state.Tree) != 3 || state.Stats.TotalReferrals != 3 {
		t.Fatalf("payload must pass through untouched: %+v", state)
	}
}

// Тестовая авторизация: кладём личность прямо в контекст, как это делает
// middleware.Session после валидной cookie.
func asUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("identity", models.Identity{Authenticated: true, UserID: "u1", Email: "u1@example.com"})
		c.Set("sessionToken", "token-1")
		c.Next()
	}
}

const treePayload = `{
	"success": true,
	"data": {
		"tree": [
			{"id":"n1","level":1,"status":"active","verified":true,"totalEarnings":1500,
			 "directReferralsCount":1,"createdAt":"2024-03-15T00:00:00Z",
			 "user":{"id":"u2","email":"anna@example.com","firstName":"Anna","lastName":"Ivanova"},
			 "children":[{"id":"n1-1","level":2,"status":"inactive","createdAt":"2024-04-01T00:00:00Z",
			              "user":{"id":"u3","email":"boris@example.com"}}]},
			{"id":"n2","level":1,"status":"active","createdAt":"2024-05-20T00:00:00Z",
			 "user":{"id":"u4","email":"vera@example.com","firstName":"Vera"}},
			{"id":"n3","level":1,"status":"pending","createdAt":"2024-06-01T00:00:00Z",
			 "user":{"id":"u5","email":"dima@example.com"}}
		],
		"stats": {"totalReferrals":4,"directReferrals":3,"activeReferrals":2,
		          "totalEarnings":1500,"averageEarningsPerReferral":375}
	}
}`

func TestGetReferralTreeHandlerPassthrough(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(treePayload))
	}))
	defer backend.Close()
	setupHandlers(t, backend.URL)

	r := gin.New()
	r.GET("/api/referral/tree", asUser(), GetReferralTreeHandler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/referral/tree", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	body := w.Body.String()
	for _, id := range []string{"n1", "n2", "n3"} {
		if !strings.Contains(body, `"id":"`+id+`"`) {
			t.Errorf("node %s missing from response", id)
		}
	}
	if !strings.Contains(body, `"totalReferrals":4`) {
		t.Errorf("stats not passed through verbatim: %s", body)
	}
}

func TestGetReferralTreeHandlerNotPartner(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"success":false,"message":"no affiliate account"}`))
	}))
	defer backend.Close()
	setupHandlers(t, backend.URL)

	r := gin.New()
	r.GET("/api/referral/tree", asUser(), GetReferralTreeHandler)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/referral/tree", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "not_partner") {
		t.Fatalf("expected not_partner kind, body %s", w.Body.String())
	}
}

func referralTemplates(t *testing.T) *template.Template {
	t.Helper()
	tmpl := template.New("").Funcs(template.FuncMap{
		"firstLetter": func(s string) string { return s },
		"sub":         func(a, b int) int { return a - b },
		"add":         func(a, b int) int { return a + b },
		"mul":         func(a, b int) int { return a * b },
	})
	return template.Must(tmpl.ParseGlob("../templates/*.html"))
}

func TestReferralPageRendersTree(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(treePayload))
	}))
	defer backend.Close()
	setupHandlers(t, backend.URL)

	r := gin.New()
	r.SetHTMLTemplate(referralTemplates(t))
	r.GET("/referral", asUser(), ReferralPageHandler)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/referral", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	body := w.Body.String()

	if !strings.Contains(body, "Anna Ivanova") || !strings.Contains(body, "Vera") {
		t.Errorf("display names missing")
	}
	// Свёрнутое дерево: ребёнок n1-1 не виден
	if strings.Contains(body, "boris") {
		t.Errorf("collapsed child rendered")
	}
	// У листа n3 нет ссылки раскрытия, у n1 — есть
	if !strings.Contains(body, "open=n1") {
		t.Errorf("toggle link for n1 missing")
	}
	// Панель агрегатов — значения backend'а как есть
	if !strings.Contains(body, "Всего рефералов") || !strings.Contains(body, ">4<") {
		t.Errorf("stats panel missing or recomputed")
	}
	if !strings.Contains(body, "Развернуть все") || !strings.Contains(body, "Свернуть все") {
		t.Errorf("bulk controls missing")
	}
}

func TestReferralPageExpandedQuery(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(treePayload))
	}))
	defer backend.Close()
	setupHandlers(t, backend.URL)

	r := gin.New()
	r.SetHTMLTemplate(referralTemplates(t))
	r.GET("/referral", asUser(), ReferralPageHandler)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/referral?open=n1", nil))

	if !strings.Contains(w.Body.String(), "boris") {
		t.Fatalf("expanded child must be rendered")
	}
}

func TestReferralPageNotPartnerMessage(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer backend.Close()
	setupHandlers(t, backend.URL)

	r := gin.New()
	r.SetHTMLTemplate(referralTemplates(t))
	r.GET("/referral", asUser(), ReferralPageHandler)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/referral", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "не участвуете в партнёрской программе") {
		t.Errorf("not-partner message missing: %s", body)
	}
	if !strings.Contains(body, "Стать партнёром") {
		t.Errorf("join call-to-action missing")
	}
}
