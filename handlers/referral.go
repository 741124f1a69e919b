package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripgo-web/apiclient"
	"tripgo-web/logging"
	"tripgo-web/middleware"
	"tripgo-web/referral"
)

// Виды ошибок страницы партнёрской сети. Каждому — своё сообщение,
// все показываются на месте дерева, без модалок и автоповторов.
const (
	referralErrNone      = ""
	referralErrNoPartner = "not_partner" // 404 — ещё не участник программы
	referralErrForbidden = "forbidden"   // 403 — доступ закрыт
	referralErrGeneric   = "generic"     // всё остальное
)

// referralViewState — состояние страницы после единственного запроса
// к backend'у. Дерево и агрегаты — снимок ответа, без пересчётов.
type referralViewState struct {
	Tree         []referral.Node
	Stats        *referral.Stats
	ErrorKind    string
	ErrorMessage string
}

// buildReferralState классифицирует результат запроса дерева.
func buildReferralState(resp *apiclient.ReferralTreeResponse, err error) referralViewState {
	if err != nil {
		switch apiclient.StatusOf(err) {
		case http.StatusNotFound:
			return referralViewState{
				Tree:         []referral.Node{},
				ErrorKind:    referralErrNoPartner,
				ErrorMessage: "Вы ещё не участвуете в партнёрской программе. Присоединяйтесь и получайте комиссию с бронирований приглашённых друзей.",
			}
		case http.StatusForbidden:
			return referralViewState{
				Tree:         []referral.Node{},
				ErrorKind:    referralErrForbidden,
				ErrorMessage: "У вас нет доступа к партнёрской программе.",
			}
		default:
			msg := "Не удалось загрузить данные партнёрской программы."
			if serverMsg := apiclient.MessageOf(err); serverMsg != "" {
				msg = msg + " " + serverMsg
			}
			return referralViewState{
				Tree:         []referral.Node{},
				ErrorKind:    referralErrGeneric,
				ErrorMessage: msg,
			}
		}
	}

	// Ответ успешный, но данных нет — тоже считаем ошибкой загрузки
	if resp == nil || (resp.Tree == nil && resp.Stats == nil) {
		return referralViewState{
			Tree:         []referral.Node{},
			ErrorKind:    referralErrGeneric,
			ErrorMessage: "Не удалось загрузить данные партнёрской программы.",
		}
	}

	tree := resp.Tree
	if tree == nil {
		tree = []referral.Node{}
	}
	return referralViewState{Tree: tree, Stats: resp.Stats}
}

// ReferralPageHandler — страница партнёрской сети: дерево рефералов
// с раскрытием уровней и панель агрегатов.
func ReferralPageHandler(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)

	resp, err := api.GetReferralTree(c.Request.Context(), middleware.SessionToken(c))
	state := buildReferralState(resp, err)
	if state.ErrorKind != referralErrNone {
		logging.Logger.Warn("referral tree unavailable",
			zap.String("kind", state.ErrorKind),
			zap.String("user_id", identity.UserID),
			zap.Error(err),
		)
		c.HTML(http.StatusOK, "referral.html", gin.H{
			"Title":        "Партнёрская программа — TripGo",
			"Identity":     identity,
			"ErrorKind":    state.ErrorKind,
			"ErrorMessage": state.ErrorMessage,
		})
		return
	}

	logging.Logger.Info("referral tree loaded",
		zap.String("user_id", identity.UserID),
		zap.Int("top_level", len(state.Tree)),
	)

	expansion := referral.ParseExpansion(c.Query("open"))
	topLevel := referral.TopLevelIDs(state.Tree)

	c.HTML(http.StatusOK, "referral.html", gin.H{
		"Title":          "Партнёрская программа — TripGo",
		"Identity":       identity,
		"Rows":           referral.Render(state.Tree, expansion, "/referral"),
		"Stats":          referral.RenderStats(state.Stats),
		"Empty":          len(state.Tree) == 0,
		"ExpandAllURL":   referral.ExpandAllURL("/referral", topLevel),
		"CollapseAllURL": referral.CollapseAllURL("/referral"),
	})
}

// JoinAffiliateHandler регистрирует пользователя в программе.
func JoinAffiliateHandler(c *gin.Context) {
	profile, err := api.JoinAffiliate(c.Request.Context(), middleware.SessionToken(c))
	if err != nil {
		if apiclient.StatusOf(err) == http.StatusConflict {
			c.JSON(http.StatusConflict, gin.H{"error": "Вы уже участник партнёрской программы"})
			return
		}
		respondBackendError(c, err, "join affiliate failed")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "profile": profile})
}
