package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripgo-web/apiclient"
	"tripgo-web/middleware"
)

// GetReferralTreeHandler — JSON-версия дерева для обновления без
// перезагрузки страницы. Классификация ошибок та же, что у страницы.
func GetReferralTreeHandler(c *gin.Context) {
	resp, err := api.GetReferralTree(c.Request.Context(), middleware.SessionToken(c))
	state := buildReferralState(resp, err)
	if state.ErrorKind != referralErrNone {
		status := http.StatusBadGateway
		switch state.ErrorKind {
		case referralErrNoPartner:
			status = http.StatusNotFound
		case referralErrForbidden:
			status = http.StatusForbidden
		}
		c.JSON(status, gin.H{"error": state.ErrorMessage, "kind": state.ErrorKind})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"tree":  state.Tree,
			"stats": state.Stats,
		},
	})
}

// GetAffiliateProfileHandler — код партнёра и пригласительная ссылка.
func GetAffiliateProfileHandler(c *gin.Context) {
	profile, err := api.GetAffiliateProfile(c.Request.Context(), middleware.SessionToken(c))
	if err != nil {
		if apiclient.StatusOf(err) == http.StatusNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Вы ещё не участник партнёрской программы"})
			return
		}
		respondBackendError(c, err, "affiliate profile failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "profile": profile})
}
