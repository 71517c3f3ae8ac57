package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barber-manager/internal/domain/loyalty"
	"github.com/BruksfildServices01/barber-manager/internal/httperr"
	"github.com/BruksfildServices01/barber-manager/internal/httpresp"
	"github.com/BruksfildServices01/barber-manager/internal/middleware"
	ucLoyalty "github.com/BruksfildServices01/barber-manager/internal/usecase/loyalty"
)

// ======================================================
// HANDLER
// ======================================================

type LoyaltyHandler struct {
	repo       domain.Repository
	ledger     *ucLoyalty.Ledger
	settingsUC *ucLoyalty.Settings
	drawUC     *ucLoyalty.DrawReward
	historyUC  *ucLoyalty.History
}

func NewLoyaltyHandler(
	repo domain.Repository,
	ledger *ucLoyalty.Ledger,
	settingsUC *ucLoyalty.Settings,
	drawUC *ucLoyalty.DrawReward,
	historyUC *ucLoyalty.History,
) *LoyaltyHandler {
	return &LoyaltyHandler{
		repo:       repo,
		ledger:     ledger,
		settingsUC: settingsUC,
		drawUC:     drawUC,
		historyUC:  historyUC,
	}
}

func clientIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("clientId"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_client_id", "ID inválido.")
		return 0, false
	}
	return uint(id), true
}

// ======================================================
// ACCOUNTS
// ======================================================

func (h *LoyaltyHandler) ListAccounts(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	accounts, err := h.repo.ListAccounts(c.Request.Context(), barbershopID)
	if err != nil {
		httperr.Internal(c, "internal_error", "Erro ao listar contas de fidelidade.")
		return
	}

	httpresp.List(c, accounts)
}

func (h *LoyaltyHandler) GetAccount(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	clientID, ok := clientIDParam(c)
	if !ok {
		return
	}

	account, err := h.repo.GetAccount(c.Request.Context(), barbershopID, clientID)
	if err != nil {
		httperr.Internal(c, "internal_error", "Erro ao buscar conta de fidelidade.")
		return
	}

	c.JSON(http.StatusOK, account)
}

// ======================================================
// REDEEM
// ======================================================

func (h *LoyaltyHandler) Redeem(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	clientID, ok := clientIDParam(c)
	if !ok {
		return
	}

	account, err := h.ledger.Redeem(c.Request.Context(), barbershopID, barberID, clientID)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, account)
}

// ======================================================
// SETTINGS
// ======================================================

type UpdateLoyaltySettingsRequest struct {
	CutsForFree int `json:"cuts_for_free" binding:"required"`
}

func (h *LoyaltyHandler) GetSettings(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	settings, err := h.settingsUC.Get(c.Request.Context(), barbershopID)
	if err != nil {
		httperr.Internal(c, "internal_error", "Erro ao buscar configuração de fidelidade.")
		return
	}

	c.JSON(http.StatusOK, settings)
}

func (h *LoyaltyHandler) UpdateSettings(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var req UpdateLoyaltySettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	settings, err := h.settingsUC.Update(c.Request.Context(), barbershopID, req.CutsForFree)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}

// ======================================================
// DRAW
// ======================================================

func (h *LoyaltyHandler) Draw(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	result, err := h.drawUC.Execute(c.Request.Context(), barbershopID, barberID)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ======================================================
// HISTORY
// ======================================================

func (h *LoyaltyHandler) History(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	clientID, ok := clientIDParam(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	history, err := h.historyUC.Execute(c.Request.Context(), barbershopID, clientID, limit)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"history": history})
}
