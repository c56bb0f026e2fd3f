package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/AlexZinkM/tos-paper-wallet/internal/app"
	"github.com/AlexZinkM/tos-paper-wallet/internal/common"
	"github.com/AlexZinkM/tos-paper-wallet/internal/keygen"
	"github.com/AlexZinkM/tos-paper-wallet/internal/model"
)

// WalletHandler generates wallets over the JSON API.
type WalletHandler struct {
	app *app.App
}

// NewWalletHandler creates a new WalletHandler
func NewWalletHandler(a *app.App) *WalletHandler {
	return &WalletHandler{app: a}
}

// Generate handles POST /api/wallet/generate
// @Summary      Generate new wallet
// @Description  Generates a new TOS wallet. Nothing is stored on the server.
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.GenerateRequest  false  "Network selection (defaults to testnet)"
// @Success      200      {object}  model.GenerateResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      500      {object}  model.ErrorResponse
// @Failure      503      {object}  model.ErrorResponse
// @Router       /api/wallet/generate [post]
func (h *WalletHandler) Generate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		common.WriteError(w, http.StatusBadRequest, model.CodeBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	if req.Network == "" {
		req.Network = "testnet"
	}
	if !strings.EqualFold(req.Network, "mainnet") && !strings.EqualFold(req.Network, "testnet") {
		common.WriteError(w, http.StatusBadRequest, model.CodeBadRequest, "network must be mainnet or testnet")
		return
	}

	common.NoStore(w)
	record, err := h.app.Generate(r.Context(), model.ParseNetwork(req.Network))
	if err != nil {
		if errors.Is(err, keygen.ErrNotReady) {
			common.WriteError(w, http.StatusServiceUnavailable, model.CodeModuleNotReady, err.Error())
			return
		}
		h.app.Log.Error("wallet generation failed", zap.Error(err))
		common.WriteError(w, http.StatusInternalServerError, model.CodeGenerateFailed, err.Error())
		return
	}

	common.WriteJSON(w, http.StatusOK, model.GenerateResponse{
		Success: true,
		Message: "Wallet generated successfully",
		Wallet:  record,
	})
}
