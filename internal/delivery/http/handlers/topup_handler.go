package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	topupRequest "github.com/khizar217naat-alt/commission-ledger-service/internal/delivery/http/dto/topup/request"
	topupResponse "github.com/khizar217naat-alt/commission-ledger-service/internal/delivery/http/dto/topup/response"
	"github.com/khizar217naat-alt/commission-ledger-service/internal/domain"
	"github.com/khizar217naat-alt/commission-ledger-service/internal/usecase"
	topupdto "github.com/khizar217naat-alt/commission-ledger-service/internal/usecase/dto/topup"
)

// The authenticated user id is injected by the gateway; authentication
// itself is out of scope for this service.
const HeaderUserID = "X-User-ID"

type TopUpHandler struct {
	SettlementUsecase usecase.SettlementUsecase
	TrackUsecase      usecase.TrackUsecase
	UserRepo          domain.UserRepository
	Wallet            domain.WalletService
}

func NewTopUpHandler(
	settlementUsecase usecase.SettlementUsecase,
	trackUsecase usecase.TrackUsecase,
	userRepo domain.UserRepository,
	wallet domain.WalletService) *TopUpHandler {

	return &TopUpHandler{
		SettlementUsecase: settlementUsecase,
		TrackUsecase:      trackUsecase,
		UserRepo:          userRepo,
		Wallet:            wallet,
	}
}

func (h *TopUpHandler) TopUp(c *gin.Context) {
	var req topupRequest.TopUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, topupResponse.ErrorResponse{Error: "missing required parameters"})
		return
	}

	output, err := h.SettlementUsecase.ManualTopUp(c.Request.Context(), &topupdto.ManualTopUpInput{
		RequestedBy: c.GetHeader(HeaderUserID),
		UserID:      req.UserID,
		Amount:      req.Amount,
	})
	if err != nil {
		c.JSON(topUpStatusCode(err), topupResponse.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, topupResponse.TopUpResponse{
		Success:       true,
		Amount:        output.Amount,
		NewBalance:    output.NewBalance,
		WalletBalance: output.WalletBalance,
	})
}

func (h *TopUpHandler) GetBalance(c *gin.Context) {
	userID := c.Param("id")
	user, err := h.UserRepo.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, topupResponse.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, topupResponse.ErrorResponse{Error: err.Error()})
		return
	}

	balance, err := h.TrackUsecase.RefreshBalance(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, topupResponse.ErrorResponse{Error: err.Error()})
		return
	}
	walletBalance, err := h.Wallet.Balance(c.Request.Context(), user.PartnerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, topupResponse.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, topupResponse.BalanceResponse{
		UserID:         userID,
		CurrentBalance: balance,
		WalletBalance:  walletBalance,
	})
}

func topUpStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotAllowed), errors.Is(err, domain.ErrNotCoach):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrNoBalance),
		errors.Is(err, domain.ErrAmountExceedsBalance),
		errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
