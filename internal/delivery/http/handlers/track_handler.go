package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	topupResponse "github.com/khizar217naat-alt/commission-ledger-service/internal/delivery/http/dto/topup/response"
	"github.com/khizar217naat-alt/commission-ledger-service/internal/domain"
	"github.com/khizar217naat-alt/commission-ledger-service/internal/usecase"
)

type TrackHandler struct {
	TrackUsecase usecase.TrackUsecase
}

func NewTrackHandler(trackUsecase usecase.TrackUsecase) *TrackHandler {
	return &TrackHandler{
		TrackUsecase: trackUsecase,
	}
}

type trackResponse struct {
	ID                    string             `json:"id"`
	Seq                   int                `json:"seq"`
	StartDate             string             `json:"start_date"`
	CloseDate             string             `json:"close_date"`
	Status                domain.TrackStatus `json:"status"`
	DirectPurchase        float64            `json:"direct_purchase"`
	IndirectPurchase      float64            `json:"indirect_purchase"`
	TotalPurchase         float64            `json:"total_purchase"`
	Commission            float64            `json:"commission"`
	CommissionRate        float64            `json:"commission_rate"`
	CommissionTransferred float64            `json:"commission_transferred"`
	CurrentBalance        float64            `json:"current_balance"`
}

func (h *TrackHandler) GetUserTracks(c *gin.Context) {
	tracks, err := h.TrackUsecase.GetTracksByUserID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, topupResponse.ErrorResponse{Error: err.Error()})
		return
	}

	out := make([]trackResponse, len(tracks))
	for i, track := range tracks {
		out[i] = trackResponse{
			ID:                    track.ID,
			Seq:                   track.Seq,
			StartDate:             track.StartDate.Format("2006-01-02"),
			CloseDate:             track.CloseDate.Format("2006-01-02"),
			Status:                track.Status,
			DirectPurchase:        track.DirectPurchase,
			IndirectPurchase:      track.IndirectPurchase,
			TotalPurchase:         track.TotalPurchase,
			Commission:            track.Commission,
			CommissionRate:        track.CommissionRate,
			CommissionTransferred: track.CommissionTransferred,
			CurrentBalance:        track.CurrentBalance,
		}
	}
	c.JSON(http.StatusOK, out)
}
