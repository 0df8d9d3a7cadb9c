package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	sliceRequest "github.com/khizar217naat-alt/commission-ledger-service/internal/delivery/http/dto/slice/request"
	sliceResponse "github.com/khizar217naat-alt/commission-ledger-service/internal/delivery/http/dto/slice/response"
	topupResponse "github.com/khizar217naat-alt/commission-ledger-service/internal/delivery/http/dto/topup/response"
	"github.com/khizar217naat-alt/commission-ledger-service/internal/domain"
	"github.com/khizar217naat-alt/commission-ledger-service/internal/usecase"
	slicedto "github.com/khizar217naat-alt/commission-ledger-service/internal/usecase/dto/slice"
)

type SliceHandler struct {
	SliceUsecase usecase.SliceUsecase
}

func NewSliceHandler(sliceUsecase usecase.SliceUsecase) *SliceHandler {
	return &SliceHandler{
		SliceUsecase: sliceUsecase,
	}
}

func (h *SliceHandler) CreateSlice(c *gin.Context) {
	var req sliceRequest.CreateSliceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, topupResponse.ErrorResponse{Error: err.Error()})
		return
	}

	slice, err := h.SliceUsecase.CreateSlice(&slicedto.CreateSliceInput{
		Name:       req.Name,
		FromAmount: req.FromAmount,
		ToAmount:   req.ToAmount,
		Rate:       req.Rate,
	})
	if err != nil {
		if errors.Is(err, domain.ErrSliceBounds) || errors.Is(err, domain.ErrSliceOverlap) {
			c.JSON(http.StatusBadRequest, topupResponse.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, topupResponse.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, toSliceResponse(slice))
}

func (h *SliceHandler) GetSlices(c *gin.Context) {
	slices, err := h.SliceUsecase.GetSlices()
	if err != nil {
		c.JSON(http.StatusInternalServerError, topupResponse.ErrorResponse{Error: err.Error()})
		return
	}

	out := make([]sliceResponse.SliceResponse, len(slices))
	for i, s := range slices {
		out[i] = toSliceResponse(s)
	}
	c.JSON(http.StatusOK, out)
}

func (h *SliceHandler) DeleteSlice(c *gin.Context) {
	if err := h.SliceUsecase.DeleteSlice(c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrSliceNotFound) {
			c.JSON(http.StatusNotFound, topupResponse.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, topupResponse.ErrorResponse{Error: err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func toSliceResponse(slice *domain.CommissionSlice) sliceResponse.SliceResponse {
	return sliceResponse.SliceResponse{
		ID:         slice.ID,
		Name:       slice.Name,
		Ordinal:    slice.Ordinal,
		FromAmount: slice.FromAmount,
		ToAmount:   slice.ToAmount,
		Rate:       slice.Rate,
	}
}
