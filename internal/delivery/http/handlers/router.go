package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(topUpHandler *TopUpHandler, sliceHandler *SliceHandler, trackHandler *TrackHandler) *gin.Engine {
	router := gin.Default()

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	commission := router.Group("/commission")
	{
		commission.POST("/topup", topUpHandler.TopUp)

		commission.POST("/slices", sliceHandler.CreateSlice)
		commission.GET("/slices", sliceHandler.GetSlices)
		commission.DELETE("/slices/:id", sliceHandler.DeleteSlice)

		commission.GET("/users/:id/balance", topUpHandler.GetBalance)
		commission.GET("/users/:id/tracks", trackHandler.GetUserTracks)
	}

	return router
}
