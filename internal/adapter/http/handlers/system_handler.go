package handlers

import (
	"net/http"

	response "offer_agent/internal/adapter/http/dto/response"

	"github.com/gin-gonic/gin"
)

// Banner godoc
// @Summary  Service banner
// @Tags     system
// @Produce  json
// @Success  200  {object}  response.BannerResponse
// @Router   / [get]
func Banner(c *gin.Context) {
	c.JSON(http.StatusOK, response.BannerResponse{Message: "Offer Agent API"})
}

// Health godoc
// @Summary  Liveness probe
// @Tags     system
// @Produce  json
// @Success  200  {object}  response.HealthResponse
// @Router   /health [get]
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, response.HealthResponse{Status: "healthy"})
}

func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}
