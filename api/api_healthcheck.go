package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-admin-server/global"
)

type HealthCheckApi struct {
}

func NewHealthCheckApi() *HealthCheckApi {
	return &HealthCheckApi{}
}

func (ha *HealthCheckApi) HealthCheck(c *gin.Context) {
	version := global.Conf.Version
	mode := global.Conf.Mode
	c.JSON(http.StatusOK, gin.H{"status": "ok", "version": version, "mode": mode})
}
