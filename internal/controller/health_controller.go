package controller

import (
	"context"
	"net/http"
	"time"

	"progress_clock_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// Pinger 可探活的依赖
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthController struct {
	Cache Pinger
}

func NewHealthController(cache Pinger) *HealthController {
	return &HealthController{Cache: cache}
}

// @Summary 健康检查
// @Description 检查服务状态
// @Tags 系统
// @Produce json
// @Success 200 {object} util.Response
// @Router /health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	cache := "disabled"
	if c.Cache != nil {
		pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), time.Second)
		defer cancel()
		if err := c.Cache.Ping(pingCtx); err != nil {
			// 缓存只是加速层，不可用时渲染仍然正常
			cache = "down"
		} else {
			cache = "up"
		}
	}

	util.Success(ctx, gin.H{
		"status": "ok",
		"components": gin.H{
			"cache": cache,
		},
	})
}

// NotFound 未匹配路由
func NotFound(ctx *gin.Context) {
	util.Error(ctx, http.StatusNotFound, "Resource not found")
}
