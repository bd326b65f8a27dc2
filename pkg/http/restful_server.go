package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
	"unishare.xyz/home-monitor/pkg/bus"
	"unishare.xyz/home-monitor/pkg/history"
	"unishare.xyz/home-monitor/pkg/monitor"
)

type RestfulServer struct {
	Server           *gin.Engine
	Monitor          *monitor.Monitor
	Publisher        bus.Publisher
	History          history.SeriesReader
	RateLimiterStore *monitor.RateLimiterStore
}

func (rs *RestfulServer) GetLimiter(deviceID string) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	} else {
		return rs.RateLimiterStore.GetLimiter(deviceID)
	}
}

func (rs *RestfulServer) CheckDeviceLimiter(deviceID string) bool {
	limiter := rs.GetLimiter(deviceID)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

func (rs *RestfulServer) Setup() {
	rs.Server.GET("/healthz", rs.HealthCheck)
	rs.Server.GET("/metrics", gin.WrapH(promhttp.Handler()))

	rs.Server.GET("/devices", rs.GetDevices)
	rs.Server.POST("/devices", rs.RegisterDevice)

	rs.Server.GET("/status/:device/:metric", rs.GetStatus)
	rs.Server.GET("/history/:device/:metric", rs.GetHistory)

	control := rs.Server.Group("/control/:mac")
	{
		control.GET("/light/:action", rs.ControlLight)
		control.GET("/air/:action", rs.ControlAir)
	}
}
