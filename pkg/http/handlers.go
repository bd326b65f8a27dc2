package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"

	"unishare.xyz/home-monitor/pkg/common"
	"unishare.xyz/home-monitor/pkg/history"
	"unishare.xyz/home-monitor/pkg/models"
)

// kindFromParam maps the public metric path segment to a kind. The
// HTTP names differ from the store codes (and "fire" from the bus leaf
// "flame").
func kindFromParam(param string) (models.MetricKind, bool) {
	switch param {
	case "fire":
		return models.KindFire, true
	case "light":
		return models.KindLight, true
	case "temperature":
		return models.KindTemperature, true
	case "apparent_temperature":
		return models.KindApparentTemperature, true
	case "humidity":
		return models.KindHumidity, true
	}
	return "", false
}

// formatValue renders a reading the way the dashboard expects: plain
// booleans, temperatures with two decimals, humidity with none, and
// "N/A" for numeric kinds that never reported.
func formatValue(kind models.MetricKind, v models.Value) any {
	if kind.IsBool() {
		return v.Bool
	}
	if !v.Valid {
		return "N/A"
	}
	if kind == models.KindHumidity {
		return fmt.Sprintf("%.0f", v.Float)
	}
	return fmt.Sprintf("%.2f", v.Float)
}

func (rs *RestfulServer) GetStatus(c *gin.Context) {
	deviceID := c.Param("device")

	kind, ok := kindFromParam(c.Param("metric"))
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}

	value := rs.Monitor.Telemetry.Get(deviceID, kind)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"value":   formatValue(kind, value),
	})
}

func (rs *RestfulServer) controlChannel(c *gin.Context, channel string) {
	logger := common.GetLoggerWith(
		common.LoggerNameRestfulServer,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryControl),
	)

	mac := c.Param("mac")
	action := c.Param("action")

	if action != "on" && action != "off" {
		c.Status(http.StatusBadRequest)
		return
	}

	if !rs.CheckDeviceLimiter(mac) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	status := strings.ToUpper(action)

	if rs.Publisher == nil {
		logger.Warn("Control request without a bus publisher",
			zap.String("mac", mac), zap.String("channel", channel))
		c.JSON(http.StatusInternalServerError, gin.H{"status": status, "success": false})
		return
	}

	if err := rs.Publisher.PublishControl(mac, channel, action); err != nil {
		logger.Warn("Control publish failed",
			zap.String("mac", mac), zap.String("channel", channel), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"status": status, "success": false})
		return
	}

	logger.Info("Control command published",
		zap.String("mac", mac), zap.String("channel", channel), zap.String("action", action))

	c.JSON(http.StatusOK, gin.H{"status": status, "success": true})
}

func (rs *RestfulServer) ControlLight(c *gin.Context) {
	rs.controlChannel(c, "light")
}

func (rs *RestfulServer) ControlAir(c *gin.Context) {
	rs.controlChannel(c, "ac")
}

func (rs *RestfulServer) GetDevices(c *gin.Context) {
	devices, err := rs.Monitor.Device.List(models.DeviceTypeSensor)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "devices": []models.Device{}})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "devices": devices})
}

type DeviceRequest struct {
	Name string `json:"name"`
	Mac  string `json:"mac"`
}

var deviceRequestSchema = z.Struct(z.Shape{
	"Name": z.String().Required(),
	"Mac":  z.String().Required(),
})

func (rs *RestfulServer) RegisterDevice(c *gin.Context) {
	var req DeviceRequest
	if err := deviceRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	if err := rs.Monitor.Device.Register(req.Name, req.Mac, models.DeviceTypeSensor); err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.Status(http.StatusOK)
}

func (rs *RestfulServer) GetHistory(c *gin.Context) {
	logger := common.GetLoggerWith(common.LoggerNameRestfulServer)

	deviceID := c.Param("device")

	kind, ok := kindFromParam(c.Param("metric"))
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}

	// history is best effort: a failed query serves an empty series
	points := []history.Point{}
	if rs.History != nil {
		var err error
		points, err = rs.History.Series(c.Request.Context(), deviceID, kind)
		if err != nil {
			logger.Warn("History query failed",
				zap.String("device", deviceID), zap.Error(err))
			points = []history.Point{}
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": points})
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
