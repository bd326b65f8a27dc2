package bus

import (
	"context"
	"fmt"
	"strings"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	json "github.com/goccy/go-json"
	"go.uber.org/zap"
	"unishare.xyz/home-monitor/pkg/common"
	"unishare.xyz/home-monitor/pkg/models"
	"unishare.xyz/home-monitor/pkg/monitor"
)

// Listener feeds inbound telemetry into the monitor core: one store
// write per message, plus an alarm trigger when a device reports fire.
type Listener struct {
	Monitor *monitor.Monitor
}

// SubscribeAll installs one subscription per registered sensor device
// and metric kind. Called from the client's on-connect hook so a
// reconnect re-subscribes everything.
func (l *Listener) SubscribeAll(c *Client) {
	logger := common.GetLoggerWith(common.LoggerNameBusListener)

	devices, err := l.Monitor.Device.List(models.DeviceTypeSensor)
	if err != nil {
		logger.Warn("Failed to load device list for subscriptions", zap.Error(err))
		return
	}

	logger.Debug("Subscribing to sensor topics", zap.Int("devices", len(devices)))

	handler := func(_ mqtt.Client, msg mqtt.Message) {
		l.HandleMessage(msg.Topic(), msg.Payload())
	}

	for _, device := range devices {
		for _, kind := range models.AllKinds {
			topic := fmt.Sprintf("%s/%s/%s", sensorsTopicPrefix, device.MAC, kind.TopicLeaf())
			c.Subscribe(topic, handler)
		}
	}
}

type sensorPayload struct {
	Value any `json:"value"`
}

// HandleMessage parses one telemetry message and stores the reading.
// Topic layout: unishare/sensors/<mac>/<metric-leaf>. Malformed topics
// and payloads are logged and dropped.
func (l *Listener) HandleMessage(topic string, payload []byte) {
	logger := common.GetLoggerWith(common.LoggerNameBusListener)

	parts := strings.Split(topic, "/")
	if len(parts) < 4 {
		logger.Warn("Dropping message with unexpected topic", zap.String("topic", topic))
		return
	}
	deviceID := parts[2]

	kind, ok := models.KindFromTopicLeaf(parts[3])
	if !ok {
		logger.Warn("Dropping message for unknown metric",
			zap.String("topic", topic), zap.String("leaf", parts[3]))
		return
	}

	var data sensorPayload
	if err := json.Unmarshal(payload, &data); err != nil {
		logger.Warn("Dropping malformed payload",
			zap.String("topic", topic), zap.Error(err))
		return
	}

	logger.Debug("Bus message",
		zap.String("device", deviceID),
		zap.String("kind", string(kind)),
		zap.ByteString("payload", payload))

	monitor.ObserveBusMessage(kind)

	if kind.IsBool() {
		// anything that is not a JSON true reads as false
		b, _ := data.Value.(bool)
		l.Monitor.Telemetry.Set(deviceID, kind, models.BoolValue(b))

		if kind == models.KindFire && b {
			// fan-out takes a while, keep the bus handler responsive
			go func() {
				if err := l.Monitor.Alarm.Trigger(context.Background(), deviceID); err != nil {
					logger.Warn("Alarm trigger failed",
						zap.String("device", deviceID), zap.Error(err))
				}
			}()
		}
		return
	}

	f, ok := data.Value.(float64)
	if !ok {
		// a non-numeric reading stores the unknown sentinel
		l.Monitor.Telemetry.Set(deviceID, kind, models.Value{})
		return
	}
	l.Monitor.Telemetry.Set(deviceID, kind, models.FloatValue(f))
}
