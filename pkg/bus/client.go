// Package bus wraps the MQTT connection shared by the telemetry
// listener and the control publisher. Devices publish readings under
// unishare/sensors/<mac>/<metric> and accept commands under
// unishare/control/<mac>/<channel>.
package bus

import (
	"errors"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	json "github.com/goccy/go-json"
	"go.uber.org/zap"
	"unishare.xyz/home-monitor/pkg/common"
)

const (
	sensorsTopicPrefix = "unishare/sensors"
	controlTopicPrefix = "unishare/control"

	connectTimeout = 4 * time.Second
	publishTimeout = 5 * time.Second
)

var ErrNotConnected = errors.New("mqtt client not connected")

// Publisher is the write side of the bus, consumed by the HTTP control
// endpoints.
type Publisher interface {
	PublishControl(mac, channel, action string) error
}

type Config struct {
	Host     string
	Port     string
	Username string
	Password string
	ClientID string
}

type Client struct {
	mqtt mqtt.Client
}

// NewClient configures the paho client with the connection options the
// devices expect: clean session, 1s reconnect, 4s connect timeout.
// onConnect runs on every (re)connection and is where subscriptions
// are installed.
func NewClient(cfg Config, onConnect func(c *Client)) *Client {
	logger := common.GetLoggerWith(common.LoggerNameBusListener)

	if cfg.ClientID == "" {
		cfg.ClientID = "api"
	}

	broker := fmt.Sprintf("tcp://%s:%s", cfg.Host, cfg.Port)
	logger.Debug("Connecting to MQTT broker", zap.String("broker", broker))

	c := &Client{}

	opts := mqtt.NewClientOptions().
		AddBroker(broker).
		SetClientID(cfg.ClientID).
		SetCleanSession(true).
		SetConnectTimeout(connectTimeout).
		SetUsername(cfg.Username).
		SetPassword(cfg.Password).
		SetAutoReconnect(true).
		SetConnectRetryInterval(time.Second)

	opts.OnConnect = func(mqtt.Client) {
		logger.Info("Connected to MQTT broker", zap.String("broker", broker))
		if onConnect != nil {
			onConnect(c)
		}
	}
	opts.OnConnectionLost = func(_ mqtt.Client, err error) {
		logger.Warn("Lost connection to MQTT broker", zap.Error(err))
	}

	c.mqtt = mqtt.NewClient(opts)
	return c
}

// Connect blocks until the broker accepts the session or the connect
// timeout expires. A refused connection is a configuration error.
func (c *Client) Connect() error {
	token := c.mqtt.Connect()
	if !token.WaitTimeout(2 * connectTimeout) {
		return fmt.Errorf("timed out connecting to mqtt broker")
	}
	return token.Error()
}

func (c *Client) IsConnected() bool {
	return c != nil && c.mqtt != nil && c.mqtt.IsConnected()
}

func (c *Client) Subscribe(topic string, handler mqtt.MessageHandler) {
	logger := common.GetLoggerWith(common.LoggerNameBusListener)

	token := c.mqtt.Subscribe(topic, 1, handler)
	token.Wait()
	if err := token.Error(); err != nil {
		logger.Warn("Failed to subscribe to topic", zap.String("topic", topic), zap.Error(err))
		return
	}
	logger.Info("Subscribed to topic", zap.String("topic", topic))
}

type controlMessage struct {
	Control string `json:"control"`
}

// PublishControl sends an on/off command to a device channel, QoS 1
// retained so a device that reconnects picks up the latest command.
func (c *Client) PublishControl(mac, channel, action string) error {
	if c == nil || c.mqtt == nil || !c.mqtt.IsConnected() {
		return ErrNotConnected
	}

	payload, err := json.Marshal(controlMessage{Control: action})
	if err != nil {
		return err
	}

	topic := fmt.Sprintf("%s/%s/%s", controlTopicPrefix, mac, channel)
	token := c.mqtt.Publish(topic, 1, true, payload)
	if !token.WaitTimeout(publishTimeout) {
		return fmt.Errorf("timed out publishing to %s", topic)
	}
	return token.Error()
}
