package monitor

import (
	"context"

	"unishare.xyz/home-monitor/pkg/db"
	"unishare.xyz/home-monitor/pkg/models"
)

type ITelemetry interface {
	Get(deviceID string, kind models.MetricKind) models.Value
	Lookup(deviceID string, kind models.MetricKind) (models.Value, bool)
	Set(deviceID string, kind models.MetricKind, value models.Value)
}

type IAlarm interface {
	Trigger(ctx context.Context, deviceID string) error
}

type IUser interface {
	Register(chatID int64, username string) error
	Get(chatID int64) (*models.User, error)
	List() ([]models.User, error)
	SetAlarmEnabled(chatID int64, enabled bool) error
	SetLastDevice(chatID int64, mac string) error
}

type IDevice interface {
	List(deviceType string) ([]models.Device, error)
	Register(name, mac, deviceType string) error
}

// Caller reaches a user through the voice/call channel.
type Caller interface {
	Call(ctx context.Context, username, text string) error
}

// Messenger reaches a user through the chat channel.
type Messenger interface {
	SendFireAlarm(chatID int64, deviceID string) error
}

type Monitor struct {
	Db        db.DB
	Telemetry ITelemetry
	Alarm     IAlarm
	User      IUser
	Device    IDevice

	Caller Caller
	Chat   Messenger

	alarmState alarmState
}

type ServiceOpts struct {
	Telemetry ITelemetry
	Alarm     IAlarm
	User      IUser
	Device    IDevice
}

func (m *Monitor) WithServices(opts ServiceOpts) *Monitor {
	if opts.Telemetry != nil {
		m.Telemetry = opts.Telemetry
	}
	if opts.Alarm != nil {
		m.Alarm = opts.Alarm
	}
	if opts.User != nil {
		m.User = opts.User
	}
	if opts.Device != nil {
		m.Device = opts.Device
	}
	return m
}
