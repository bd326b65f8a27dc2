package monitor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"unishare.xyz/home-monitor/pkg/common"
	"unishare.xyz/home-monitor/pkg/models"
)

const (
	// AlarmCooldown is the window computed between fire notifications.
	// It is logged but not enforced, matching the behavior the system
	// shipped with.
	AlarmCooldown = 120 * time.Second

	alarmCallWorkers = 4
	alarmCallTimeout = 8 * time.Second
)

// alarmState is the process-wide trigger bookkeeping shared by all
// fire events. triggerMu serializes Trigger invocations so two fire
// reports arriving together cannot interleave their fan-outs.
type alarmState struct {
	triggerMu sync.Mutex

	stampMu     sync.Mutex
	lastTrigger time.Time
}

func (a *alarmState) markTriggered(at time.Time) {
	a.stampMu.Lock()
	a.lastTrigger = at
	a.stampMu.Unlock()
}

func (a *alarmState) lastTriggered() time.Time {
	a.stampMu.Lock()
	defer a.stampMu.Unlock()
	return a.lastTrigger
}

// LastAlarmTrigger returns the time of the most recent successful
// alarm call delivery, zero if none happened yet.
func (m *Monitor) LastAlarmTrigger() time.Time {
	return m.alarmState.lastTriggered()
}

func (m *Monitor) trigger(ctx context.Context, deviceID string) error {
	logger := common.GetLoggerWith(
		common.LoggerNameMonitorCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryAlarm),
	)

	m.alarmState.triggerMu.Lock()
	defer m.alarmState.triggerMu.Unlock()

	if m.User == nil {
		return fmt.Errorf("user service not available")
	}

	users, err := m.User.List()
	if err != nil {
		return err
	}

	now := time.Now()
	if last := m.alarmState.lastTriggered(); !last.IsZero() && now.Sub(last) <= AlarmCooldown {
		// the window is never gated on, users are re-notified inside it
		logger.Debug("Fire alarm re-triggered inside cooldown window",
			zap.String("device", deviceID),
			zap.Duration("since_last", now.Sub(last)))
	}

	logger.Info("Fire alarm triggered", zap.String("device", deviceID))

	for _, user := range users {
		if !user.AlarmEnabled || m.Chat == nil {
			continue
		}
		if err := m.Chat.SendFireAlarm(user.ChatID, deviceID); err != nil {
			logger.Warn("Failed to send fire alarm chat message",
				zap.Int64("chat_id", user.ChatID), zap.Error(err))
		}
	}

	if m.Caller == nil {
		return fmt.Errorf("call service not available")
	}

	text := fmt.Sprintf(
		"Attention please! Fire detected on device %s. Check the chat for more information.",
		deviceID)

	var wg sync.WaitGroup
	sem := make(chan struct{}, alarmCallWorkers)

	for _, user := range users {
		if !user.AlarmEnabled {
			continue
		}

		if user.Username == "" {
			logger.Warn("Impossible to send an alarm call: user has no username",
				zap.Int64("chat_id", user.ChatID),
				zap.String("device", deviceID))
			alarmDeliveriesTotal.WithLabelValues("no_channel").Inc()
			continue
		}

		wg.Add(1)
		sem <- struct{}{}
		go func(u models.User) {
			defer wg.Done()
			defer func() { <-sem }()

			callCtx, cancel := context.WithTimeout(ctx, alarmCallTimeout)
			defer cancel()

			logger.Info("Sending alarm call",
				zap.Int64("chat_id", u.ChatID),
				zap.String("username", u.Username),
				zap.String("device", deviceID))

			if err := m.Caller.Call(callCtx, u.Username, text); err != nil {
				logger.Warn("Alarm call failed",
					zap.Int64("chat_id", u.ChatID),
					zap.String("username", u.Username),
					zap.Error(err))
				alarmDeliveriesTotal.WithLabelValues("failed").Inc()
				return
			}

			m.alarmState.markTriggered(time.Now())
			alarmDeliveriesTotal.WithLabelValues("delivered").Inc()
		}(user)
	}

	wg.Wait()
	return nil
}

type IAlarmImpl struct {
	m *Monitor
}

func (ia *IAlarmImpl) Trigger(ctx context.Context, deviceID string) error {
	return ia.m.trigger(ctx, deviceID)
}

func (m *Monitor) GetIAlarm() IAlarm {
	return &IAlarmImpl{m: m}
}
