package telegram

import (
	"context"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"unishare.xyz/home-monitor/pkg/common"
	"unishare.xyz/home-monitor/pkg/models"
	"unishare.xyz/home-monitor/pkg/monitor"
)

const DefaultLiveUpdateInterval = 15 * time.Second

// botAPI is the slice of tgbotapi.BotAPI the bot uses. Kept narrow so
// handler tests can run against a fake transport.
type botAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
}

// Bot is the chat front end. It serves commands and inline callbacks,
// keeps live status messages fresh, and doubles as the chat channel of
// the fire alarm notifier.
type Bot struct {
	api     botAPI
	monitor *monitor.Monitor
	live    *liveStatusStore

	LiveUpdateInterval time.Duration
}

// New connects to the Telegram API with the given token. An empty or
// rejected token is a configuration error and fails loudly here rather
// than on first use.
func New(token string, m *monitor.Monitor) (*Bot, error) {
	if token == "" {
		return nil, fmt.Errorf("telegram: %s is not set", common.EnvKeyTelegramBotToken)
	}

	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram: connect bot api: %w", err)
	}

	return newWithAPI(api, m), nil
}

func newWithAPI(api botAPI, m *monitor.Monitor) *Bot {
	return &Bot{
		api:                api,
		monitor:            m,
		live:               newLiveStatusStore(),
		LiveUpdateInterval: DefaultLiveUpdateInterval,
	}
}

// Run consumes updates until the context is cancelled. A panicking or
// failing handler is logged and the loop keeps serving.
func (b *Bot) Run(ctx context.Context) {
	logger := common.GetLoggerWith(common.LoggerNameTelegramBot)
	logger.Debug("Starting telegram bot...")

	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = 30
	updates := b.api.GetUpdatesChan(cfg)

	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			b.serveUpdate(update)
		}
	}
}

func (b *Bot) serveUpdate(update tgbotapi.Update) {
	logger := common.GetLoggerWith(common.LoggerNameTelegramBot)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("Recovered from a panicking update handler", zap.Any("panic", r))
		}
	}()

	if err := b.HandleUpdate(update); err != nil {
		logger.Warn("Update handler failed", zap.Error(err))
		if chatID, ok := updateChatID(update); ok {
			msg := tgbotapi.NewMessage(chatID, somethingWentWrongMessage)
			if _, sendErr := b.api.Send(msg); sendErr != nil {
				logger.Warn("Failed to notify user about the error", zap.Error(sendErr))
			}
		}
	}
}

func updateChatID(update tgbotapi.Update) (int64, bool) {
	if update.Message != nil {
		return update.Message.Chat.ID, true
	}
	if update.CallbackQuery != nil && update.CallbackQuery.Message != nil {
		return update.CallbackQuery.Message.Chat.ID, true
	}
	return 0, false
}

// HandleUpdate dispatches one update to its command or callback handler.
func (b *Bot) HandleUpdate(update tgbotapi.Update) error {
	switch {
	case update.CallbackQuery != nil:
		return b.handleCallback(update.CallbackQuery)
	case update.Message != nil && update.Message.IsCommand():
		return b.handleCommand(update.Message)
	default:
		return nil
	}
}

func (b *Bot) handleCommand(msg *tgbotapi.Message) error {
	switch msg.Command() {
	case "start":
		return b.handleStart(msg)
	case "help":
		return b.reply(msg.Chat.ID, helpMessage(), "")
	case "get_devices":
		return b.handleGetDevices(msg)
	case "get_device_info":
		return b.handleGetDeviceInfo(msg)
	case "set_alarm":
		return b.handleSetAlarm(msg)
	default:
		return nil
	}
}

func (b *Bot) handleStart(msg *tgbotapi.Message) error {
	logger := common.GetLoggerWith(
		common.LoggerNameTelegramBot,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryUser),
	)

	username := ""
	if msg.From != nil {
		username = msg.From.UserName
	}

	if err := b.monitor.User.Register(msg.Chat.ID, username); err != nil {
		return fmt.Errorf("register user: %w", err)
	}
	logger.Info("User registered",
		zap.Int64("chat_id", msg.Chat.ID), zap.String("username", username))

	if err := b.reply(msg.Chat.ID, "👋 Welcome to *Home Monitor*!", tgbotapi.ModeMarkdown); err != nil {
		return err
	}
	return b.reply(msg.Chat.ID, helpMessage(), "")
}

func (b *Bot) handleGetDevices(msg *tgbotapi.Message) error {
	devices, err := b.monitor.Device.List(models.DeviceTypeSensor)
	if err != nil {
		return fmt.Errorf("list devices: %w", err)
	}
	if len(devices) == 0 {
		return b.reply(msg.Chat.ID, "No device found!", "")
	}

	if err := b.reply(msg.Chat.ID, deviceListMessage(devices), ""); err != nil {
		return err
	}
	return b.reply(msg.Chat.ID,
		"If you want to see specific informations about a device use /get_device_info", "")
}

func (b *Bot) handleGetDeviceInfo(msg *tgbotapi.Message) error {
	devices, err := b.monitor.Device.List(models.DeviceTypeSensor)
	if err != nil {
		return fmt.Errorf("list devices: %w", err)
	}
	if len(devices) == 0 {
		return b.reply(msg.Chat.ID, "No device found!", "")
	}

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(devices))
	for _, d := range devices {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(d.Name, callbackPrefixDevice+d.MAC),
		))
	}

	reply := tgbotapi.NewMessage(msg.Chat.ID, "Select a device:")
	reply.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	_, err = b.api.Send(reply)
	return err
}

func (b *Bot) handleSetAlarm(msg *tgbotapi.Message) error {
	reply := tgbotapi.NewMessage(msg.Chat.ID, "Fire alarm notifications:")
	reply.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Enable", callbackPrefixAlarm+"on"),
			tgbotapi.NewInlineKeyboardButtonData("Disable", callbackPrefixAlarm+"off"),
		),
	)
	_, err := b.api.Send(reply)
	return err
}

func (b *Bot) handleCallback(cq *tgbotapi.CallbackQuery) error {
	data := cq.Data

	switch {
	case strings.HasPrefix(data, callbackPrefixDevice):
		return b.handleDeviceCallback(cq, strings.TrimPrefix(data, callbackPrefixDevice))
	case strings.HasPrefix(data, callbackPrefixAlarm):
		return b.handleAlarmCallback(cq, strings.TrimPrefix(data, callbackPrefixAlarm) == "on")
	default:
		return nil
	}
}

func (b *Bot) handleDeviceCallback(cq *tgbotapi.CallbackQuery, device string) error {
	logger := common.GetLoggerWith(
		common.LoggerNameTelegramBot,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryDevice),
	)

	if cq.Message == nil {
		return nil
	}
	chatID := cq.Message.Chat.ID

	// drop the selector message, the status message replaces it
	if _, err := b.api.Request(tgbotapi.NewDeleteMessage(chatID, cq.Message.MessageID)); err != nil {
		logger.Warn("Impossible to delete old selector message", zap.Error(err))
	}

	if _, err := b.api.Request(tgbotapi.NewCallback(cq.ID, "Device "+device+" selected!")); err != nil {
		logger.Warn("Failed to answer callback query", zap.Error(err))
	}

	if err := b.monitor.User.SetLastDevice(chatID, device); err != nil {
		logger.Warn("Failed to remember last device",
			zap.Int64("chat_id", chatID), zap.Error(err))
	}

	msg := tgbotapi.NewMessage(chatID, deviceStatusMessage(b.monitor.Telemetry, device, time.Now()))
	msg.ParseMode = tgbotapi.ModeMarkdown
	sent, err := b.api.Send(msg)
	if err != nil {
		return fmt.Errorf("send device status: %w", err)
	}

	b.live.Set(chatID, device, sent.MessageID)
	return nil
}

func (b *Bot) handleAlarmCallback(cq *tgbotapi.CallbackQuery, enabled bool) error {
	logger := common.GetLoggerWith(
		common.LoggerNameTelegramBot,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryAlarm),
	)

	if cq.Message == nil {
		return nil
	}
	chatID := cq.Message.Chat.ID

	if err := b.monitor.User.SetAlarmEnabled(chatID, enabled); err != nil {
		return fmt.Errorf("set alarm flag: %w", err)
	}
	logger.Info("User alarm setup changed",
		zap.Int64("chat_id", chatID), zap.Bool("enabled", enabled))

	confirmation := "Fire alarm notifications disabled!"
	if enabled {
		confirmation = "Fire alarm notifications enabled!"
	}

	if _, err := b.api.Request(tgbotapi.NewCallback(cq.ID, confirmation)); err != nil {
		logger.Warn("Failed to answer callback query", zap.Error(err))
	}
	return b.reply(chatID, confirmation, "")
}

// RunLiveUpdater periodically rewrites every pinned live status message
// with fresh telemetry until the context is cancelled.
func (b *Bot) RunLiveUpdater(ctx context.Context) {
	ticker := time.NewTicker(b.LiveUpdateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			b.UpdateLiveStatus()
		}
	}
}

// UpdateLiveStatus performs one refresh pass over the live entries.
// Failed edits are logged and the entry stays registered.
func (b *Bot) UpdateLiveStatus() {
	logger := common.GetLoggerWith(common.LoggerNameTelegramBot)

	entries := b.live.Snapshot()
	for chatID, entry := range entries {
		edit := tgbotapi.NewEditMessageText(chatID, entry.MessageID,
			deviceStatusMessage(b.monitor.Telemetry, entry.Device, time.Now()))
		edit.ParseMode = tgbotapi.ModeMarkdown
		if _, err := b.api.Send(edit); err != nil {
			logger.Error("Failed to update live status",
				zap.Int64("chat_id", chatID), zap.Error(err))
		}
	}

	if len(entries) > 0 {
		logger.Debug("Live status updated", zap.Int("active", len(entries)))
	}
}

// SendFireAlarm delivers the chat side of a fire alarm. It satisfies
// the notifier's Messenger interface.
func (b *Bot) SendFireAlarm(chatID int64, deviceID string) error {
	msg := tgbotapi.NewMessage(chatID, fireAlarmMessage(deviceID, time.Now()))
	msg.ParseMode = tgbotapi.ModeMarkdown
	_, err := b.api.Send(msg)
	return err
}

func (b *Bot) reply(chatID int64, text, parseMode string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = parseMode
	_, err := b.api.Send(msg)
	return err
}
