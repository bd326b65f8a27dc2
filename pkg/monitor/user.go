package monitor

import (
	"go.uber.org/zap"
	"gorm.io/gorm/clause"
	"unishare.xyz/home-monitor/pkg/common"
	"unishare.xyz/home-monitor/pkg/models"
)

func (m *Monitor) registerUser(chatID int64, username string) error {
	logger := common.GetLoggerWith(
		common.LoggerNameMonitorCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryUser),
	)

	user := models.User{
		ChatID:   chatID,
		Username: username,
	}

	// First interaction creates the row with alarm disabled; repeat
	// interactions only refresh the handle.
	err := m.Db.Conn.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "chat_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"username"}),
	}).Create(&user).Error

	if err == nil {
		logger.Info("Registered user", zap.Int64("chat_id", chatID), zap.String("username", username))
	}

	return err
}

func (m *Monitor) getUser(chatID int64) (*models.User, error) {
	var user models.User
	err := m.Db.Conn.First(&user, "chat_id = ?", chatID).Error
	return &user, err
}

func (m *Monitor) listUsers() ([]models.User, error) {
	var users []models.User
	err := m.Db.Conn.Find(&users).Error
	return users, err
}

func (m *Monitor) setAlarmEnabled(chatID int64, enabled bool) error {
	logger := common.GetLoggerWith(
		common.LoggerNameMonitorCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryUser),
	)

	err := m.Db.Conn.
		Model(&models.User{}).
		Where("chat_id = ?", chatID).
		Update("alarm_enabled", enabled).Error

	if err == nil {
		logger.Info("Updated alarm opt-in", zap.Int64("chat_id", chatID), zap.Bool("enabled", enabled))
	}

	return err
}

func (m *Monitor) setLastDevice(chatID int64, mac string) error {
	return m.Db.Conn.
		Model(&models.User{}).
		Where("chat_id = ?", chatID).
		Update("last_device", mac).Error
}

type IUserImpl struct {
	m *Monitor
}

func (iu *IUserImpl) Register(chatID int64, username string) error {
	return iu.m.registerUser(chatID, username)
}

func (iu *IUserImpl) Get(chatID int64) (*models.User, error) {
	return iu.m.getUser(chatID)
}

func (iu *IUserImpl) List() ([]models.User, error) {
	return iu.m.listUsers()
}

func (iu *IUserImpl) SetAlarmEnabled(chatID int64, enabled bool) error {
	return iu.m.setAlarmEnabled(chatID, enabled)
}

func (iu *IUserImpl) SetLastDevice(chatID int64, mac string) error {
	return iu.m.setLastDevice(chatID, mac)
}

func (m *Monitor) GetIUser() IUser {
	return &IUserImpl{m: m}
}
