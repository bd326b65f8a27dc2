package monitor

import (
	"go.uber.org/zap"
	"gorm.io/gorm/clause"
	"unishare.xyz/home-monitor/pkg/common"
	"unishare.xyz/home-monitor/pkg/models"
)

func (m *Monitor) listDevices(deviceType string) ([]models.Device, error) {
	var devices []models.Device
	err := m.Db.Conn.
		Where("type = ?", deviceType).
		Order("name").
		Find(&devices).Error
	return devices, err
}

func (m *Monitor) registerDevice(name, mac, deviceType string) error {
	logger := common.GetLoggerWith(
		common.LoggerNameMonitorCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryDevice),
	)

	device := models.Device{
		MAC:  mac,
		Name: name,
		Type: deviceType,
	}

	err := m.Db.Conn.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "mac"}},
		UpdateAll: true,
	}).Create(&device).Error

	if err == nil {
		logger.Info("Registered device", zap.Reflect("device", device))
	}

	return err
}

type IDeviceImpl struct {
	m *Monitor
}

func (id *IDeviceImpl) List(deviceType string) ([]models.Device, error) {
	return id.m.listDevices(deviceType)
}

func (id *IDeviceImpl) Register(name, mac, deviceType string) error {
	return id.m.registerDevice(name, mac, deviceType)
}

func (m *Monitor) GetIDevice() IDevice {
	return &IDeviceImpl{m: m}
}
