package monitor

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unishare.xyz/home-monitor/pkg/common"
	"unishare.xyz/home-monitor/pkg/models"
	_ "unishare.xyz/home-monitor/pkg/testing"
)

func TestRegisterAndListDevices(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, monitorObj, _, _, _ := GetMockMonitorWithMemorySqliteDialector(t, false, false)
	defer ctrl.Finish()

	mac := uuid.NewString()

	require.NoError(t, monitorObj.Device.Register("Kitchen", mac, models.DeviceTypeSensor))

	devices, err := monitorObj.Device.List(models.DeviceTypeSensor)
	require.NoError(t, err)

	found := false
	for _, d := range devices {
		if d.MAC == mac {
			found = true
			assert.Equal(t, "Kitchen", d.Name)
		}
	}
	assert.True(t, found)
}

func TestRegisterDeviceUpsert(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, monitorObj, _, _, _ := GetMockMonitorWithMemorySqliteDialector(t, false, false)
	defer ctrl.Finish()

	mac := uuid.NewString()

	require.NoError(t, monitorObj.Device.Register("Kitchen", mac, models.DeviceTypeSensor))
	require.NoError(t, monitorObj.Device.Register("Living Room", mac, models.DeviceTypeSensor))

	devices, err := monitorObj.Device.List(models.DeviceTypeSensor)
	require.NoError(t, err)

	count := 0
	for _, d := range devices {
		if d.MAC == mac {
			count++
			assert.Equal(t, "Living Room", d.Name)
		}
	}
	assert.Equal(t, 1, count, "registering the same mac twice must not duplicate the device")
}

func TestListDevicesFiltersByType(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, monitorObj, _, _, _ := GetMockMonitorWithMemorySqliteDialector(t, false, false)
	defer ctrl.Finish()

	mac := uuid.NewString()
	require.NoError(t, monitorObj.Device.Register("Garage Cam", mac, "cameras"))

	devices, err := monitorObj.Device.List(models.DeviceTypeSensor)
	require.NoError(t, err)
	for _, d := range devices {
		assert.NotEqual(t, mac, d.MAC)
	}
}
