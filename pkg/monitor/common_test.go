package monitor

import (
	"bufio"
	"encoding/json"
	"io"
	"testing"

	"go.uber.org/mock/gomock"
	"unishare.xyz/home-monitor/pkg/db"
	"unishare.xyz/home-monitor/pkg/monitor/mocks"
)

func GetMockMonitorWithMemorySqliteDialector(t *testing.T, useMockUser, useMockDevice bool) (
	*gomock.Controller,
	*Monitor,
	*mocks.MockIUser,
	*mocks.MockIDevice,
	*mocks.MockCaller,
) {
	ctrl := gomock.NewController(t)

	mockIUser := mocks.NewMockIUser(ctrl)
	mockIDevice := mocks.NewMockIDevice(ctrl)
	mockCaller := mocks.NewMockCaller(ctrl)

	dialector := db.UseMemorySqliteDialector()
	dbInstance := db.GetInstance(dialector) // ensure migrations
	monitorInstance := &Monitor{
		Db:     *dbInstance,
		Caller: mockCaller,
	}

	userService := monitorInstance.GetIUser()
	if useMockUser {
		userService = mockIUser
	}

	deviceService := monitorInstance.GetIDevice()
	if useMockDevice {
		deviceService = mockIDevice
	}

	monitorInstance.WithServices(ServiceOpts{
		Telemetry: NewTelemetryStore(),
		Alarm:     monitorInstance.GetIAlarm(),
		User:      userService,
		Device:    deviceService,
	})

	return ctrl, monitorInstance, mockIUser, mockIDevice, mockCaller
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}
