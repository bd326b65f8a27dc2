package monitor

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zapcore"

	"unishare.xyz/home-monitor/pkg/common"
	"unishare.xyz/home-monitor/pkg/models"
	_ "unishare.xyz/home-monitor/pkg/testing"
)

func TestTriggerSkipsOptedOutUsers(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, monitorObj, mockIUser, _, mockCaller := GetMockMonitorWithMemorySqliteDialector(t, true, false)
	defer ctrl.Finish()

	mockIUser.EXPECT().List().Return([]models.User{
		{ChatID: 1, Username: "alice", AlarmEnabled: false},
		{ChatID: 2, Username: "bob", AlarmEnabled: false},
	}, nil).Times(1)

	// no delivery attempt is allowed
	mockCaller.EXPECT().Call(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	err := monitorObj.Alarm.Trigger(context.Background(), uuid.NewString())
	assert.NoError(t, err)
	assert.True(t, monitorObj.LastAlarmTrigger().IsZero())
}

func TestTriggerWithoutUsernameLogsFailedDelivery(t *testing.T) {
	var buf = &bytes.Buffer{}
	common.SetTestCaptureLogger(buf, zapcore.WarnLevel)

	ctrl, monitorObj, mockIUser, _, mockCaller := GetMockMonitorWithMemorySqliteDialector(t, true, false)
	defer ctrl.Finish()

	mockIUser.EXPECT().List().Return([]models.User{
		{ChatID: 7, Username: "", AlarmEnabled: true},
	}, nil).Times(1)

	mockCaller.EXPECT().Call(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	err := monitorObj.Alarm.Trigger(context.Background(), "AA:BB:CC")
	assert.NoError(t, err)

	logs := ParseLogs(buf)
	found := false
	for _, log := range logs {
		lobj := log.(map[string]any)
		if lobj["msg"] == "Impossible to send an alarm call: user has no username" &&
			lobj["chat_id"] == 7.0 &&
			lobj["device"] == "AA:BB:CC" {
			found = true
		}
	}
	assert.True(t, found, "failed delivery log not found")
	assert.True(t, monitorObj.LastAlarmTrigger().IsZero())
}

func TestTriggerDeliversOncePerOptedInUser(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, monitorObj, mockIUser, _, mockCaller := GetMockMonitorWithMemorySqliteDialector(t, true, false)
	defer ctrl.Finish()

	deviceID := "AA:BB:CC"

	mockIUser.EXPECT().List().Return([]models.User{
		{ChatID: 1, Username: "alice", AlarmEnabled: true},
		{ChatID: 2, Username: "bob", AlarmEnabled: false},
	}, nil).Times(1)

	var calledUser, calledText string
	mockCaller.EXPECT().
		Call(gomock.Any(), gomock.Eq("alice"), gomock.Any()).
		DoAndReturn(func(_ context.Context, username, text string) error {
			calledUser = username
			calledText = text
			return nil
		}).
		Times(1)

	before := time.Now()
	err := monitorObj.Alarm.Trigger(context.Background(), deviceID)
	require.NoError(t, err)

	assert.Equal(t, "alice", calledUser)
	assert.True(t, strings.Contains(calledText, deviceID),
		"alert text should embed the device id, got: %s", calledText)

	last := monitorObj.LastAlarmTrigger()
	assert.False(t, last.IsZero())
	assert.WithinDuration(t, before, last, 5*time.Second)
}

func TestTriggerInsideCooldownStillDelivers(t *testing.T) {
	// The 120s window is computed but not enforced. This asserts the
	// shipped behavior: a second fire event right after the first one
	// produces a second call.
	common.SetTestLoggerNop()

	ctrl, monitorObj, mockIUser, _, mockCaller := GetMockMonitorWithMemorySqliteDialector(t, true, false)
	defer ctrl.Finish()

	users := []models.User{{ChatID: 1, Username: "alice", AlarmEnabled: true}}
	mockIUser.EXPECT().List().Return(users, nil).Times(2)

	mockCaller.EXPECT().
		Call(gomock.Any(), gomock.Eq("alice"), gomock.Any()).
		Return(nil).
		Times(2)

	require.NoError(t, monitorObj.Alarm.Trigger(context.Background(), "AA:BB:CC"))
	first := monitorObj.LastAlarmTrigger()
	require.False(t, first.IsZero())

	require.NoError(t, monitorObj.Alarm.Trigger(context.Background(), "AA:BB:CC"))
	second := monitorObj.LastAlarmTrigger()
	assert.False(t, second.Before(first))
}

func TestTriggerCallFailureIsNonFatal(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, monitorObj, mockIUser, _, mockCaller := GetMockMonitorWithMemorySqliteDialector(t, true, false)
	defer ctrl.Finish()

	mockIUser.EXPECT().List().Return([]models.User{
		{ChatID: 1, Username: "alice", AlarmEnabled: true},
		{ChatID: 2, Username: "bob", AlarmEnabled: true},
	}, nil).Times(1)

	mockCaller.EXPECT().
		Call(gomock.Any(), gomock.Eq("alice"), gomock.Any()).
		Return(assert.AnError).
		Times(1)
	mockCaller.EXPECT().
		Call(gomock.Any(), gomock.Eq("bob"), gomock.Any()).
		Return(nil).
		Times(1)

	// one user failing must not stop the fan-out or surface an error
	err := monitorObj.Alarm.Trigger(context.Background(), "AA:BB:CC")
	assert.NoError(t, err)
	assert.False(t, monitorObj.LastAlarmTrigger().IsZero())
}

func TestTriggerChatAlertsOptedInUsers(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, monitorObj, mockIUser, _, mockCaller := GetMockMonitorWithMemorySqliteDialector(t, true, false)
	defer ctrl.Finish()

	chat := newRecordingMessenger()
	monitorObj.Chat = chat

	mockIUser.EXPECT().List().Return([]models.User{
		{ChatID: 1, Username: "alice", AlarmEnabled: true},
		{ChatID: 2, Username: "bob", AlarmEnabled: false},
	}, nil).Times(1)

	mockCaller.EXPECT().Call(gomock.Any(), gomock.Eq("alice"), gomock.Any()).Return(nil).Times(1)

	require.NoError(t, monitorObj.Alarm.Trigger(context.Background(), "AA:BB:CC"))

	assert.Equal(t, []int64{1}, chat.chatIDs)
}

func TestTriggerWithoutCaller(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, monitorObj, mockIUser, _, _ := GetMockMonitorWithMemorySqliteDialector(t, true, false)
	defer ctrl.Finish()

	monitorObj.Caller = nil

	mockIUser.EXPECT().List().Return([]models.User{}, nil).Times(1)

	err := monitorObj.Alarm.Trigger(context.Background(), uuid.NewString())
	require.Error(t, err, "call service not available")
}

type recordingMessenger struct {
	chatIDs []int64
}

func newRecordingMessenger() *recordingMessenger {
	return &recordingMessenger{}
}

func (r *recordingMessenger) SendFireAlarm(chatID int64, deviceID string) error {
	r.chatIDs = append(r.chatIDs, chatID)
	return nil
}
