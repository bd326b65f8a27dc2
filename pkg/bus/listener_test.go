package bus

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"unishare.xyz/home-monitor/pkg/common"
	"unishare.xyz/home-monitor/pkg/models"
	"unishare.xyz/home-monitor/pkg/monitor"
	"unishare.xyz/home-monitor/pkg/monitor/mocks"
	_ "unishare.xyz/home-monitor/pkg/testing"
)

func setupListener(t *testing.T) (*gomock.Controller, *Listener, *monitor.TelemetryStore, *mocks.MockIAlarm) {
	ctrl := gomock.NewController(t)

	store := monitor.NewTelemetryStore()
	mockIAlarm := mocks.NewMockIAlarm(ctrl)

	m := (&monitor.Monitor{}).WithServices(monitor.ServiceOpts{
		Telemetry: store,
		Alarm:     mockIAlarm,
	})

	return ctrl, &Listener{Monitor: m}, store, mockIAlarm
}

func TestHandleMessageFireTriggersAlarm(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, listener, store, mockIAlarm := setupListener(t)
	defer ctrl.Finish()

	triggered := make(chan string, 1)
	mockIAlarm.EXPECT().
		Trigger(gomock.Any(), gomock.Eq("AA:BB:CC")).
		DoAndReturn(func(_ context.Context, deviceID string) error {
			triggered <- deviceID
			return nil
		}).
		Times(1)

	listener.HandleMessage("unishare/sensors/AA:BB:CC/flame", []byte(`{"value": true}`))

	select {
	case deviceID := <-triggered:
		assert.Equal(t, "AA:BB:CC", deviceID)
	case <-time.After(time.Second):
		t.Fatal("alarm was not triggered")
	}

	v := store.Get("AA:BB:CC", models.KindFire)
	assert.True(t, v.Bool)
}

func TestHandleMessageFireClearedDoesNotTrigger(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, listener, store, mockIAlarm := setupListener(t)
	defer ctrl.Finish()

	mockIAlarm.EXPECT().Trigger(gomock.Any(), gomock.Any()).Times(0)

	listener.HandleMessage("unishare/sensors/AA:BB:CC/flame", []byte(`{"value": false}`))

	v := store.Get("AA:BB:CC", models.KindFire)
	assert.False(t, v.Bool)
}

func TestHandleMessageNumericKinds(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, listener, store, _ := setupListener(t)
	defer ctrl.Finish()

	listener.HandleMessage("unishare/sensors/AA:BB:CC/temperature", []byte(`{"value": 25.31}`))
	listener.HandleMessage("unishare/sensors/AA:BB:CC/apparent_temperature", []byte(`{"value": 27.8}`))
	listener.HandleMessage("unishare/sensors/AA:BB:CC/humidity", []byte(`{"value": 63}`))

	temp := store.Get("AA:BB:CC", models.KindTemperature)
	require.True(t, temp.Valid)
	assert.Equal(t, 25.31, temp.Float)

	atemp := store.Get("AA:BB:CC", models.KindApparentTemperature)
	require.True(t, atemp.Valid)
	assert.Equal(t, 27.8, atemp.Float)

	hum := store.Get("AA:BB:CC", models.KindHumidity)
	require.True(t, hum.Valid)
	assert.Equal(t, 63.0, hum.Float)
}

func TestHandleMessageNonNumericReading(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, listener, store, _ := setupListener(t)
	defer ctrl.Finish()

	listener.HandleMessage("unishare/sensors/AA:BB:CC/temperature", []byte(`{"value": "N/A"}`))

	v, ok := store.Lookup("AA:BB:CC", models.KindTemperature)
	require.True(t, ok, "a reading must be stored even when non-numeric")
	assert.False(t, v.Valid)
}

func TestHandleMessageDropsMalformed(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, listener, store, mockIAlarm := setupListener(t)
	defer ctrl.Finish()

	mockIAlarm.EXPECT().Trigger(gomock.Any(), gomock.Any()).Times(0)

	listener.HandleMessage("unishare/sensors/AA:BB:CC/flame", []byte(`not json`))
	listener.HandleMessage("unishare/sensors", []byte(`{"value": true}`))
	listener.HandleMessage("unishare/sensors/AA:BB:CC/radon", []byte(`{"value": 1}`))

	assert.Equal(t, 0, store.Len())
}
