package monitor

import (
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"unishare.xyz/home-monitor/pkg/common"
	"unishare.xyz/home-monitor/pkg/models"
	_ "unishare.xyz/home-monitor/pkg/testing"
)

func TestTelemetryStoreDefaults(t *testing.T) {
	common.SetTestLoggerNop()

	store := NewTelemetryStore()
	deviceID := uuid.NewString()

	// boolean kinds default to false
	for _, kind := range []models.MetricKind{models.KindFire, models.KindLight} {
		v := store.Get(deviceID, kind)
		assert.True(t, v.Valid, "kind %s", kind)
		assert.False(t, v.Bool, "kind %s", kind)
	}

	// numeric kinds default to the unknown sentinel
	for _, kind := range []models.MetricKind{
		models.KindTemperature,
		models.KindApparentTemperature,
		models.KindHumidity,
	} {
		v := store.Get(deviceID, kind)
		assert.False(t, v.Valid, "kind %s", kind)
	}
}

func TestTelemetryStoreRoundTrip(t *testing.T) {
	common.SetTestLoggerNop()

	store := NewTelemetryStore()
	deviceID := uuid.NewString()

	store.Set(deviceID, models.KindFire, models.BoolValue(true))
	store.Set(deviceID, models.KindTemperature, models.FloatValue(25.31))

	fire := store.Get(deviceID, models.KindFire)
	assert.True(t, fire.Bool)

	temp := store.Get(deviceID, models.KindTemperature)
	assert.True(t, temp.Valid)
	assert.Equal(t, 25.31, temp.Float)

	// other devices are unaffected
	other := store.Get(uuid.NewString(), models.KindFire)
	assert.False(t, other.Bool)
}

func TestTelemetryStoreLastWriteWins(t *testing.T) {
	common.SetTestLoggerNop()

	store := NewTelemetryStore()
	deviceID := uuid.NewString()

	store.Set(deviceID, models.KindHumidity, models.FloatValue(40))
	store.Set(deviceID, models.KindHumidity, models.FloatValue(63))

	v := store.Get(deviceID, models.KindHumidity)
	assert.Equal(t, 63.0, v.Float)
	assert.Equal(t, 1, store.Len())
}

func TestTelemetryStoreLookupSentinel(t *testing.T) {
	common.SetTestLoggerNop()

	store := NewTelemetryStore()
	deviceID := uuid.NewString()

	_, ok := store.Lookup(deviceID, models.KindLight)
	assert.False(t, ok)

	store.Set(deviceID, models.KindLight, models.BoolValue(false))

	v, ok := store.Lookup(deviceID, models.KindLight)
	assert.True(t, ok)
	assert.False(t, v.Bool)
}

func TestTelemetryStoreConcurrency(t *testing.T) {
	common.SetTestLoggerNop()

	store := NewTelemetryStore()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			deviceID := fmt.Sprintf("device-%d", n%5)
			store.Set(deviceID, models.KindTemperature, models.FloatValue(float64(n)))
			v := store.Get(deviceID, models.KindTemperature)
			if !v.Valid {
				t.Error("expected a valid reading after write")
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 5, store.Len())
}
