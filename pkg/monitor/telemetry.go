package monitor

import (
	"sync"

	"go.uber.org/zap"
	"unishare.xyz/home-monitor/pkg/common"
	"unishare.xyz/home-monitor/pkg/models"
)

type telemetryKey struct {
	device string
	kind   models.MetricKind
}

// TelemetryStore holds the latest known reading per (device, kind)
// pair. Readings are replaced whole on write, so concurrent readers
// never observe a partial value. At most one record exists per pair;
// entries live for the process lifetime.
type TelemetryStore struct {
	mu     sync.RWMutex
	values map[telemetryKey]models.Value
}

func NewTelemetryStore() *TelemetryStore {
	return &TelemetryStore{
		values: make(map[telemetryKey]models.Value),
	}
}

// Get returns the stored reading, or the kind's documented default when
// the pair has never reported. Absence is not an error: an unknown
// device behaves like a known device with no data.
func (s *TelemetryStore) Get(deviceID string, kind models.MetricKind) models.Value {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if v, ok := s.values[telemetryKey{device: deviceID, kind: kind}]; ok {
		return v
	}
	return kind.Default()
}

// Lookup is the sentinel variant of Get for callers that need to tell
// "never reported" apart from "reported the default".
func (s *TelemetryStore) Lookup(deviceID string, kind models.MetricKind) (models.Value, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[telemetryKey{device: deviceID, kind: kind}]
	return v, ok
}

// Set overwrites (or creates) the reading for (deviceID, kind).
// Last write wins; the caller is responsible for type correctness.
func (s *TelemetryStore) Set(deviceID string, kind models.MetricKind, value models.Value) {
	logger := common.GetLoggerWith(
		common.LoggerNameMonitorCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryTelemetry),
	)

	s.mu.Lock()
	s.values[telemetryKey{device: deviceID, kind: kind}] = value
	tracked := len(s.values)
	s.mu.Unlock()

	telemetryKeysTracked.Set(float64(tracked))

	logger.Debug("Stored telemetry reading",
		zap.String("device", deviceID),
		zap.String("kind", string(kind)),
		zap.Reflect("value", value))
}

// Len reports the number of (device, kind) pairs currently tracked.
func (s *TelemetryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.values)
}
