package models

// MetricKind is one telemetry dimension a sensor device reports. The
// string values are the storage codes used as part of store keys.
type MetricKind string

const (
	KindFire                MetricKind = "fire"
	KindLight               MetricKind = "light"
	KindTemperature         MetricKind = "temp"
	KindApparentTemperature MetricKind = "atemp"
	KindHumidity            MetricKind = "hum"
)

// AllKinds lists every metric kind a sensor device publishes.
var AllKinds = []MetricKind{
	KindFire,
	KindLight,
	KindTemperature,
	KindApparentTemperature,
	KindHumidity,
}

// IsBool reports whether the kind carries a boolean reading. The
// remaining kinds carry numeric readings that may be unknown.
func (k MetricKind) IsBool() bool {
	return k == KindFire || k == KindLight
}

// TopicLeaf returns the last MQTT topic segment devices publish the
// kind under.
func (k MetricKind) TopicLeaf() string {
	switch k {
	case KindFire:
		return "flame"
	case KindLight:
		return "light"
	case KindTemperature:
		return "temperature"
	case KindApparentTemperature:
		return "apparent_temperature"
	case KindHumidity:
		return "humidity"
	}
	return ""
}

// KindFromTopicLeaf resolves an MQTT topic leaf back to a metric kind.
func KindFromTopicLeaf(leaf string) (MetricKind, bool) {
	for _, k := range AllKinds {
		if k.TopicLeaf() == leaf {
			return k, true
		}
	}
	return "", false
}

// Default returns the documented fallback for the kind: false for
// boolean kinds, the unknown sentinel for numeric ones.
func (k MetricKind) Default() Value {
	if k.IsBool() {
		return Value{Valid: true}
	}
	return Value{}
}

// Value is one typed telemetry reading. Bool carries fire/light
// readings, Float the numeric kinds. Valid is false only for the
// numeric "no reading yet" sentinel; boolean readings are always valid.
type Value struct {
	Bool  bool
	Float float64
	Valid bool
}

func BoolValue(b bool) Value {
	return Value{Bool: b, Valid: true}
}

func FloatValue(f float64) Value {
	return Value{Float: f, Valid: true}
}

const DeviceTypeSensor = "sensors"

// Device is one registered sensor unit, identified by its hardware
// address.
type Device struct {
	MAC  string `gorm:"primaryKey" json:"mac"`
	Name string `json:"name"`
	Type string `gorm:"index" json:"-"`
}

// User is one chat user known to the bot. A row is created the first
// time the user interacts with the bot; AlarmEnabled defaults to off.
type User struct {
	ChatID       int64  `gorm:"primaryKey"`
	Username     string // telegram handle, may be empty
	AlarmEnabled bool
	LastDevice   string // last device the user viewed via the bot
}
