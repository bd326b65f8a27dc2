package telegram

import (
	"fmt"
	"strings"
	"time"

	"unishare.xyz/home-monitor/pkg/models"
	"unishare.xyz/home-monitor/pkg/monitor"
)

const (
	callbackPrefixDevice = "device_"
	callbackPrefixAlarm  = "alarm_"
)

const somethingWentWrongMessage = "Something went wrong. Retry later..."

func yesNo(v models.Value) string {
	if v.Bool {
		return "YES"
	}
	return "NO"
}

func degrees(v models.Value) string {
	if !v.Valid {
		return "N/A"
	}
	return fmt.Sprintf("%.2f° C", v.Float)
}

func percent(v models.Value) string {
	if !v.Valid {
		return "N/A"
	}
	return fmt.Sprintf("%.0f%%", v.Float)
}

// deviceStatusMessage renders the markdown status card for a device
// from whatever the telemetry store currently holds.
func deviceStatusMessage(telemetry monitor.ITelemetry, deviceID string, now time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🌐 MAC Address: *%s*\n\n", deviceID)
	fmt.Fprintf(&b, "🔥 Fire: %s\n", yesNo(telemetry.Get(deviceID, models.KindFire)))
	fmt.Fprintf(&b, "🕯 Light: %s\n\n", yesNo(telemetry.Get(deviceID, models.KindLight)))
	fmt.Fprintf(&b, "🌡 Temperature: %s\n", degrees(telemetry.Get(deviceID, models.KindTemperature)))
	fmt.Fprintf(&b, "💧 Humidity: %s\n", percent(telemetry.Get(deviceID, models.KindHumidity)))
	fmt.Fprintf(&b, "🥵 Apparent Temperature: %s\n\n", degrees(telemetry.Get(deviceID, models.KindApparentTemperature)))
	fmt.Fprintf(&b, "🕙 Last update: %s", now.UTC().Format(time.RFC3339))

	return b.String()
}

func fireAlarmMessage(deviceID string, now time.Time) string {
	var b strings.Builder

	b.WriteString("*Fire detected!*\n\n")
	fmt.Fprintf(&b, "Device: _%s_\n", deviceID)
	fmt.Fprintf(&b, "Time: _%s_", now.UTC().Format(time.RFC3339))

	return b.String()
}

func helpMessage() string {
	var b strings.Builder

	b.WriteString("📃 All available commands: \n\n")
	b.WriteString("/start - the welcome command\n")
	b.WriteString("/help - the help command\n")
	b.WriteString("/get_devices - get all the available devices\n")
	b.WriteString("/get_device_info - get info about a selectable device\n")
	b.WriteString("/set_alarm - enable or disable fire alarm notifications\n")

	return b.String()
}

func deviceListMessage(devices []models.Device) string {
	var b strings.Builder

	b.WriteString("📃 Available devices: \n\n")
	for _, d := range devices {
		fmt.Fprintf(&b, "• %s - %s\n", d.Name, d.MAC)
	}

	return b.String()
}
