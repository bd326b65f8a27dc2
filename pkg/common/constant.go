package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyHMDBType string = "HM_DB_TYPE"
	EnvKeyHMDbPath string = "HM_DB_PATH"

	EnvKeyHMHttpHostPort string = "HM_HTTP_HOST_PORT"

	EnvKeyHMDefaultRate  string = "HM_DEFAULT_RATE"
	EnvKeyHMDefaultBurst string = "HM_DEFAULT_BURST"

	EnvKeyHMLiveUpdateInterval string = "HM_LIVE_UPDATE_INTERVAL"

	EnvKeyMQTTHost     string = "MQTT_HOST"
	EnvKeyMQTTPort     string = "MQTT_PORT"
	EnvKeyMQTTUsername string = "MQTT_USERNAME"
	EnvKeyMQTTPassword string = "MQTT_PASSWORD"

	EnvKeyTelegramBotToken string = "TELEGRAM_BOT_TOKEN"

	EnvKeyCallMeBotURL  string = "CALLMEBOT_URL"
	EnvKeyCallMeBotLang string = "CALLMEBOT_LANG"
	EnvKeyCallMeBotCC   string = "CALLMEBOT_CC"

	EnvKeyInfluxURL    string = "INFLUX_URL"
	EnvKeyInfluxToken  string = "INFLUX_TOKEN"
	EnvKeyInfluxOrg    string = "INFLUX_ORG"
	EnvKeyInfluxBucket string = "INFLUX_BUCKET"

	LoggerNameMonitorCore   string = "monitor_core"
	LoggerNameRestfulServer string = "restful_server"
	LoggerNameBusListener   string = "bus_listener"
	LoggerNameTelegramBot   string = "telegram_bot"
	LoggerNameHistory       string = "history"
	LoggerFieldCategory     string = "category"
	LoggerCategoryTelemetry string = "telemetry"
	LoggerCategoryAlarm     string = "alarm"
	LoggerCategoryUser      string = "user"
	LoggerCategoryDevice    string = "device"
	LoggerCategoryControl   string = "control"
)
