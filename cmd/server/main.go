package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"unishare.xyz/home-monitor/pkg/bus"
	"unishare.xyz/home-monitor/pkg/call"
	"unishare.xyz/home-monitor/pkg/common"
	"unishare.xyz/home-monitor/pkg/db"
	"unishare.xyz/home-monitor/pkg/history"
	hmHttp "unishare.xyz/home-monitor/pkg/http"
	"unishare.xyz/home-monitor/pkg/monitor"
	"unishare.xyz/home-monitor/pkg/telegram"
)

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	var dbInstance *db.DB
	hmDbType := os.Getenv(common.EnvKeyHMDBType)
	switch hmDbType {
	case "file":
		dbInstance = db.GetInstance(db.UseSqliteDialector())
	case "memory":
		dbInstance = db.GetInstance(db.UseMemorySqliteDialector())
	default:
		log.Fatal("Unknown HM_DB_TYPE: " + hmDbType)
	}

	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyHMHttpHostPort))

	var defaultRate float64
	var defaultBurst int64

	if defaultRate, err = strconv.ParseFloat(os.Getenv(common.EnvKeyHMDefaultRate), 64); err != nil {
		log.Fatal("Invalid HM_DEFAULT_RATE, or not set in .env, should be a float64 value")
	}

	if defaultBurst, err = strconv.ParseInt(os.Getenv(common.EnvKeyHMDefaultBurst), 10, 64); err != nil {
		log.Fatal("Invalid HM_DEFAULT_BURST, or not set in .env, should be an int value")
	}

	logger := common.GetLogger()

	monitorCore := monitor.Monitor{
		Db: *dbInstance,
	}
	monitorCore.WithServices(monitor.ServiceOpts{
		Telemetry: monitor.NewTelemetryStore(),
		Alarm:     monitorCore.GetIAlarm(),
		User:      monitorCore.GetIUser(),
		Device:    monitorCore.GetIDevice(),
	})

	if callMeBotURL := strings.TrimSpace(os.Getenv(common.EnvKeyCallMeBotURL)); callMeBotURL != "" {
		caller, err := call.New(
			callMeBotURL,
			common.GetEnvOr(common.EnvKeyCallMeBotLang, "en"),
			common.GetEnvOr(common.EnvKeyCallMeBotCC, "missed"),
		)
		if err != nil {
			log.Fatalf("call api client failed to init: %v", err)
		}
		monitorCore.Caller = caller
	} else {
		logger.Warn("CALLMEBOT_URL not set, alarm calls are disabled")
	}

	ctx := context.Background()

	if botToken := strings.TrimSpace(os.Getenv(common.EnvKeyTelegramBotToken)); botToken != "" {
		bot, err := telegram.New(botToken, &monitorCore)
		if err != nil {
			log.Fatalf("telegram bot failed to init: %v", err)
		}

		liveInterval, err := time.ParseDuration(
			common.GetEnvOr(common.EnvKeyHMLiveUpdateInterval, "15s"))
		if err != nil {
			log.Fatal("Invalid HM_LIVE_UPDATE_INTERVAL, should be a duration like 15s")
		}
		bot.LiveUpdateInterval = liveInterval

		monitorCore.Chat = bot
		go bot.Run(ctx)
		go bot.RunLiveUpdater(ctx)

		logger.Info("Telegram bot started",
			zap.Duration("live_update_interval", liveInterval))
	} else {
		logger.Warn("TELEGRAM_BOT_TOKEN not set, chat front end is disabled")
	}

	var historyReader history.SeriesReader
	if influxURL := strings.TrimSpace(os.Getenv(common.EnvKeyInfluxURL)); influxURL != "" {
		historyReader = history.NewReader(
			influxURL,
			os.Getenv(common.EnvKeyInfluxToken),
			os.Getenv(common.EnvKeyInfluxOrg),
			os.Getenv(common.EnvKeyInfluxBucket),
		)
		logger.Info("History reader connected to " + influxURL)
	} else {
		logger.Warn("INFLUX_URL not set, history queries serve empty series")
	}

	var busClient *bus.Client
	if mqttHost := strings.TrimSpace(os.Getenv(common.EnvKeyMQTTHost)); mqttHost != "" {
		listener := bus.Listener{Monitor: &monitorCore}
		busClient = bus.NewClient(bus.Config{
			Host:     mqttHost,
			Port:     common.GetEnvOr(common.EnvKeyMQTTPort, "1883"),
			Username: os.Getenv(common.EnvKeyMQTTUsername),
			Password: os.Getenv(common.EnvKeyMQTTPassword),
			ClientID: "home-monitor-" + uuid.NewString()[:8],
		}, listener.SubscribeAll)

		if err := busClient.Connect(); err != nil {
			log.Fatalf("message bus failed to connect: %v", err)
		}
		logger.Info("Message bus connected to " + mqttHost)
	} else {
		logger.Warn("MQTT_HOST not set, telemetry ingestion and controls are disabled")
	}

	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = ":1080"
	}

	logger.Info("Starting HTTP server on port " + httpHostPort)
	rs := &hmHttp.RestfulServer{
		Server:           gin.Default(),
		Monitor:          &monitorCore,
		History:          historyReader,
		RateLimiterStore: monitor.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst)),
	}
	if busClient != nil {
		rs.Publisher = busClient
	}
	rs.Setup()

	logger.Info("http server created with:",
		zap.String("default_limiter",
			fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", defaultRate, defaultBurst)))

	logger.Info("Starting HTTP server on: " + httpHostPort)
	if err := rs.Server.Run(httpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}
