package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"math/rand"
	"net/http"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
)

var maxDevices int = 1000
var httpHostPort string = "127.0.0.1:1080"
var mqttBrokerURL string = "tcp://127.0.0.1:1883"

var mqttClient mqtt.Client

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

var statusMetrics = []string{"fire", "light", "temperature", "apparent_temperature", "humidity"}

func main() {
	deviceIDs := make([]string, maxDevices)
	for i := range maxDevices {
		deviceIDs[i] = uuid.NewString()
	}
	fmt.Printf("generated %v device IDs\n", maxDevices)

	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", httpHostPort))
	if err != nil {
		log.Fatal("Failed to connect to HTTP server:", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatal("HTTP server not available")
	}

	fmt.Printf("http server verified\n")

	opts := mqtt.NewClientOptions().
		AddBroker(mqttBrokerURL).
		SetClientID("sensor1k-" + uuid.NewString()[:8])
	mqttClient = mqtt.NewClient(opts)
	if token := mqttClient.Connect(); !token.WaitTimeout(4*time.Second) || token.Error() != nil {
		log.Fatal("Failed to connect to MQTT broker:", token.Error())
	}
	defer mqttClient.Disconnect(250)

	fmt.Printf("mqtt broker verified and connected\n")

	var startTime time.Time
	var usedTime time.Duration

	startTime = time.Now()
	wg := sync.WaitGroup{}
	for i := range maxDevices {
		wg.Add(1)
		go func() {
			registerDevice(deviceIDs[i], i)
			fmt.Printf("\rregistered device %v", i)
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\rregistered %v devices: used time=%v seconds, throughput=%v action/second\n",
		maxDevices, usedTime.Seconds(), float64(maxDevices)/usedTime.Seconds(),
	)

	startTime = time.Now()
	wg = sync.WaitGroup{}
	for i := range maxDevices {
		wg.Add(1)
		go func() {
			doAction(deviceIDs[i])
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\n\rdid actions for %v devices: used time=%v seconds, throughput=%v action/second\n",
		maxDevices, usedTime.Seconds(), float64(maxDevices*3)/usedTime.Seconds(),
	)
}

func flipCoin() bool {
	return rnd.Int31n(100000)%2 == 0
}

func rndFloat64(min, max float64, decimal int) float64 {
	val := min + rnd.Float64()*(max-min)
	multiplier := float64(math.Pow10(decimal))
	return float64(math.Round(float64(val)*float64(multiplier))) / multiplier
}

func registerDevice(deviceID string, n int) {
	payload := map[string]string{
		"name": fmt.Sprintf("bench-sensor-%v", n),
		"mac":  deviceID,
	}

	jsonData, _ := json.Marshal(payload)
	resp, err := http.Post(fmt.Sprintf("http://%s/devices", httpHostPort), "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		panic(fmt.Sprintf("register device %v failed: %v", deviceID, resp.StatusCode))
	}
}

func doAction(deviceID string) {
	actions := []func(){
		genPublishReadingsAction(deviceID),
		genPublishBoolsAction(deviceID),
		genGetStatusAction(deviceID),
	}
	actionNames := []string{
		"PublishReadings",
		"PublishBools",
		"GetStatus",
	}
	rnd.Shuffle(len(actions), func(i, j int) {
		actions[i], actions[j] = actions[j], actions[i]
		actionNames[i], actionNames[j] = actionNames[j], actionNames[i]
	})
	for index, action := range actions {
		action()
		fmt.Printf("\rexecuted action %v for device %v", actionNames[index], deviceID)
		time.Sleep(time.Duration(100+rnd.Int31n(1000)) * time.Millisecond)
	}
}

func publishReading(deviceID, metric string, value any) {
	payload, _ := json.Marshal(map[string]any{"value": value})
	topic := fmt.Sprintf("unishare/sensors/%s/%s", deviceID, metric)
	token := mqttClient.Publish(topic, 1, false, payload)
	if !token.WaitTimeout(5*time.Second) || token.Error() != nil {
		fmt.Printf("\nerror publishing %v: %v\n", topic, token.Error())
	}
}

func genPublishReadingsAction(deviceID string) func() {
	return func() {
		t := rndFloat64(10.0, 40.0, 2)
		publishReading(deviceID, "temperature", t)
		publishReading(deviceID, "apparent_temperature", rndFloat64(t-2.0, t+5.0, 2))
		publishReading(deviceID, "humidity", rndFloat64(20.0, 90.0, 0))
	}
}

func genPublishBoolsAction(deviceID string) func() {
	return func() {
		// flame stays false, a true reading would fan out alarm calls
		publishReading(deviceID, "flame", false)
		publishReading(deviceID, "light", flipCoin())
	}
}

func genGetStatusAction(deviceID string) func() {
	return func() {
		metric := statusMetrics[rnd.Intn(len(statusMetrics))]

		resp, err := http.Get(fmt.Sprintf("http://%s/status/%s/%s", httpHostPort, deviceID, metric))
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
			return
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			fmt.Printf("\nresponse status code != 200: %v\n", resp)
		}
	}
}
