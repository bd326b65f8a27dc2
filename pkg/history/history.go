// Package history reads back time series the logging pipeline writes
// to InfluxDB. The core never writes here; it only serves read
// requests for the dashboard charts.
package history

import (
	"context"
	"fmt"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"go.uber.org/zap"
	"unishare.xyz/home-monitor/pkg/common"
	"unishare.xyz/home-monitor/pkg/models"
)

// Point is one sample of a device metric series.
type Point struct {
	Time  time.Time `json:"time"`
	Value any       `json:"value"`
}

// SeriesReader is what the HTTP layer consumes.
type SeriesReader interface {
	Series(ctx context.Context, deviceID string, kind models.MetricKind) ([]Point, error)
}

type Reader struct {
	queryAPI api.QueryAPI
	bucket   string
}

func NewReader(url, token, org, bucket string) *Reader {
	logger := common.GetLoggerWith(common.LoggerNameHistory)
	logger.Debug("Connecting to InfluxDB", zap.String("url", url), zap.String("bucket", bucket))

	client := influxdb2.NewClient(url, token)
	return &Reader{
		queryAPI: client.QueryAPI(org),
		bucket:   bucket,
	}
}

// Series returns the last hour of samples for one device metric,
// oldest first. The measurement is the device hardware address, the
// field the metric's topic leaf, matching what the logging daemon
// writes.
func (r *Reader) Series(ctx context.Context, deviceID string, kind models.MetricKind) ([]Point, error) {
	logger := common.GetLoggerWith(common.LoggerNameHistory)

	flux := fmt.Sprintf(
		`from(bucket: %q) |> range(start: -60m, stop: now()) |> filter(fn: (r) => r["_measurement"] == %q) |> filter(fn: (r) => r["_field"] == %q) |> keep(columns: ["_time", "_value"])`,
		r.bucket, deviceID, kind.TopicLeaf())

	result, err := r.queryAPI.Query(ctx, flux)
	if err != nil {
		return nil, err
	}

	points := []Point{}
	for result.Next() {
		record := result.Record()
		points = append(points, Point{
			Time:  record.Time(),
			Value: record.Value(),
		})
	}
	if err := result.Err(); err != nil {
		return nil, err
	}

	logger.Debug("History query finished",
		zap.String("device", deviceID),
		zap.String("kind", string(kind)),
		zap.Int("rows", len(points)))

	return points, nil
}
