package metrics

import (
	"context"
	"net/http"
	"strings"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"

	"github.com/gridshed/gridshed/core/logger"
	coremetrics "github.com/gridshed/gridshed/core/metrics"
	infralogger "github.com/gridshed/gridshed/infra/logger"
)

// InfluxSink writes plan runs to an InfluxDB instance using the official
// client.
type InfluxSink struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	log      logger.Logger
}

// NewInfluxSink creates a new sink configured for the given InfluxDB
// endpoint.
func NewInfluxSink(url, token, org, bucket string) *InfluxSink {
	base := strings.TrimSuffix(url, "/api/v2/write")
	client := influxdb2.NewClientWithOptions(base, token,
		influxdb2.DefaultOptions().SetHTTPClient(&http.Client{Timeout: 5 * time.Second}))
	return &InfluxSink{
		client:   client,
		writeAPI: client.WriteAPIBlocking(org, bucket),
		log:      infralogger.New("influx-sink"),
	}
}

// NewInfluxSinkWithFallback tries to ping the InfluxDB instance and
// returns a NopSink if the health check fails.
func NewInfluxSinkWithFallback(cfg coremetrics.Config) coremetrics.PlanSink {
	sink := NewInfluxSink(cfg.InfluxURL, cfg.InfluxToken, cfg.InfluxOrg, cfg.InfluxBucket)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	health, err := sink.client.Health(ctx)
	if err != nil || health.Status != "pass" {
		if err != nil {
			sink.log.Errorf("influx health check error: %v", err)
		} else {
			sink.log.Errorf("influx health status: %s", health.Status)
		}
		sink.client.Close()
		return coremetrics.NopSink{}
	}
	return sink
}

// RecordPlanRun writes the run summary as one line protocol point.
func (s *InfluxSink) RecordPlanRun(rec coremetrics.PlanRunRecord) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	p := influxdb2.NewPoint("plan_run",
		map[string]string{
			"run_id":   rec.RunID,
			"shortage": strconvBool(rec.Shortage),
		},
		map[string]interface{}{
			"budget_kwh":     rec.BudgetKWh,
			"required_kwh":   rec.RequiredKWh,
			"scaling_factor": rec.ScalingFactor,
			"shed_kwh":       rec.ShedKWh,
			"unserved_kwh":   rec.UnservedKWh,
			"cuts":           rec.Cuts,
			"duration_s":     rec.Duration.Seconds(),
		},
		rec.GeneratedAt,
	)
	if err := s.writeAPI.WritePoint(ctx, p); err != nil {
		s.log.Errorf("write plan run: %v", err)
		return err
	}
	return nil
}

// Close shuts down the underlying client.
func (s *InfluxSink) Close() { s.client.Close() }

func strconvBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
