package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"go.uber.org/zap"
)

func getTestMetrics() *Metrics {
	return NewWithRegistry(prometheus.NewRegistry(), zap.NewNop())
}

func TestIncrementProjectCreated(t *testing.T) {
	m := getTestMetrics()

	initialValue := getCounterValue(t, m.ProjectCreatedTotal)
	m.IncrementProjectCreated()

	newValue := getCounterValue(t, m.ProjectCreatedTotal)
	if newValue <= initialValue {
		t.Errorf("Expected counter to increment, got %f -> %f", initialValue, newValue)
	}
}

func TestIncrementLaunchCompleted(t *testing.T) {
	m := getTestMetrics()

	initialValue := getCounterValue(t, m.LaunchCompletedTotal)
	m.IncrementLaunchCompleted()

	newValue := getCounterValue(t, m.LaunchCompletedTotal)
	if newValue <= initialValue {
		t.Errorf("Expected counter to increment, got %f -> %f", initialValue, newValue)
	}
}

func TestSetProjectsActive(t *testing.T) {
	m := getTestMetrics()

	tests := []struct {
		name  string
		count int64
	}{
		{"zero projects", 0},
		{"one project", 1},
		{"multiple projects", 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m.SetProjectsActive(tt.count)
			value := getGaugeValue(t, m.ProjectsActive)
			if value != float64(tt.count) {
				t.Errorf("Expected gauge value %d, got %f", tt.count, value)
			}
		})
	}
}

func TestBusinessMetricsIntegration(t *testing.T) {
	m := getTestMetrics()

	m.SetProjectsActive(10)
	m.SetProjectsLaunched(3)
	m.SetTasksPending(7)
	m.SetMediaTotal(20)

	if getGaugeValue(t, m.ProjectsLaunched) != 3 {
		t.Error("Expected ProjectsLaunched to be 3")
	}
	if getGaugeValue(t, m.TasksPending) != 7 {
		t.Error("Expected TasksPending to be 7")
	}
	if getGaugeValue(t, m.MediaTotal) != 20 {
		t.Error("Expected MediaTotal to be 20")
	}

	initialArchived := getCounterValue(t, m.ProjectArchivedTotal)
	initialUploaded := getCounterValue(t, m.MediaUploadedTotal)
	initialTasks := getCounterValue(t, m.TaskCreatedTotal)

	m.IncrementProjectArchived()
	m.IncrementMediaUploaded()
	m.IncrementMediaUploaded()
	m.IncrementTaskCreated()

	if getCounterValue(t, m.ProjectArchivedTotal) <= initialArchived {
		t.Error("Expected ProjectArchivedTotal to increment")
	}
	if getCounterValue(t, m.MediaUploadedTotal) != initialUploaded+2 {
		t.Error("Expected MediaUploadedTotal to increment twice")
	}
	if getCounterValue(t, m.TaskCreatedTotal) <= initialTasks {
		t.Error("Expected TaskCreatedTotal to increment")
	}
}

// Helper function to get counter value
func getCounterValue(t *testing.T, counter prometheus.Counter) float64 {
	t.Helper()
	metric := &dto.Metric{}
	if err := counter.Write(metric); err != nil {
		t.Fatalf("Failed to write counter metric: %v", err)
	}
	return metric.Counter.GetValue()
}

// Helper function to get gauge value
func getGaugeValue(t *testing.T, gauge prometheus.Gauge) float64 {
	t.Helper()
	metric := &dto.Metric{}
	if err := gauge.Write(metric); err != nil {
		t.Fatalf("Failed to write gauge metric: %v", err)
	}
	return metric.Gauge.GetValue()
}
