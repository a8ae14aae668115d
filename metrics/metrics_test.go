package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestSessionCollector(t *testing.T) {
	armed := true
	c := &SessionCollector{Status: func() (string, bool) { return "192.168.1.64:8000", armed }}
	reg := prometheus.NewRegistry()
	reg.MustRegister(c)

	want := `
# HELP hkcamera_plate_session_armed Whether the plate camera session is armed.
# TYPE hkcamera_plate_session_armed gauge
hkcamera_plate_session_armed{device="192.168.1.64:8000"} 1
`
	if err := testutil.GatherAndCompare(reg, strings.NewReader(want), "hkcamera_plate_session_armed"); err != nil {
		t.Error(err)
	}

	c.Status = func() (string, bool) { return "", false }
	if n := testutil.CollectAndCount(c); n != 0 {
		t.Errorf("metrics without device = %d", n)
	}
}

func TestCounters(t *testing.T) {
	before := testutil.ToFloat64(AlarmsDropped.WithLabelValues("queue_full"))
	AlarmsDropped.WithLabelValues("queue_full").Inc()
	if got := testutil.ToFloat64(AlarmsDropped.WithLabelValues("queue_full")); got != before+1 {
		t.Errorf("dropped = %v, want %v", got, before+1)
	}
}
