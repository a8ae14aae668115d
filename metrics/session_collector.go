package metrics

import "github.com/prometheus/client_golang/prometheus"

var sessionUpDesc = prometheus.NewDesc(
	"hkcamera_plate_session_armed", "Whether the plate camera session is armed.", []string{"device"}, nil,
)

//车牌摄像头会话状态，抓取时读取
type SessionCollector struct {
	Status func() (device string, armed bool)
}

func (c *SessionCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- sessionUpDesc
}

func (c *SessionCollector) Collect(ch chan<- prometheus.Metric) {
	device, armed := c.Status()
	if device == "" {
		return
	}
	v := 0.0
	if armed {
		v = 1
	}
	ch <- prometheus.MustNewConstMetric(sessionUpDesc, prometheus.GaugeValue, v, device)
}
