package plugin_mqttpublish

import (
	"dyzs/hkcamera/model"
	"strings"
	"testing"
)

func TestClientOptions(t *testing.T) {
	opts := clientOptions("127.0.0.1:1883", "")
	if len(opts.Servers) != 1 || opts.Servers[0].String() != "tcp://127.0.0.1:1883" {
		t.Errorf("servers = %v", opts.Servers)
	}
	if !strings.HasPrefix(opts.ClientID, "hkcamera-") {
		t.Errorf("client id = %q", opts.ClientID)
	}
	opts = clientOptions("ssl://broker:8883", "gate-1")
	if opts.Servers[0].Scheme != "ssl" || opts.ClientID != "gate-1" {
		t.Errorf("opts = %v %q", opts.Servers, opts.ClientID)
	}
}

func TestNotConfigured(t *testing.T) {
	m := &MqttPublish{}
	if err := m.Init(); err != nil {
		t.Fatal(err)
	}
	called := false
	m.Handle(&model.AlarmEvent{Command: model.CommandPlateResult}, func(interface{}) { called = true })
	if !called {
		t.Error("next not called")
	}
	if err := m.Close(); err != nil {
		t.Fatal(err)
	}
}
