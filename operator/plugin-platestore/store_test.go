package plugin_platestore

import (
	"dyzs/hkcamera/model"
	"errors"
	"testing"
)

func TestHandle(t *testing.T) {
	var stored []*model.PlateRecord
	calls := 0
	insert = func(r *model.PlateRecord) error {
		calls++
		if calls == 1 {
			return errors.New("no reachable servers")
		}
		stored = append(stored, r)
		return nil
	}
	enabled = true
	defer func() { enabled = false }()

	ev := &model.AlarmEvent{ID: "abc", Command: model.CommandPlateResult, PlateNumber: "A1234"}
	called := false
	Handle(ev, func(interface{}) { called = true })
	if !called {
		t.Error("next not called")
	}
	if len(stored) != 1 || stored[0].ID != "abc" || stored[0].PlateNumber != "A1234" {
		t.Errorf("stored = %+v", stored)
	}

	//非车牌事件不入库
	Handle(&model.AlarmEvent{Command: model.CommandVehicleControlAlarm}, func(interface{}) {})
	if len(stored) != 1 {
		t.Errorf("stored %d records", len(stored))
	}
}
