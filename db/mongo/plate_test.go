package mongo

import (
	"testing"

	"github.com/globalsign/mgo/bson"
)

func TestPlateQuerySelector(t *testing.T) {
	q := PlateQuery{DeviceIP: "10.0.0.1", PlateNumber: "A1.3"}
	m := q.selector()
	if m["deviceIp"] != "10.0.0.1" {
		t.Errorf("deviceIp = %v", m["deviceIp"])
	}
	re := m["plateNumber"].(bson.M)["$regex"].(bson.RegEx)
	if re.Pattern != `A1\.3` {
		t.Errorf("pattern = %q", re.Pattern)
	}
	if len((PlateQuery{}).selector()) != 0 {
		t.Error("empty query should not filter")
	}
}

func TestPlateQueryLimit(t *testing.T) {
	for _, tt := range []struct{ in, want int }{{0, 50}, {-1, 50}, {10, 10}, {1000, 50}} {
		if got := (PlateQuery{Limit: tt.in}).limit(); got != tt.want {
			t.Errorf("limit(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
