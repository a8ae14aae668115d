package model

type PictureRef struct {
	Kind   string `json:"kind" bson:"kind" msgpack:"kind"`
	Path   string `json:"path" bson:"path" msgpack:"path"`
	Length uint32 `json:"length" bson:"length" msgpack:"length"`
}

//车牌识别记录，用于缓存、入库及推送
type PlateRecord struct {
	ID            string       `json:"id" bson:"id" msgpack:"id"`
	Command       string       `json:"command" bson:"command" msgpack:"command"`
	DeviceIP      string       `json:"deviceIp" bson:"deviceIp" msgpack:"deviceIp"`
	DeviceSerial  string       `json:"deviceSerial" bson:"deviceSerial" msgpack:"deviceSerial"`
	VehicleType   string       `json:"vehicleType" bson:"vehicleType" msgpack:"vehicleType"`
	PlateColor    string       `json:"plateColor" bson:"plateColor" msgpack:"plateColor"`
	PlateProvince string       `json:"plateProvince" bson:"plateProvince" msgpack:"plateProvince"`
	PlateNumber   string       `json:"plateNumber" bson:"plateNumber" msgpack:"plateNumber"`
	Speed         uint16       `json:"speed" bson:"speed" msgpack:"speed"`
	SiteID        string       `json:"siteId" bson:"siteId" msgpack:"siteId"`
	IllegalTime   string       `json:"illegalTime,omitempty" bson:"illegalTime,omitempty" msgpack:"illegalTime,omitempty"`
	Pictures      []PictureRef `json:"pictures" bson:"pictures" msgpack:"pictures"`
	ReceiveTime   int64        `json:"receiveTime" bson:"receiveTime" msgpack:"receiveTime"`
}

func NewPlateRecord(id string, ev *AlarmEvent) *PlateRecord {
	r := &PlateRecord{
		ID:            id,
		Command:       ev.Command.String(),
		DeviceIP:      ev.DeviceIP,
		DeviceSerial:  ev.DeviceSerial,
		VehicleType:   ev.VehicleType.String(),
		PlateColor:    ev.PlateColor,
		PlateProvince: ev.PlateProvince,
		PlateNumber:   ev.PlateNumber,
		Speed:         ev.Speed,
		SiteID:        ev.SiteID,
		Pictures:      make([]PictureRef, 0, len(ev.Pictures)),
		ReceiveTime:   ev.ReceiveTime,
	}
	if !ev.IllegalTime.IsZero() {
		r.IllegalTime = ev.IllegalTime.String()
	}
	for _, p := range ev.Pictures {
		//未写盘的图片不记录
		if p.Path == "" {
			continue
		}
		r.Pictures = append(r.Pictures, PictureRef{
			Kind:   p.Kind.String(),
			Path:   p.Path,
			Length: p.Length,
		})
	}
	return r
}
