package mongo

import (
	"dyzs/hkcamera/constants"
	"dyzs/hkcamera/model"
	"regexp"

	"github.com/globalsign/mgo"
	"github.com/globalsign/mgo/bson"
)

func InsertPlate(r *model.PlateRecord) error {
	clt, err := Dataset(constants.MONGO_COLLECTION_PLATE)
	if err != nil {
		return err
	}
	defer clt.Database.Session.Close()
	return clt.Insert(r)
}

//按接收时间倒序，deviceIp 为空时不过滤
func FindPlates(q PlateQuery) ([]*model.PlateRecord, error) {
	clt, err := Dataset(constants.MONGO_COLLECTION_PLATE)
	if err != nil {
		return nil, err
	}
	defer clt.Database.Session.Close()
	records := make([]*model.PlateRecord, 0)
	err = clt.Find(q.selector()).Sort("-receiveTime").Skip(q.Skip).Limit(q.limit()).All(&records)
	if err == mgo.ErrNotFound {
		err = nil
	}
	return records, err
}

type PlateQuery struct {
	DeviceIP    string
	PlateNumber string
	Skip        int
	Limit       int
}

func (q PlateQuery) limit() int {
	if q.Limit <= 0 || q.Limit > 500 {
		return 50
	}
	return q.Limit
}

func (q PlateQuery) selector() bson.M {
	m := bson.M{}
	if q.DeviceIP != "" {
		m["deviceIp"] = q.DeviceIP
	}
	if q.PlateNumber != "" {
		m["plateNumber"] = bson.M{"$regex": bson.RegEx{Pattern: regexp.QuoteMeta(q.PlateNumber)}}
	}
	return m
}
