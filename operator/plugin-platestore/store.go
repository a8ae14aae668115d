package plugin_platestore

import (
	"dyzs/hkcamera/constants"
	"dyzs/hkcamera/context"
	"dyzs/hkcamera/db/mongo"
	"dyzs/hkcamera/logger"
	"dyzs/hkcamera/model"
	"dyzs/hkcamera/operator"
	"dyzs/hkcamera/stream"
	"dyzs/hkcamera/util"
	"time"
)

const NAME = "platestore"

func init() {
	stream.RegistHandler(NAME, &stream.HandlerWrapper{
		InitFunc:   Init,
		HandleFunc: Handle,
		CloseFunc:  Close,
	})
}

var (
	enabled bool
	insert  = mongo.InsertPlate
)

func Init() error {
	logger.LOG_INFO("---------------- platestore config ----------------")
	logger.LOG_INFO("mongodb.db : " + context.GetString("mongodb.db"))
	logger.LOG_INFO("---------------------------------------------------")
	enabled = mongo.Configured()
	if !enabled {
		logger.LOG_WARN("未配置mongodb，跳过车牌入库")
		return nil
	}
	//连接失败不影响启动，入库时重连
	go func() {
		clt, err := mongo.Dataset(constants.MONGO_COLLECTION_PLATE)
		if err != nil {
			logger.LOG_WARN("mongodb连接失败：", err)
			return
		}
		clt.Database.Session.Close()
	}()
	return nil
}

func Handle(data interface{}, next func(interface{})) {
	ev, ok := operator.AlarmEvent(NAME, data)
	if !ok {
		return
	}
	if rec, ok := operator.PlateRecord(ev); ok && enabled {
		store(rec)
	}
	next(ev)
}

func store(rec *model.PlateRecord) {
	err := util.Retry(func() error {
		return insert(rec)
	}, 3, time.Second)
	if err != nil {
		logger.LOG_ERROR("车牌记录入库失败：", rec.PlateNumber, err)
	}
}

func Close() error {
	mongo.Close()
	return nil
}
