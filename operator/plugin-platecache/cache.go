package plugin_platecache

import (
	"dyzs/hkcamera/constants"
	"dyzs/hkcamera/context"
	"dyzs/hkcamera/logger"
	"dyzs/hkcamera/model"
	"dyzs/hkcamera/operator"
	"dyzs/hkcamera/redis"
	"dyzs/hkcamera/stream"
	"sort"
	"time"
)

const NAME = "platecache"

func init() {
	stream.RegistHandler(NAME, &PlateCache{})
}

//车牌缓存：设备最新车牌 + 最近车牌列表
type PlateCache struct {
	cache *redis.Cache
}

func (pc *PlateCache) Init() error {
	addr := context.GetString("redis.addr")
	expire := time.Duration(context.GetInt64("redis.expire")) * time.Second
	logger.LOG_INFO("---------------- platecache config ----------------")
	logger.LOG_INFO("redis.addr : " + addr)
	logger.LOG_INFO("redis.expire : ", expire)
	logger.LOG_INFO("---------------------------------------------------")
	if len(context.IsExsit("redis.addr")) > 0 {
		logger.LOG_WARN("未配置redis，跳过车牌缓存")
		return nil
	}
	pc.cache = redis.NewRedisCache(0, addr, expire)
	if err := pc.cache.Ping(); err != nil {
		logger.LOG_WARN("redis连接失败，稍后重试：", err)
	}
	Shared = pc.cache
	return nil
}

func (pc *PlateCache) Handle(data interface{}, next func(interface{})) {
	ev, ok := operator.AlarmEvent(NAME, data)
	if !ok {
		return
	}
	if rec, ok := operator.PlateRecord(ev); ok && pc.cache != nil {
		pc.save(rec)
	}
	next(ev)
}

func (pc *PlateCache) save(rec *model.PlateRecord) {
	if rec.DeviceIP != "" {
		if err := pc.cache.HSet(constants.REDIS_KEY_LATEST_PLATE, rec.DeviceIP, rec); err != nil {
			logger.LOG_WARN("车牌缓存入redis异常，", err)
		}
	}
	if err := pc.cache.ListPushTrim(constants.REDIS_KEY_RECENT_PLATES, rec, constants.REDIS_RECENT_PLATES_MAX); err != nil {
		logger.LOG_WARN("车牌缓存入redis异常，", err)
	}
}

func (pc *PlateCache) Close() error {
	if pc.cache != nil {
		return pc.cache.Close()
	}
	return nil
}

//供接口查询使用，未配置时为空
var Shared *redis.Cache

//各设备最新车牌，按接收时间倒序
func Latest(c *redis.Cache) ([]*model.PlateRecord, error) {
	records := make([]*model.PlateRecord, 0)
	err := c.HGetAll(constants.REDIS_KEY_LATEST_PLATE, func(field string, data []byte) error {
		r := &model.PlateRecord{}
		if err := redis.Deserialization(data, r); err != nil {
			return err
		}
		records = append(records, r)
		return nil
	})
	sort.Slice(records, func(i, j int) bool {
		return records[i].ReceiveTime > records[j].ReceiveTime
	})
	return records, err
}

//最近 n 条车牌
func Recent(c *redis.Cache, n int) ([]*model.PlateRecord, error) {
	if n <= 0 || n > constants.REDIS_RECENT_PLATES_MAX {
		n = constants.REDIS_RECENT_PLATES_MAX
	}
	raw, err := c.ListRange(constants.REDIS_KEY_RECENT_PLATES, 0, n-1)
	if err != nil {
		return nil, err
	}
	records := make([]*model.PlateRecord, 0, len(raw))
	for _, b := range raw {
		r := &model.PlateRecord{}
		if err := redis.Deserialization(b, r); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, nil
}
