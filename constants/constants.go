package constants

//redis
const (
	//设备最新车牌 hash，field 为设备IP
	REDIS_KEY_LATEST_PLATE = "hkcamera:plate:latest"
	//最近车牌列表
	REDIS_KEY_RECENT_PLATES = "hkcamera:plate:recent"
	REDIS_RECENT_PLATES_MAX = 100
)

//mongodb
const (
	MONGO_COLLECTION_PLATE = "plate_record"
)
