package alarm

import "dyzs/hkcamera/model"

//SDK 压缩时间，年份以2000为基准，不做日历校验
func ParsePackedTime(v uint32) model.PackedTime {
	return model.PackedTime{
		Year:   int(v>>26) + 2000,
		Month:  int((v >> 22) & 0xF),
		Day:    int((v >> 17) & 0x1F),
		Hour:   int((v >> 12) & 0x1F),
		Minute: int((v >> 6) & 0x3F),
		Second: int(v & 0x3F),
	}
}

func PackTime(t model.PackedTime) uint32 {
	return uint32(t.Year-2000)<<26 |
		uint32(t.Month&0xF)<<22 |
		uint32(t.Day&0x1F)<<17 |
		uint32(t.Hour&0x1F)<<12 |
		uint32(t.Minute&0x3F)<<6 |
		uint32(t.Second&0x3F)
}
