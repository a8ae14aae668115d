package plugin_platepush

import (
	"dyzs/hkcamera/logger"
	"dyzs/hkcamera/operator"
	"dyzs/hkcamera/stream"

	jsoniter "github.com/json-iterator/go"
)

const NAME = "platepush"

//接口层注册 /hk/ws 时使用
var DefaultHub = NewHub()

func init() {
	stream.RegistHandler(NAME, &PlatePush{hub: DefaultHub})
}

type PlatePush struct {
	hub *Hub
}

func (p *PlatePush) Init() error {
	return nil
}

func (p *PlatePush) Handle(data interface{}, next func(interface{})) {
	ev, ok := operator.AlarmEvent(NAME, data)
	if !ok {
		return
	}
	if rec, ok := operator.PlateRecord(ev); ok && p.hub.Count() > 0 {
		bs, err := jsoniter.Marshal(rec)
		if err != nil {
			logger.LOG_WARN("车牌记录转换json失败：", err)
		} else {
			p.hub.Broadcast(bs)
		}
	}
	next(ev)
}

func (p *PlatePush) Close() error {
	p.hub.Close()
	return nil
}
