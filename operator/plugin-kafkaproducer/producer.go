package plugin_kafkaproducer

import (
	"dyzs/hkcamera/context"
	"dyzs/hkcamera/logger"
	"dyzs/hkcamera/model"
	"dyzs/hkcamera/operator"
	"dyzs/hkcamera/stream"
	"dyzs/hkcamera/util"
	"strings"
	"sync"
	"time"

	"github.com/Shopify/sarama"
	jsoniter "github.com/json-iterator/go"
)

const NAME = "kafkaproducer"

func init() {
	stream.RegistHandler(NAME, &KafkaProducer{newProducer: newSyncProducer})
}

type KafkaProducer struct {
	sync.Mutex
	Bootstrap     []string
	Topic         string
	kafkaProducer sarama.SyncProducer
	newProducer   func(addrs []string) (sarama.SyncProducer, error)
}

func newSyncProducer(addrs []string) (sarama.SyncProducer, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForLocal
	cfg.Producer.Timeout = 3 * time.Second
	return sarama.NewSyncProducer(addrs, cfg)
}

func (p *KafkaProducer) Init() error {
	logger.LOG_INFO("---------------- kafkaproducer config ----------------")
	logger.LOG_INFO("kafka.bootstrap : " + context.GetString("kafka.bootstrap"))
	logger.LOG_INFO("kafka.topic : " + context.GetString("kafka.topic"))
	logger.LOG_INFO("------------------------------------------------------")
	unConfigKeys := context.IsExsit("kafka.bootstrap", "kafka.topic")
	if len(unConfigKeys) > 0 {
		logger.LOG_WARN("缺少配置：" + strings.Join(unConfigKeys, ",") + "，跳过kafka推送")
		return nil
	}
	p.Bootstrap = strings.Split(strings.Trim(context.GetString("kafka.bootstrap"), " "), ",")
	p.Topic = context.GetString("kafka.topic")
	go p.InitConnection(3)
	return nil
}

func (p *KafkaProducer) InitConnection(retry int) {
	_ = util.Retry(func() error {
		p.Lock()
		defer p.Unlock()
		p.closeProducer()
		syncProducer, err := p.newProducer(p.Bootstrap)
		if err != nil {
			logger.LOG_ERROR("创建同步kafka-producer失败", err)
			return err
		}
		p.kafkaProducer = syncProducer
		return nil
	}, retry, 1*time.Second)
}

func (p *KafkaProducer) producer() sarama.SyncProducer {
	p.Lock()
	defer p.Unlock()
	return p.kafkaProducer
}

func (p *KafkaProducer) Handle(data interface{}, next func(interface{})) {
	ev, ok := operator.AlarmEvent(NAME, data)
	if !ok {
		return
	}
	if rec, ok := operator.PlateRecord(ev); ok && p.Topic != "" {
		p.send(rec)
	}
	next(ev)
}

func (p *KafkaProducer) send(rec *model.PlateRecord) {
	value, err := jsoniter.Marshal(rec)
	if err != nil {
		logger.LOG_WARN("车牌记录转换json失败：", err)
		return
	}
	msg := &sarama.ProducerMessage{
		Topic: p.Topic,
		Key:   sarama.StringEncoder(rec.DeviceIP),
		Value: sarama.ByteEncoder(value),
	}
	err = util.Retry(func() error {
		producer := p.producer()
		if producer == nil {
			p.InitConnection(1)
			producer = p.producer()
		}
		if producer == nil {
			return sarama.ErrNotConnected
		}
		_, _, err := producer.SendMessage(msg)
		if err != nil {
			//发送异常、重连
			p.InitConnection(1)
		}
		return err
	}, 3, 1*time.Second)
	if err != nil {
		logger.LOG_ERROR("kafka发送车牌记录失败：", err)
		return
	}
	logger.LOG_DEBUG("kafkaproducer send msg：", len(value))
}

func (p *KafkaProducer) closeProducer() {
	if p.kafkaProducer != nil {
		err := p.kafkaProducer.Close()
		if err != nil {
			logger.LOG_WARN("关闭kafka生产者异常", err)
		}
		p.kafkaProducer = nil
	}
}

func (p *KafkaProducer) Close() error {
	p.Lock()
	defer p.Unlock()
	p.closeProducer()
	return nil
}
