package plugin_mqttpublish

import (
	"dyzs/hkcamera/context"
	"dyzs/hkcamera/logger"
	"dyzs/hkcamera/operator"
	"dyzs/hkcamera/stream"
	"dyzs/hkcamera/util/uuid"
	"errors"
	"fmt"
	"strings"
	"time"

	MQTT "github.com/eclipse/paho.mqtt.golang"
	jsoniter "github.com/json-iterator/go"
)

const NAME = "mqttpublish"

const _PUBLISH_TIMEOUT = 3 * time.Second

func init() {
	stream.RegistHandler(NAME, &MqttPublish{})
}

type MqttPublish struct {
	Topic  string
	QoS    byte
	client MQTT.Client
}

func (m *MqttPublish) Init() error {
	broker := context.GetString("mqtt.broker")
	logger.LOG_INFO("---------------- mqttpublish config ----------------")
	logger.LOG_INFO("mqtt.broker : " + broker)
	logger.LOG_INFO("mqtt.topic : " + context.GetString("mqtt.topic"))
	logger.LOG_INFO("----------------------------------------------------")
	unConfigKeys := context.IsExsit("mqtt.broker", "mqtt.topic")
	if len(unConfigKeys) > 0 {
		logger.LOG_WARN("缺少配置：" + strings.Join(unConfigKeys, ",") + "，跳过mqtt推送")
		return nil
	}
	m.Topic = context.GetString("mqtt.topic")
	m.QoS = byte(context.GetInt("mqtt.qos"))
	m.client = MQTT.NewClient(clientOptions(broker, context.GetString("mqtt.clientId")))
	//断线由客户端自动重连
	token := m.client.Connect()
	go func() {
		if token.WaitTimeout(10*time.Second) && token.Error() == nil {
			logger.LOG_INFO("Connect to MQTT Success：", broker)
			return
		}
		logger.LOG_WARN("Connect to MQTT error：", token.Error())
	}()
	return nil
}

func clientOptions(broker, clientID string) *MQTT.ClientOptions {
	if !strings.Contains(broker, "://") {
		broker = fmt.Sprintf("tcp://%s", broker)
	}
	if clientID == "" {
		clientID = "hkcamera-" + uuid.UUIDShort()[:8]
	}
	opts := MQTT.NewClientOptions()
	opts.AddBroker(broker)
	opts.SetClientID(clientID)
	opts.SetKeepAlive(30 * time.Second)
	opts.SetPingTimeout(10 * time.Second)
	opts.SetAutoReconnect(true)
	opts.SetConnectRetry(true)
	opts.SetCleanSession(false)
	return opts
}

func (m *MqttPublish) Handle(data interface{}, next func(interface{})) {
	ev, ok := operator.AlarmEvent(NAME, data)
	if !ok {
		return
	}
	if rec, ok := operator.PlateRecord(ev); ok && m.client != nil {
		payload, err := jsoniter.Marshal(rec)
		if err == nil {
			err = m.publish(payload)
		}
		if err != nil {
			logger.LOG_WARN("mqtt发送车牌记录失败：", err)
		}
	}
	next(ev)
}

func (m *MqttPublish) publish(payload []byte) error {
	token := m.client.Publish(m.Topic, m.QoS, false, payload)
	if !token.WaitTimeout(_PUBLISH_TIMEOUT) {
		return errors.New("mqtt发送超时")
	}
	return token.Error()
}

func (m *MqttPublish) Close() error {
	if m.client != nil && m.client.IsConnected() {
		m.client.Disconnect(250)
	}
	return nil
}
