// Package dispatcher owns the armed plate session and feeds decoded alarm
// events into the processing stream.
package dispatcher

import (
	"context"
	"dyzs/hkcamera/alarm"
	"dyzs/hkcamera/concurrent"
	"dyzs/hkcamera/logger"
	"dyzs/hkcamera/metrics"
	"dyzs/hkcamera/model"
	"dyzs/hkcamera/sdk"
	"dyzs/hkcamera/session"
	"errors"
	"fmt"
	"sync"
	"time"
)

const (
	_DEFAULT_REGISTER_INTERVAL = 2000 * time.Millisecond
	_DEFAULT_QUEUE_SIZE        = 64
	_DEFAULT_WORKERS           = 4
)

var ErrDispatcherClosed = errors.New("报警分发器已关闭")

type Options struct {
	RegisterInterval time.Duration
	QueueSize        int
	Workers          int
	//设备未声明编码时使用
	Charset alarm.Charset
}

//报警分发器，作为 stream 的数据源
type AlarmDispatcher struct {
	sync.Mutex
	manager  *session.Manager
	opts     Options
	executor *concurrent.Executor

	queue  chan *model.AlarmEvent
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	closed bool

	emitOnce sync.Once
	worker   *Worker
}

func NewAlarmDispatcher(manager *session.Manager, opts Options) *AlarmDispatcher {
	if opts.RegisterInterval <= 0 {
		opts.RegisterInterval = _DEFAULT_REGISTER_INTERVAL
	}
	if opts.QueueSize <= 0 {
		opts.QueueSize = _DEFAULT_QUEUE_SIZE
	}
	if opts.Workers <= 0 {
		opts.Workers = _DEFAULT_WORKERS
	}
	if opts.Charset == "" {
		opts.Charset = alarm.CharsetGBK
	}
	ad := &AlarmDispatcher{
		manager:  manager,
		opts:     opts,
		executor: concurrent.NewExecutor(opts.Workers),
		queue:    make(chan *model.AlarmEvent, opts.QueueSize),
	}
	ad.ctx, ad.cancel = context.WithCancel(context.Background())
	return ad
}

//stream.Emitter，启动消费协程
func (ad *AlarmDispatcher) Init(emit func(interface{})) error {
	started := false
	ad.emitOnce.Do(func() {
		started = true
		ad.wg.Add(1)
		go ad.consume(emit)
	})
	if !started {
		return errors.New("报警分发器已启动")
	}
	return nil
}

func (ad *AlarmDispatcher) consume(emit func(interface{})) {
	defer ad.wg.Done()
	for {
		select {
		case <-ad.ctx.Done():
			return
		case ev := <-ad.queue:
			metrics.QueueLength.Dec()
			err := ad.executor.Submit(func() {
				emit(ev)
			})
			if err != nil {
				logger.LOG_WARN("【海康报警回调】提交处理失败：", err)
				return
			}
		}
	}
}

//native 回调线程上同步解码，只做非阻塞入队
func (ad *AlarmDispatcher) sink(dec *alarm.Decoder) sdk.MessageCallback {
	return func(msg *sdk.AlarmMessage) bool {
		metrics.AlarmsReceived.WithLabelValues(fmt.Sprintf("0x%x", msg.Command)).Inc()
		ev, err := dec.Decode(msg)
		if err != nil {
			logger.LOG_WARN("【海康报警回调】", err)
			metrics.AlarmsDropped.WithLabelValues("decode").Inc()
			return true
		}
		if ev == nil {
			return true
		}
		ad.enqueue(ev)
		return true
	}
}

func (ad *AlarmDispatcher) enqueue(ev *model.AlarmEvent) {
	select {
	case ad.queue <- ev:
		metrics.QueueLength.Inc()
	default:
		logger.LOG_WARN("【海康报警回调】消息队列满，报警丢弃：", ev.PlateNumber)
		metrics.AlarmsDropped.WithLabelValues("queue_full").Inc()
	}
}

//登录并布防车牌摄像头，成功后替换原会话；失败时原会话保持不变
func (ad *AlarmDispatcher) InitPlateSession(cred model.DeviceCredentials) error {
	ad.Lock()
	defer ad.Unlock()
	if ad.closed {
		return ErrDispatcherClosed
	}
	sess, err := ad.manager.Login(cred)
	if err != nil {
		return err
	}
	if _, err := ad.manager.Arm(sess); err != nil {
		return err
	}
	old := ad.worker
	if old != nil {
		old.stop()
		ad.manager.Teardown(old.sess)
	}
	w := newWorker(ad, sess)
	w.start()
	ad.worker = w
	logger.LOG_INFO("【海康车牌摄像头】布防完成 ", cred.Address(), "，编码：", w.decoder.Charset())
	return nil
}

//当前车牌摄像头地址及是否布防
func (ad *AlarmDispatcher) Status() (device string, armed bool) {
	ad.Lock()
	defer ad.Unlock()
	if ad.worker == nil {
		return "", false
	}
	return ad.worker.sess.Credentials().Address(), ad.worker.sess.State() == session.StateArmed
}

func (ad *AlarmDispatcher) Close() error {
	ad.Lock()
	if ad.closed {
		ad.Unlock()
		return nil
	}
	ad.closed = true
	if ad.worker != nil {
		ad.worker.stop()
		ad.manager.Teardown(ad.worker.sess)
		ad.worker = nil
	}
	ad.Unlock()
	ad.cancel()
	ad.wg.Wait()
	ad.executor.Close()
	return nil
}
