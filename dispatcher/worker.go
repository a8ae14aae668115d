package dispatcher

import (
	"context"
	"dyzs/hkcamera/alarm"
	"dyzs/hkcamera/logger"
	"dyzs/hkcamera/metrics"
	"dyzs/hkcamera/session"
	"time"
)

//布防会话执行器，周期注册报警回调
type Worker struct {
	ad      *AlarmDispatcher
	sess    *session.Session
	decoder *alarm.Decoder

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

func newWorker(ad *AlarmDispatcher, sess *session.Session) *Worker {
	charset := alarm.CharsetOf(sess.Device(), ad.opts.Charset)
	return &Worker{
		ad:      ad,
		sess:    sess,
		decoder: alarm.NewDecoder(charset),
		done:    make(chan struct{}),
	}
}

//执行器启动
func (w *Worker) start() {
	w.ctx, w.cancel = context.WithCancel(w.ad.ctx)
	go w.loopRegister()
}

//设备断线重连后回调可能失效，定时重新注册
func (w *Worker) loopRegister() {
	defer close(w.done)
	ticker := time.NewTicker(w.ad.opts.RegisterInterval)
	defer ticker.Stop()
	cb := w.ad.sink(w.decoder)
	for {
		if w.ctx.Err() != nil {
			return
		}
		err := w.ad.manager.RegisterCallback(w.sess, cb)
		if err != nil {
			logger.LOG_WARN("【海康报警回调】注册回调失败：", err)
		} else {
			metrics.CallbackRegistrations.Inc()
		}
		select {
		case <-w.ctx.Done():
			logger.LOG_INFO("【海康报警回调】停止注册回调：", w.sess.Credentials().Address())
			return
		case <-ticker.C:
		}
	}
}

//停止注册并等待循环退出，不注销回调
func (w *Worker) stop() {
	if w.cancel != nil {
		w.cancel()
		<-w.done
	}
}
