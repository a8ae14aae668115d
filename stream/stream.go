package stream

import (
	"dyzs/hkcamera/logger"
	"errors"
	"time"
)

var handler_map = make(map[string]Handler)

//在 init() 中注册
func RegistHandler(name string, h Handler) {
	handler_map[name] = h
}

func GetHandler(name string) (handler Handler, exsit bool) {
	a, b := handler_map[name]
	return a, b
}

func HandlerNames() []string {
	names := make([]string, 0, len(handler_map))
	for n := range handler_map {
		names = append(names, n)
	}
	return names
}

//数据源，Init 时获得下发函数
type Emitter interface {
	Init(func(interface{})) error
	Close() error
}

//处理环节，调用 next 交给下一环节，不调用则终止
type Handler interface {
	Init() error
	Handle(interface{}, func(interface{}))
	Close() error
}

type Stream struct {
	inited   bool
	running  bool
	emitter  Emitter
	handlers []Handler
}

func (s *Stream) linkHandle(index int, data interface{}) {
	if len(s.handlers) > index {
		h := s.handlers[index]
		h.Handle(data, func(ndata interface{}) {
			s.linkHandle(index+1, ndata)
		})
	}
}

func Build(emitter Emitter, flow []string) (s *Stream, err error) {
	if emitter == nil {
		return nil, errors.New("未定义数据源")
	}
	if len(flow) == 0 {
		return nil, errors.New("未定义流程处理环节")
	}
	myStream := New(emitter)
	for _, name := range flow {
		h, ok := GetHandler(name)
		if !ok {
			return nil, errors.New("未注册的Handler:" + name)
		}
		myStream.Pipe(h)
	}
	return myStream, nil
}

func New(emitter Emitter) *Stream {
	s := &Stream{}
	s.handlers = make([]Handler, 0)
	s.emitter = emitter
	return s
}

func (s *Stream) Pipe(h Handler) *Stream {
	s.handlers = append(s.handlers, h)
	return s
}

func (s *Stream) Init() error {
	var err error
	s.inited = false
	for _, h := range s.handlers {
		err = h.Init()
		if err != nil {
			break
		}
	}
	if err != nil {
		logger.LOG_ERROR("处理流程初始化异常,启动失败！：", err)
	} else {
		s.inited = true
	}
	return err
}

func (s *Stream) Run() error {
	if !s.inited {
		return errors.New("处理流程未初始化")
	}
	err := s.emitter.Init(func(data interface{}) {
		start := time.Now()
		s.linkHandle(0, data)
		logger.LOG_DEBUG("单轮耗时：", time.Since(start))
	})

	if err != nil {
		logger.LOG_ERROR("数据源初始化异常,启动失败！：", err)
		return err
	}
	s.running = true
	return nil
}

func (s *Stream) Running() bool {
	return s.running
}

func (s *Stream) Close() {
	var err error
	if s.emitter != nil {
		err = s.emitter.Close()
	}
	if err != nil {
		logger.LOG_WARN("关闭stream异常：", err)
	}
	for _, h := range s.handlers {
		err = h.Close()
		if err != nil {
			logger.LOG_WARN("关闭stream异常：", err)
		}
	}
	s.running = false
}

type EmitterWrapper struct {
	InitFunc  func(func(interface{})) error
	CloseFunc func() error
}

func (ew *EmitterWrapper) Init(emit func(interface{})) error {
	return ew.InitFunc(emit)
}
func (ew *EmitterWrapper) Close() error {
	if ew.CloseFunc == nil {
		return nil
	}
	return ew.CloseFunc()
}

type HandlerWrapper struct {
	InitFunc   func() error
	HandleFunc func(interface{}, func(interface{}))
	CloseFunc  func() error
}

func (ew *HandlerWrapper) Init() error {
	if ew.InitFunc == nil {
		return nil
	}
	return ew.InitFunc()
}
func (ew *HandlerWrapper) Handle(data interface{}, next func(interface{})) {
	ew.HandleFunc(data, next)
}
func (ew *HandlerWrapper) Close() error {
	if ew.CloseFunc == nil {
		return nil
	}
	return ew.CloseFunc()
}
