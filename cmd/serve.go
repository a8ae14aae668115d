package cmd

import (
	stdctx "context"
	"dyzs/hkcamera/context"
	"dyzs/hkcamera/db/mongo"
	"dyzs/hkcamera/dispatcher"
	"dyzs/hkcamera/logger"
	"dyzs/hkcamera/metrics"
	plugin_platecache "dyzs/hkcamera/operator/plugin-platecache"
	plugin_platepush "dyzs/hkcamera/operator/plugin-platepush"
	"dyzs/hkcamera/route/hk"
	"dyzs/hkcamera/server"
	"dyzs/hkcamera/stream"
	"dyzs/hkcamera/util"
	"fmt"
	"time"

	"github.com/kardianos/service"
	"github.com/robfig/cron"
	"github.com/spf13/cobra"
)

var serviceAction string

type program struct {
	dispatcher *dispatcher.AlarmDispatcher
	stream     *stream.Stream
	server     *server.HttpServer
	cron       *cron.Cron
	cancel     stdctx.CancelFunc
}

//service.Interface，不阻塞
func (p *program) Start(s service.Service) error {
	m, err := newManager()
	if err != nil {
		return err
	}
	writer, err := newWriter()
	if err != nil {
		return err
	}
	client := newCaptureClient(m, writer)
	p.dispatcher = newDispatcher(m)

	p.stream, err = stream.Build(p.dispatcher, context.GetStringSlice("alarm.flow"))
	if err != nil {
		return err
	}
	if err = p.stream.Init(); err != nil {
		return err
	}
	if err = p.stream.Run(); err != nil {
		return err
	}
	metrics.Registry.MustRegister(&metrics.SessionCollector{Status: p.dispatcher.Status})

	api := &hk.Api{
		Dispatcher:  p.dispatcher,
		Capture:     client,
		Cache:       plugin_platecache.Shared,
		Hub:         plugin_platepush.DefaultHub,
		Images:      writer,
		PlateDevice: context.GetPlateDevice,
		Cameras:     context.GetCameras,
	}
	if mongo.Configured() {
		api.History = mongo.FindPlates
	}

	if spec := context.GetString("capture.cron"); spec != "" {
		p.cron, err = client.StartSchedule(spec, context.GetCameras)
		if err != nil {
			return fmt.Errorf("定时抓图配置错误 %s: %w", spec, err)
		}
	}

	var ctx stdctx.Context
	ctx, p.cancel = stdctx.WithCancel(stdctx.Background())
	go p.initPlateSession(ctx)

	p.server = server.NewHttpServer(context.GetString("port"), api)
	go func() {
		if err := p.server.ListenAndServe(); err != nil {
			logger.LOG_ERROR("http服务异常：", err)
		}
	}()
	return nil
}

//启动时布防车牌摄像头，失败重试
func (p *program) initPlateSession(ctx stdctx.Context) {
	if len(context.IsExsit("hk.plateNumber.deviceIp")) > 0 {
		logger.LOG_WARN("【海康车牌摄像头】未配置 hk.plateNumber，等待 /hk/init 调用")
		return
	}
	cred, err := context.GetPlateDevice()
	if err != nil {
		logger.LOG_ERROR("【海康车牌摄像头】配置错误：", err)
		return
	}
	err = util.Retry(func() error {
		if ctx.Err() != nil {
			return nil
		}
		return p.dispatcher.InitPlateSession(cred)
	}, 5, 10*time.Second)
	if err != nil {
		logger.LOG_ERROR("【海康车牌摄像头】初始化失败：", err)
	}
}

func (p *program) Stop(s service.Service) error {
	logger.LOG_INFO("服务停止中...")
	ctx, cancel := stdctx.WithTimeout(stdctx.Background(), 5*time.Second)
	defer cancel()
	if p.cancel != nil {
		p.cancel()
	}
	if p.server != nil {
		if err := p.server.Shutdown(ctx); err != nil {
			logger.LOG_WARN("http服务关闭异常：", err)
		}
	}
	if p.cron != nil {
		p.cron.Stop()
	}
	if p.stream != nil {
		p.stream.Close()
	}
	mongo.Close()
	return nil
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "启动报警接入、抓图及http服务",
	RunE: func(cmd *cobra.Command, args []string) error {
		svcConfig := &service.Config{
			Name:        "hkcamera",
			DisplayName: "Hikvision Camera Service",
			Description: "海康车牌报警接入及全彩摄像头抓图",
			Arguments:   []string{"serve"},
		}
		if cfgFile != "" {
			svcConfig.Arguments = append(svcConfig.Arguments, "--config", cfgFile)
		}
		s, err := service.New(&program{}, svcConfig)
		if err != nil {
			return err
		}
		if serviceAction != "" {
			if err := service.Control(s, serviceAction); err != nil {
				return fmt.Errorf("服务操作 %s 失败: %w", serviceAction, err)
			}
			fmt.Printf("服务操作 %s 完成\n", serviceAction)
			return nil
		}
		return s.Run()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serviceAction, "service", "", "服务操作：install, uninstall, start, stop")
}
