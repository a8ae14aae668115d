package server

import (
	"context"
	"dyzs/hkcamera/logger"
	"dyzs/hkcamera/metrics"
	"dyzs/hkcamera/route/hk"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HttpServer struct {
	server *http.Server
	engine *gin.Engine
}

func NewHttpServer(port string, api *hk.Api) *HttpServer {
	hs := &HttpServer{}
	engin := gin.New()
	engin.Use(gin.Recovery())
	//变更日志级别
	engin.Handle(http.MethodGet, "/debug", hs.debug)
	engin.GET("/metrics", gin.WrapH(metrics.Handler()))
	//海康摄像头
	hk.RouteHk(engin, api)

	hs.engine = engin
	hs.server = &http.Server{
		Handler:           engin,
		Addr:              ":" + port,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return hs
}

func (hs *HttpServer) Handler() http.Handler {
	return hs.engine
}

//阻塞直到 Shutdown
func (hs *HttpServer) ListenAndServe() error {
	logger.LOG_INFO("http服务启动：", hs.server.Addr)
	err := hs.server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (hs *HttpServer) Shutdown(ctx context.Context) error {
	return hs.server.Shutdown(ctx)
}

func (hs *HttpServer) debug(ctx *gin.Context) {
	level := ctx.Query("level")
	if level == "" {
		ctx.String(http.StatusBadRequest, "level 不能为空")
		return
	}
	if !logger.ChangeLevel(level) {
		ctx.String(http.StatusBadRequest, "未知日志级别："+level)
		return
	}
	ctx.String(http.StatusOK, level)
}
