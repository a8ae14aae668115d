package hk

import (
	"dyzs/hkcamera/capture"
	"dyzs/hkcamera/db/mongo"
	"dyzs/hkcamera/dispatcher"
	"dyzs/hkcamera/logger"
	"dyzs/hkcamera/model"
	plugin_platecache "dyzs/hkcamera/operator/plugin-platecache"
	plugin_platepush "dyzs/hkcamera/operator/plugin-platepush"
	"dyzs/hkcamera/redis"
	"dyzs/hkcamera/route/common"
	"dyzs/hkcamera/util/images"
	"errors"
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
)

var (
	ErrCacheDisabled   = errors.New("redis 未配置")
	ErrHistoryDisabled = errors.New("mongodb 未配置")
)

//接口依赖，未配置的可为空
type Api struct {
	Dispatcher  *dispatcher.AlarmDispatcher
	Capture     *capture.Client
	Cache       *redis.Cache
	Hub         *plugin_platepush.Hub
	Images      *images.Writer
	PlateDevice func() (model.DeviceCredentials, error)
	Cameras     func() ([]model.CameraParam, error)
	History     func(mongo.PlateQuery) ([]*model.PlateRecord, error)
}

func RouteHk(engine *gin.Engine, api *Api) {
	group := engine.Group("/hk")
	group.GET("/init", api.init)
	group.GET("/takePhoto", api.takePhoto)
	group.GET("/status", api.status)
	group.GET("/plates/latest", api.latest)
	group.GET("/plates/history", api.history)
	group.GET("/picture", api.picture)
	group.GET("/ws", api.ws)
}

func (api *Api) init(ctx *gin.Context) {
	cred, err := api.PlateDevice()
	if err != nil {
		common.ResponseError(ctx, http.StatusBadRequest, err)
		return
	}
	if err := api.Dispatcher.InitPlateSession(cred); err != nil {
		logger.LOG_ERROR("【海康车牌摄像头】初始化失败：", err)
		common.ResponseError(ctx, http.StatusInternalServerError, err)
		return
	}
	common.ResponseSuccess(ctx, cred.Address())
}

func (api *Api) takePhoto(ctx *gin.Context) {
	cameras, err := api.Cameras()
	if err != nil {
		common.ResponseError(ctx, http.StatusBadRequest, err)
		return
	}
	paths := api.Capture.TakePhotos(ctx.Request.Context(), cameras)
	common.ResponseSuccess(ctx, paths)
}

func (api *Api) status(ctx *gin.Context) {
	device, armed := api.Dispatcher.Status()
	common.ResponseSuccess(ctx, gin.H{
		"device": device,
		"armed":  armed,
	})
}

//n 不为空时返回最近 n 条，否则返回各设备最新一条
func (api *Api) latest(ctx *gin.Context) {
	if api.Cache == nil {
		common.ResponseError(ctx, http.StatusServiceUnavailable, ErrCacheDisabled)
		return
	}
	var (
		records []*model.PlateRecord
		err     error
	)
	if s := ctx.Query("n"); s != "" {
		n, perr := strconv.Atoi(s)
		if perr != nil {
			common.ResponseError(ctx, http.StatusBadRequest, perr)
			return
		}
		records, err = plugin_platecache.Recent(api.Cache, n)
	} else {
		records, err = plugin_platecache.Latest(api.Cache)
	}
	if err != nil {
		common.ResponseError(ctx, http.StatusInternalServerError, err)
		return
	}
	common.ResponseSuccess(ctx, records)
}

func (api *Api) history(ctx *gin.Context) {
	if api.History == nil {
		common.ResponseError(ctx, http.StatusServiceUnavailable, ErrHistoryDisabled)
		return
	}
	page := &common.Page{}
	if err := ctx.ShouldBindQuery(page); err != nil {
		common.ResponseError(ctx, http.StatusBadRequest, err)
		return
	}
	records, err := api.History(mongo.PlateQuery{
		DeviceIP:    ctx.Query("deviceIp"),
		PlateNumber: ctx.Query("plateNumber"),
		Skip:        page.GetStart(),
		Limit:       page.PageSize,
	})
	if err != nil {
		common.ResponseError(ctx, http.StatusInternalServerError, err)
		return
	}
	common.ResponseSuccess(ctx, records)
}

func (api *Api) ws(ctx *gin.Context) {
	if err := api.Hub.Serve(ctx.Writer, ctx.Request); err != nil {
		logger.LOG_WARN("【车牌推送】websocket 连接失败：", err)
	}
}

//已保存图片转base64
func (api *Api) picture(ctx *gin.Context) {
	data, err := api.Images.ReadBase64(ctx.Query("name"))
	if err != nil {
		code := http.StatusInternalServerError
		if os.IsNotExist(err) {
			code = http.StatusNotFound
		}
		common.ResponseError(ctx, code, err)
		return
	}
	common.ResponseSuccess(ctx, data)
}
