package plugin_imagesave

import (
	"dyzs/hkcamera/concurrent"
	"dyzs/hkcamera/context"
	"dyzs/hkcamera/logger"
	"dyzs/hkcamera/metrics"
	"dyzs/hkcamera/model"
	"dyzs/hkcamera/operator"
	"dyzs/hkcamera/stream"
	"dyzs/hkcamera/util"
	"dyzs/hkcamera/util/images"
	"errors"
	"strconv"
)

const NAME = "imagesave"

func init() {
	stream.RegistHandler(NAME, &stream.HandlerWrapper{
		InitFunc:   Init,
		HandleFunc: Handle,
		CloseFunc:  Close,
	})
}

var (
	executor *concurrent.Executor
	writer   *images.Writer
)

func Init() error {
	capacity := 4
	configCapacity := context.GetInt("imagesave.capacity")
	if configCapacity > 0 {
		capacity = configCapacity
	}
	dir := context.GetString("hk.imgPath")
	logger.LOG_INFO("------------------ imagesave config ------------------")
	logger.LOG_INFO("hk.imgPath : " + dir)
	logger.LOG_INFO("imagesave.capacity : " + strconv.Itoa(capacity))
	logger.LOG_INFO("------------------------------------------------------")
	if dir == "" {
		return errors.New("缺少配置：hk.imgPath")
	}
	w, err := images.NewWriter(util.ResolvePath(dir))
	if err != nil {
		return err
	}
	writer = w
	executor = concurrent.NewExecutor(capacity)
	return nil
}

//逐张写盘，单张失败不影响同一事件的其他图片
func Handle(data interface{}, next func(interface{})) {
	ev, ok := operator.AlarmEvent(NAME, data)
	if !ok {
		return
	}
	tasks := make([]func(), 0, len(ev.Pictures))
	for _, pic := range ev.Pictures {
		if len(pic.Data) == 0 {
			continue
		}
		func(p *model.PictureRecord) {
			tasks = append(tasks, func() {
				save(ev, p)
			})
		}(pic)
	}
	if len(tasks) > 0 {
		if err := executor.SubmitSyncBatch(tasks); err != nil {
			logger.LOG_ERROR("批量保存图片失败：", err)
		}
	}
	next(ev)
}

func save(ev *model.AlarmEvent, p *model.PictureRecord) {
	path, err := writer.Write(p.Data, suffix(ev, p))
	if err != nil {
		metrics.PictureWriteErrors.Inc()
		return
	}
	p.Path = path
	//写盘后释放图片内存
	p.Data = nil
	metrics.PicturesSaved.Inc()
	logger.LOG_DEBUG("【海康报警回调】图片已保存：", path)
}

//图片类型，设备已知时加上主机标识
func suffix(ev *model.AlarmEvent, p *model.PictureRecord) string {
	if ev.DeviceIP == "" {
		return p.Kind.String()
	}
	host := model.DeviceCredentials{IP: ev.DeviceIP}.HostID()
	return host + "_" + p.Kind.String()
}

func Close() error {
	if executor != nil {
		executor.Close()
	}
	return nil
}
