package images

import (
	"dyzs/hkcamera/logger"
	"dyzs/hkcamera/util/uuid"
	"fmt"
	"os"
	"path/filepath"
)

const _IMAGE_EXT = "jpg"

//图片写入失败
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("写入图片失败 %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

//图片写盘
type Writer struct {
	dir string
}

func NewWriter(dir string) (*Writer, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, &WriteError{Path: dir, Err: err}
	}
	return &Writer{dir: dir}, nil
}

func (w *Writer) Dir() string {
	return w.dir
}

//写到本地，返回文件路径；失败时不返回路径
func (w *Writer) Write(bs []byte, suffix string) (string, error) {
	path := filepath.Join(w.dir, uuid.FileName(suffix, _IMAGE_EXT))
	if err := writeFile(path, bs); err != nil {
		werr := &WriteError{Path: path, Err: err}
		logger.LOG_ERROR("【海康摄像头写入图片失败】", werr)
		return "", werr
	}
	return path, nil
}

func writeFile(path string, bs []byte) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()
	if _, err = f.Write(bs); err != nil {
		return err
	}
	return f.Sync()
}

//按文件名读取已保存的图片，只允许目录内的文件
func (w *Writer) ReadBase64(name string) (string, error) {
	base := filepath.Base(name)
	if base != name || base == "." || base == ".." {
		return "", os.ErrNotExist
	}
	return FileToBase64(filepath.Join(w.dir, base))
}
