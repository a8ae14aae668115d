package sdk

import (
	"bytes"
	"encoding/binary"
)

//按偏移读取定长结构
type reader []byte

func (r reader) u8(off int) byte {
	return r[off]
}

func (r reader) u16(off int) uint16 {
	return binary.LittleEndian.Uint16(r[off:])
}

func (r reader) u32(off int) uint32 {
	return binary.LittleEndian.Uint32(r[off:])
}

func (r reader) i32(off int) int32 {
	return int32(r.u32(off))
}

func (r reader) u64(off int) uint64 {
	return binary.LittleEndian.Uint64(r[off:])
}

//拷贝一段字节，不与原缓冲区共享内存
func (r reader) bytes(off, n int) []byte {
	out := make([]byte, n)
	copy(out, r[off:off+n])
	return out
}

//C字符串，截断到第一个\0
func (r reader) cstr(off, n int) string {
	b := r[off : off+n]
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}

//按偏移写入定长结构
type writer []byte

func (w writer) u8(off int, v byte) {
	w[off] = v
}

func (w writer) u16(off int, v uint16) {
	binary.LittleEndian.PutUint16(w[off:], v)
}

func (w writer) u32(off int, v uint32) {
	binary.LittleEndian.PutUint32(w[off:], v)
}

func (w writer) i32(off int, v int32) {
	w.u32(off, uint32(v))
}

func (w writer) u64(off int, v uint64) {
	binary.LittleEndian.PutUint64(w[off:], v)
}

//写入定长字段，超长截断
func (w writer) bytes(off, n int, b []byte) {
	if len(b) > n {
		b = b[:n]
	}
	copy(w[off:off+n], b)
}
