package plugin_platepush

import (
	"dyzs/hkcamera/logger"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	_WRITE_WAIT = 5 * time.Second
	_SEND_QUEUE = 16
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type client struct {
	conn *websocket.Conn
	send chan []byte
	once sync.Once
}

//websocket 推送客户端集合
type Hub struct {
	sync.RWMutex
	clients map[*client]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*client]struct{})}
}

//升级连接并阻塞到客户端断开
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request) error {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}
	c := &client{conn: conn, send: make(chan []byte, _SEND_QUEUE)}
	h.Lock()
	h.clients[c] = struct{}{}
	h.Unlock()
	logger.LOG_INFO("websocket客户端连接：", conn.RemoteAddr())

	go h.writeLoop(c)
	//只用于感知断开
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	h.remove(c)
	logger.LOG_INFO("websocket客户端断开：", conn.RemoteAddr())
	return nil
}

func (h *Hub) writeLoop(c *client) {
	defer c.conn.Close()
	for msg := range c.send {
		_ = c.conn.SetWriteDeadline(time.Now().Add(_WRITE_WAIT))
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			logger.LOG_WARN("websocket发送异常：", err)
			h.remove(c)
			return
		}
	}
}

func (h *Hub) remove(c *client) {
	h.Lock()
	delete(h.clients, c)
	h.Unlock()
	c.once.Do(func() {
		close(c.send)
	})
}

//发送队列满的客户端丢弃本条消息
func (h *Hub) Broadcast(msg []byte) {
	h.RLock()
	defer h.RUnlock()
	for c := range h.clients {
		select {
		case c.send <- msg:
		default:
			logger.LOG_WARN("消息队列满，推送丢弃：", c.conn.RemoteAddr())
		}
	}
}

func (h *Hub) Count() int {
	h.RLock()
	defer h.RUnlock()
	return len(h.clients)
}

func (h *Hub) Close() {
	h.Lock()
	clients := h.clients
	h.clients = make(map[*client]struct{})
	h.Unlock()
	for c := range clients {
		c.once.Do(func() {
			close(c.send)
		})
	}
}
