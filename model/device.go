package model

import (
	"net"
	"strconv"
	"strings"
)

//设备登录凭证，构造后不再修改
type DeviceCredentials struct {
	IP       string
	Username string
	Password string
	Port     uint16
}

//主机标识，ipv4取最后一段，其余取整个host
func (c DeviceCredentials) HostID() string {
	ip := net.ParseIP(c.IP)
	if ip != nil && ip.To4() != nil {
		return c.IP[strings.LastIndex(c.IP, ".")+1:]
	}
	return strings.NewReplacer(":", "-", "/", "-").Replace(c.IP)
}

func (c DeviceCredentials) Address() string {
	return net.JoinHostPort(c.IP, strconv.Itoa(int(c.Port)))
}

//摄像头配置参数
type CameraParam struct {
	DeviceIp string `json:"deviceIp" mapstructure:"deviceIp"`
	Username string `json:"username" mapstructure:"username"`
	Password string `json:"password" mapstructure:"password"`
	Port     uint16 `json:"port" mapstructure:"port"`
	Channel  int    `json:"channel" mapstructure:"channel"`
}

func (p CameraParam) Credentials() DeviceCredentials {
	return DeviceCredentials{
		IP:       p.DeviceIp,
		Username: p.Username,
		Password: p.Password,
		Port:     p.Port,
	}
}

//通道号未配置时默认1
func (p CameraParam) GetChannel() int {
	if p.Channel <= 0 {
		return 1
	}
	return p.Channel
}
