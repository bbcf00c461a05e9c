// file: controllers/event_controller.go
package controllers

import (
	"net/http"

	"GOTCTF/services"
	"GOTCTF/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// 浏览器端来自独立部署的前端域名，Origin 校验交给 CORS 层
	CheckOrigin: func(r *http.Request) bool { return true },
}

// StreamEvents 把事件代理成 WebSocket 推送，替代旧的定时轮询。
// 连上先发一条当前闸门快照，之后按发生顺序转发事件。
func StreamEvents(c *gin.Context) {
	if services.Events == nil {
		utils.Error(c, http.StatusServiceUnavailable, 5003, "事件通道未启用")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return // Upgrade 已经写过响应
	}
	defer conn.Close()

	id, ch := services.Events.Subscribe()
	defer services.Events.Unsubscribe(id)

	// 初始快照，客户端以此对齐修订号基线
	if gs, err := loadGameState(); err == nil {
		if err := conn.WriteJSON(services.Event{
			Type:     services.EventGameState,
			Revision: gs.Revision,
			Payload:  gs,
		}); err != nil {
			return
		}
	}

	// 读循环只用来感知对端关闭
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-done:
			return
		case ev, ok := <-ch:
			if !ok {
				return
			}
			if err := conn.WriteJSON(ev); err != nil {
				return
			}
		}
	}
}
