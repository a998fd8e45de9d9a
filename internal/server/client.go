package server

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/tmdict/stargazer-sub002/internal/engine"
	"github.com/tmdict/stargazer-sub002/pkg/api"
	"github.com/tmdict/stargazer-sub002/pkg/logger"
	"github.com/tmdict/stargazer-sub002/pkg/utils"
)

// Настройки WebSocket
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client - посредник между Websocket и движком расстановки
type Client struct {
	Engine  *engine.Service
	Conn    *websocket.Conn
	Send    chan api.ServerResponse
	Session string
}

func NewClient(eng *engine.Service, conn *websocket.Conn) *Client {
	return &Client{
		Engine: eng,
		Conn:   conn,
		Send:   make(chan api.ServerResponse, 256),
	}
}

// readPump читает команды от клиента
func (c *Client) readPump() {
	defer func() {
		if c.Session != "" {
			c.Engine.Hub.Unregister(c.Session)
			logger.Log.WithField("session", c.Session).Info("Client disconnected")
		}
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Warn("failed to close websocket connection")
		}
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		logger.Log.WithError(err).Warn("failed to set read deadline")
	}
	c.Conn.SetPongHandler(func(string) error {
		if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			logger.Log.WithError(err).Warn("failed to set pong read deadline")
		}
		return nil
	})

	// 1. HANDSHAKE: первая команда фиксирует сессию. Клиент может
	// переподключиться со старым идентификатором сессии.
	var first api.ClientCommand
	if err := c.Conn.ReadJSON(&first); err != nil {
		logger.Log.Warn("Handshake failed")
		return
	}

	c.Session = first.Session
	if c.Session == "" {
		c.Session = utils.GenerateID()
	}

	logger.Log.WithFields(logrus.Fields{
		"session": c.Session,
	}).Info("Client connected")

	// 2. ПОДПИСКА НА СНИМКИ
	updates := c.Engine.Hub.Register(c.Session)

	// Пересылка снимков из Hub в writePump
	go func() {
		for msg := range updates {
			c.Send <- msg
		}
		close(c.Send)
	}()

	// Первый снимок — сразу, не дожидаясь первой мутации.
	c.Engine.Hub.SendTo(c.Session, c.Engine.State())

	// Первая команда тоже исполняется (обычно это INIT).
	first.Session = c.Session
	c.Engine.ProcessCommand(first)

	// 3. ЦИКЛ ЧТЕНИЯ КОМАНД
	for {
		var cmd api.ClientCommand
		err := c.Conn.ReadJSON(&cmd)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Log.Errorf("WS Error: %v", err)
			}
			break
		}
		cmd.Session = c.Session
		c.Engine.ProcessCommand(cmd)
	}
}

// writePump отправляет данные клиенту + Ping
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Warn("failed to close websocket connection in writePump")
		}
	}()

	for {
		select {
		case message, ok := <-c.Send:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set write deadline")
			}
			if !ok {
				if err := c.Conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
					logger.Log.WithError(err).Debug("write close message failed")
				}
				return
			}
			if err := c.Conn.WriteJSON(message); err != nil {
				logger.Log.WithError(err).Debug("write json message failed")
				return
			}

		case <-ticker.C:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set ping write deadline")
			}
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				logger.Log.WithError(err).Debug("ping failed")
				return
			}
		}
	}
}
