package websocket

import "github.com/gofiber/websocket/v2"

// ServeWs subscribes the connection to topic and blocks until it closes.
func ServeWs(hub *Hub, c *websocket.Conn, topic string) {
	client := &Client{Hub: hub, Conn: c, Topic: topic, Send: make(chan []byte, sendBuffer)}
	if !hub.add(client) {
		c.Close()
		return
	}

	go client.writePump()
	client.readPump()
}
