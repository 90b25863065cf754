package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sync"
	"sync/atomic"
	"time"

	"portfolio-be/pkg/livesync"
	"portfolio-be/pkg/portfolio"

	"github.com/fasthttp/websocket"
	"go.uber.org/zap"
)

type subscription struct {
	conn    *websocket.Conn
	stopped atomic.Bool
	once    sync.Once
	done    chan struct{}
}

func (s *subscription) Unsubscribe() error {
	var err error
	s.once.Do(func() {
		s.stopped.Store(true)
		deadline := time.Now().Add(time.Second)
		_ = s.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), deadline)
		err = s.conn.Close()
	})
	return err
}

// subscribe opens a realtime session on topic and calls handle for every
// envelope until Unsubscribe. ctx bounds only the handshake.
func (c *Client) subscribe(ctx context.Context, topic string, handle func(portfolio.FeedEnvelope)) (livesync.Subscription, error) {
	q := url.Values{"topic": {topic}}
	if tok := c.Token(); tok != "" {
		q.Set("token", tok)
	}

	conn, resp, err := c.dialer.DialContext(ctx, c.wsURL+"/realtime/ws?"+q.Encode(), nil)
	if err != nil {
		if resp != nil {
			if mapped := statusError(resp.StatusCode, "realtime handshake rejected"); mapped != nil {
				return nil, mapped
			}
		}
		return nil, fmt.Errorf("%w: dial realtime: %v", livesync.ErrTransient, err)
	}

	sub := &subscription{conn: conn, done: make(chan struct{})}
	go c.readLoop(sub, topic, handle)
	return sub, nil
}

func (c *Client) readLoop(sub *subscription, topic string, handle func(portfolio.FeedEnvelope)) {
	defer close(sub.done)
	defer sub.conn.Close()

	for {
		_, data, err := sub.conn.ReadMessage()
		if err != nil {
			if !sub.stopped.Load() {
				c.logger.Warn("realtime session ended", zap.String("topic", topic), zap.Error(err))
			}
			return
		}

		var env portfolio.FeedEnvelope
		if err := json.Unmarshal(data, &env); err != nil {
			c.logger.Warn("dropping malformed envelope", zap.String("topic", topic), zap.Error(err))
			continue
		}
		if sub.stopped.Load() {
			return
		}
		handle(env)
	}
}
