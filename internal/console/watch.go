package console

import (
	"context"
	"strings"

	"hapsay-service/internal/realtime"

	"github.com/gorilla/websocket"
)

// StreamURL turns the API base URL into the websocket endpoint.
func StreamURL(baseURL string) string {
	switch {
	case strings.HasPrefix(baseURL, "https://"):
		baseURL = "wss://" + strings.TrimPrefix(baseURL, "https://")
	case strings.HasPrefix(baseURL, "http://"):
		baseURL = "ws://" + strings.TrimPrefix(baseURL, "http://")
	}
	return strings.TrimRight(baseURL, "/") + "/api/ws"
}

// Watch invalidates cached lists as the server reports mutations and hands
// each event to handle. It returns nil once ctx is cancelled.
func Watch(ctx context.Context, baseURL string, cache *QueryCache, handle func(realtime.Event)) error {

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, StreamURL(baseURL), nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	go func() {
		<-ctx.Done()
		_ = conn.Close()
	}()

	for {
		var ev realtime.Event
		if err := conn.ReadJSON(&ev); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		cache.Invalidate(ev.Key)
		if handle != nil {
			handle(ev)
		}
	}

}
