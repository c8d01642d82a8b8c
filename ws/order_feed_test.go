package ws

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/shopspring/decimal"

	"github.com/youssofmousssa/luxestorebackeend/entity"
)

func newTestFeed(t *testing.T) (*OrderFeed, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	feed := NewOrderFeed(slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go feed.Run(ctx)

	r := gin.New()
	r.GET("/ws/orders", feed.HandleWebSocket)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return feed, "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/orders"
}

func waitForClients(t *testing.T, feed *OrderFeed, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for feed.Clients() != n {
		if time.Now().After(deadline) {
			t.Fatalf("clients = %d, want %d", feed.Clients(), n)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestOrderFeedBroadcast(t *testing.T) {
	feed, url := newTestFeed(t)

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()
	waitForClients(t, feed, 1)

	feed.OrderCreated(entity.Order{ID: "o-1", UserID: "u-1", Amount: decimal.NewFromInt(10), Status: entity.OrderPending})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var got struct {
		ID     string `json:"id"`
		UserID string `json:"userId"`
		Status string `json:"status"`
	}
	if err := conn.ReadJSON(&got); err != nil {
		t.Fatalf("read: %v", err)
	}
	if got.ID != "o-1" || got.UserID != "u-1" || got.Status != "pending" {
		t.Fatalf("got %+v", got)
	}
}

func TestOrderFeedUnregistersOnClose(t *testing.T) {
	feed, url := newTestFeed(t)

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	waitForClients(t, feed, 1)

	conn.Close()
	waitForClients(t, feed, 0)
}

func TestOrderCreatedNeverBlocks(t *testing.T) {
	// Run is not started, so nothing drains the buffer.
	feed := NewOrderFeed(slog.New(slog.NewTextHandler(io.Discard, nil)))

	done := make(chan struct{})
	go func() {
		for i := 0; i < feedBuffer*2; i++ {
			feed.OrderCreated(entity.Order{ID: "o"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("OrderCreated blocked on a full buffer")
	}
}
