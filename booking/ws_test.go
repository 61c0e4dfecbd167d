package booking

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"aurumdrive/globals"
	"aurumdrive/middleware"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

func signFeedToken(t *testing.T, userID, role string) string {
	t.Helper()
	claims := &middleware.Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(globals.JwtSecret)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func newFeedServer(t *testing.T, feed *Feed) (*httptest.Server, string) {
	t.Helper()
	router := httprouter.New()
	router.GET("/ws/admin", feed.HandleWS)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server, "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/admin"
}

func TestFeedNotify(t *testing.T) {
	feed := NewFeed()
	_, wsURL := newFeedServer(t, feed)

	token := signFeedToken(t, "admin", "admin")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL+"?token="+token, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	// give the server loop a moment to register the subscriber
	time.Sleep(50 * time.Millisecond)

	feed.Notify("booking-created")

	conn.SetReadDeadline(time.Now().Add(time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(msg) != `{"type":"booking-created"}` {
		t.Fatalf("unexpected payload: %s", msg)
	}
}

func TestFeedRejectsAnonymousDial(t *testing.T) {
	feed := NewFeed()
	_, wsURL := newFeedServer(t, feed)

	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err == nil {
		conn.Close()
		t.Fatal("expected handshake failure without a token")
	}
	if resp == nil || resp.StatusCode != 401 {
		t.Fatalf("expected 401, got %+v", resp)
	}
}

func TestFeedRejectsNonAdminToken(t *testing.T) {
	feed := NewFeed()
	_, wsURL := newFeedServer(t, feed)

	token := signFeedToken(t, "u1", "guest")
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL+"?token="+token, nil)
	if err == nil {
		conn.Close()
		t.Fatal("expected handshake failure for a guest token")
	}
	if resp == nil || resp.StatusCode != 403 {
		t.Fatalf("expected 403, got %+v", resp)
	}
}

func TestFeedNotifyWithoutSubscribers(t *testing.T) {
	feed := NewFeed()
	// must not panic or block
	feed.Notify("booking-created")
}
