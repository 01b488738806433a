package bridge

import (
	"bufio"
	"context"
	"encoding/json"
	"net"
	"testing"
	"time"
)

// testClient drives one UI-side connection in newline-delimited JSON.
type testClient struct {
	t       *testing.T
	conn    net.Conn
	scanner *bufio.Scanner
	enc     *json.Encoder
}

func startTestServer(t *testing.T, router *Router) (*Server, string) {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	srv := NewServer(router)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := srv.Serve(ctx, lis); err != nil {
			t.Errorf("serve: %v", err)
		}
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
	return srv, lis.Addr().String()
}

func dialTestClient(t *testing.T, addr string) *testClient {
	t.Helper()
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return &testClient{
		t:       t,
		conn:    conn,
		scanner: bufio.NewScanner(conn),
		enc:     json.NewEncoder(conn),
	}
}

func (c *testClient) send(frame any) {
	c.t.Helper()
	if err := c.enc.Encode(frame); err != nil {
		c.t.Fatalf("send: %v", err)
	}
}

// readFrame decodes the next frame into a generic map so tests can see
// frames of any type.
func (c *testClient) readFrame() map[string]json.RawMessage {
	c.t.Helper()
	_ = c.conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	if !c.scanner.Scan() {
		c.t.Fatalf("read: %v", c.scanner.Err())
	}
	var frame map[string]json.RawMessage
	if err := json.Unmarshal(c.scanner.Bytes(), &frame); err != nil {
		c.t.Fatalf("decode: %v", err)
	}
	return frame
}

func (c *testClient) readResponse() (id string, env Envelope) {
	c.t.Helper()
	frame := c.readFrame()
	var typ string
	_ = json.Unmarshal(frame["type"], &typ)
	if typ != frameResponse {
		c.t.Fatalf("frame type = %s, want %s", typ, frameResponse)
	}
	_ = json.Unmarshal(frame["id"], &id)
	if raw, ok := frame["success"]; ok {
		_ = json.Unmarshal(raw, &env.Success)
	}
	if raw, ok := frame["error"]; ok {
		_ = json.Unmarshal(raw, &env.Error)
	}
	if raw, ok := frame["data"]; ok {
		env.Data = raw
	}
	return id, env
}

func echoRouter() *Router {
	r := NewRouter()
	r.Handle("system:get-status", func(ctx context.Context, args json.RawMessage) (any, error) {
		return map[string]string{"status": "healthy"}, nil
	})
	r.Handle("auth:get-session", func(ctx context.Context, args json.RawMessage) (any, error) {
		return map[string]string{"token": AccessToken(ctx)}, nil
	})
	return r
}

func TestServeRequestResponse(t *testing.T) {
	_, addr := startTestServer(t, echoRouter())
	c := dialTestClient(t, addr)

	c.send(requestFrame{ID: "1", Type: frameRequest, Op: "system:get-status"})
	id, env := c.readResponse()
	if id != "1" {
		t.Errorf("id = %s, want 1", id)
	}
	if !env.Success {
		t.Fatalf("env = %+v", env.Error)
	}
	var data map[string]string
	if err := json.Unmarshal(env.Data.(json.RawMessage), &data); err != nil {
		t.Fatalf("data: %v", err)
	}
	if data["status"] != "healthy" {
		t.Errorf("status = %s", data["status"])
	}
}

func TestServeCarriesTokenIntoContext(t *testing.T) {
	_, addr := startTestServer(t, echoRouter())
	c := dialTestClient(t, addr)

	c.send(requestFrame{ID: "7", Type: frameRequest, Op: "auth:get-session", Token: "tok-123"})
	_, env := c.readResponse()
	if !env.Success {
		t.Fatalf("env = %+v", env.Error)
	}
	var data map[string]string
	if err := json.Unmarshal(env.Data.(json.RawMessage), &data); err != nil {
		t.Fatalf("data: %v", err)
	}
	if data["token"] != "tok-123" {
		t.Errorf("token = %s, want tok-123", data["token"])
	}
}

func TestServeUnknownOperation(t *testing.T) {
	_, addr := startTestServer(t, echoRouter())
	c := dialTestClient(t, addr)

	c.send(requestFrame{ID: "2", Type: frameRequest, Op: "debug:eval"})
	_, env := c.readResponse()
	if env.Success || env.Error == nil || env.Error.Code != CodeUnknownOperation {
		t.Fatalf("env = %+v", env)
	}
}

func TestSubscribeAndPublish(t *testing.T) {
	srv, addr := startTestServer(t, echoRouter())
	c := dialTestClient(t, addr)

	c.send(requestFrame{ID: "s1", Type: frameSubscribe, Channel: ChannelNotification})
	_, env := c.readResponse()
	if !env.Success {
		t.Fatalf("subscribe = %+v", env.Error)
	}

	srv.Publish(ChannelNotification, map[string]string{"title": "hello"})

	frame := c.readFrame()
	var typ, channel string
	_ = json.Unmarshal(frame["type"], &typ)
	_ = json.Unmarshal(frame["channel"], &channel)
	if typ != frameEvent || channel != ChannelNotification {
		t.Fatalf("frame = type %s channel %s", typ, channel)
	}
	var payload map[string]string
	if err := json.Unmarshal(frame["payload"], &payload); err != nil {
		t.Fatalf("payload: %v", err)
	}
	if payload["title"] != "hello" {
		t.Errorf("payload = %v", payload)
	}
}

func TestPublishSkipsUnsubscribed(t *testing.T) {
	srv, addr := startTestServer(t, echoRouter())
	c := dialTestClient(t, addr)

	c.send(requestFrame{ID: "s1", Type: frameSubscribe, Channel: ChannelNotification})
	c.readResponse()
	c.send(requestFrame{ID: "u1", Type: frameUnsubscribe, Channel: ChannelNotification})
	c.readResponse()

	srv.Publish(ChannelNotification, map[string]string{"title": "dropped"})

	// A request after the publish must come back as the next frame; the
	// event must not have been delivered in between.
	c.send(requestFrame{ID: "3", Type: frameRequest, Op: "system:get-status"})
	frame := c.readFrame()
	var typ string
	_ = json.Unmarshal(frame["type"], &typ)
	if typ != frameResponse {
		t.Fatalf("frame type = %s, want %s (event leaked)", typ, frameResponse)
	}
}

func TestSubscribeUnknownChannel(t *testing.T) {
	_, addr := startTestServer(t, echoRouter())
	c := dialTestClient(t, addr)

	c.send(requestFrame{ID: "s9", Type: frameSubscribe, Channel: "raw-sockets"})
	_, env := c.readResponse()
	if env.Success || env.Error == nil || env.Error.Code != invalidChannelCode {
		t.Fatalf("env = %+v", env)
	}
}

func TestPublishUnknownChannelDropped(t *testing.T) {
	srv, addr := startTestServer(t, echoRouter())
	c := dialTestClient(t, addr)

	c.send(requestFrame{ID: "s1", Type: frameSubscribe, Channel: ChannelNavigate})
	c.readResponse()

	// Outside the allow-list; nothing may reach the client.
	srv.Publish("raw-sockets", "boom")

	c.send(requestFrame{ID: "4", Type: frameRequest, Op: "system:get-status"})
	frame := c.readFrame()
	var typ string
	_ = json.Unmarshal(frame["type"], &typ)
	if typ != frameResponse {
		t.Fatalf("frame type = %s, publish on unknown channel leaked", typ)
	}
}

func TestServeUnknownFrameType(t *testing.T) {
	_, addr := startTestServer(t, echoRouter())
	c := dialTestClient(t, addr)

	c.send(requestFrame{ID: "x", Type: "telnet"})
	_, env := c.readResponse()
	if env.Success || env.Error == nil || env.Error.Code != CodeInvalidArgument {
		t.Fatalf("env = %+v", env)
	}
}
