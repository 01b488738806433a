package bridge

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"log"
	"net"
	"sync"
)

// Frame types on the wire. Requests, subscribes, and unsubscribes flow UI →
// host; responses and events flow host → UI.
const (
	frameRequest     = "request"
	frameSubscribe   = "subscribe"
	frameUnsubscribe = "unsubscribe"
	frameResponse    = "response"
	frameEvent       = "event"
)

// requestFrame is an incoming newline-delimited JSON frame from the UI.
type requestFrame struct {
	ID      string          `json:"id,omitempty"`
	Type    string          `json:"type"`
	Op      string          `json:"op,omitempty"`
	Args    json.RawMessage `json:"args,omitempty"`
	Token   string          `json:"token,omitempty"`
	Channel string          `json:"channel,omitempty"`
}

// responseFrame answers one request or subscription frame.
type responseFrame struct {
	ID   string `json:"id,omitempty"`
	Type string `json:"type"`
	Envelope
}

// eventFrame is a host-initiated push on an allow-listed channel.
type eventFrame struct {
	Type    string `json:"type"`
	Channel string `json:"channel"`
	Payload any    `json:"payload,omitempty"`
}

const invalidChannelCode = "INVALID_CHANNEL"

// Server accepts UI connections on a loopback listener and shuttles frames
// between the connection and the Router. Each request is handled in its own
// goroutine; writes to a connection are serialized. Server also acts as the
// push hub: Publish fans an event out to every connection subscribed to the
// channel.
type Server struct {
	router *Router

	mu    sync.Mutex
	conns map[*serverConn]struct{}
	wg    sync.WaitGroup
}

type serverConn struct {
	netConn net.Conn

	writeMu sync.Mutex
	enc     *json.Encoder

	subMu sync.Mutex
	subs  map[string]bool
}

// NewServer returns a Server dispatching to router.
func NewServer(router *Router) *Server {
	return &Server{
		router: router,
		conns:  make(map[*serverConn]struct{}),
	}
}

// Serve accepts connections on lis until lis is closed or ctx is cancelled.
// It returns nil on a clean listener close.
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	go func() {
		<-ctx.Done()
		_ = lis.Close()
	}()
	for {
		netConn, err := lis.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				s.wg.Wait()
				return nil
			}
			return err
		}
		conn := &serverConn{
			netConn: netConn,
			enc:     json.NewEncoder(netConn),
			subs:    make(map[string]bool),
		}
		s.mu.Lock()
		s.conns[conn] = struct{}{}
		s.mu.Unlock()
		s.wg.Add(1)
		go s.serveConn(ctx, conn)
	}
}

// Publish sends payload on channel to every subscribed connection.
// Best-effort: write failures drop the connection's event and are logged.
// Publishing on a channel outside the allow-list is a programming error.
func (s *Server) Publish(channel string, payload any) {
	if !IsPushChannel(channel) {
		log.Printf("bridge: dropping publish on unknown channel %q", channel)
		return
	}
	frame := eventFrame{Type: frameEvent, Channel: channel, Payload: payload}
	s.mu.Lock()
	conns := make([]*serverConn, 0, len(s.conns))
	for c := range s.conns {
		conns = append(conns, c)
	}
	s.mu.Unlock()
	for _, c := range conns {
		if !c.subscribed(channel) {
			continue
		}
		if err := c.write(frame); err != nil {
			log.Printf("bridge: event write failed: %v", err)
		}
	}
}

func (s *Server) serveConn(ctx context.Context, conn *serverConn) {
	defer func() {
		s.mu.Lock()
		delete(s.conns, conn)
		s.mu.Unlock()
		_ = conn.netConn.Close()
		s.wg.Done()
	}()

	scanner := bufio.NewScanner(conn.netConn)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	var reqWG sync.WaitGroup
	defer reqWG.Wait()

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var frame requestFrame
		if err := json.Unmarshal(line, &frame); err != nil {
			// A malformed frame has no id to answer; drop it.
			log.Printf("bridge: malformed frame: %v", err)
			continue
		}
		switch frame.Type {
		case frameRequest:
			reqWG.Add(1)
			go func(f requestFrame) {
				defer reqWG.Done()
				reqCtx := WithAccessToken(ctx, f.Token)
				env := s.router.Dispatch(reqCtx, f.Op, f.Args)
				if err := conn.write(responseFrame{ID: f.ID, Type: frameResponse, Envelope: env}); err != nil {
					log.Printf("bridge: response write failed: %v", err)
				}
			}(frame)
		case frameSubscribe:
			conn.answerSubscription(frame, true)
		case frameUnsubscribe:
			conn.answerSubscription(frame, false)
		default:
			_ = conn.write(responseFrame{
				ID:   frame.ID,
				Type: frameResponse,
				Envelope: Envelope{
					Success: false,
					Error:   NewError(CodeInvalidArgument, "unknown frame type"),
				},
			})
		}
	}
}

func (c *serverConn) answerSubscription(frame requestFrame, subscribe bool) {
	if !IsPushChannel(frame.Channel) {
		_ = c.write(responseFrame{
			ID:   frame.ID,
			Type: frameResponse,
			Envelope: Envelope{
				Success: false,
				Error:   NewError(invalidChannelCode, "unknown push channel"),
			},
		})
		return
	}
	c.subMu.Lock()
	if subscribe {
		c.subs[frame.Channel] = true
	} else {
		delete(c.subs, frame.Channel)
	}
	c.subMu.Unlock()
	_ = c.write(responseFrame{ID: frame.ID, Type: frameResponse, Envelope: Envelope{Success: true}})
}

func (c *serverConn) subscribed(channel string) bool {
	c.subMu.Lock()
	defer c.subMu.Unlock()
	return c.subs[channel]
}

func (c *serverConn) write(frame any) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.enc.Encode(frame)
}
