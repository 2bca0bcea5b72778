// Copyright 2026 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package inspect provides a WebSocket server that streams summaries
// of published [shadow.Revision] snapshots to debugging clients as
// JSON text messages.
package inspect

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"cogentcore.org/shadow"
	"cogentcore.org/shadow/math32"
	"github.com/gorilla/websocket"
)

// Summary is the JSON form of one published revision.
type Summary struct {
	Number uint64
	Time   time.Time
	Nodes  []NodeSummary
}

// NodeSummary is the JSON form of one node, in tree order.
type NodeSummary struct {
	Tag    shadow.Tag
	Kind   string
	Pos    math32.Vector2
	Size   math32.Vector2
	Scroll *ScrollSummary `json:",omitempty"`
}

// ScrollSummary is the JSON form of a scroll node's state.
type ScrollSummary struct {
	Offset      math32.Vector2
	ContentSize math32.Vector2
	Revision    uint64
}

// Summarize returns the [Summary] of the given revision.
func Summarize(rev *shadow.Revision) *Summary {
	sum := &Summary{Number: rev.Number(), Time: rev.Time()}
	rev.WalkDown(func(n *shadow.Node) bool {
		ns := NodeSummary{
			Tag:  n.Tag(),
			Kind: n.Kind().String(),
			Pos:  n.Metrics().Pos,
			Size: n.Metrics().Size,
		}
		if ss := n.ScrollState(); ss != nil {
			ns.Scroll = &ScrollSummary{
				Offset:      ss.Offset,
				ContentSize: ss.ContentSize,
				Revision:    ss.Revision,
			}
		}
		sum.Nodes = append(sum.Nodes, ns)
		return shadow.Continue
	})
	return sum
}

// Server is a WebSocket server that streams revision summaries to
// connected clients. It implements [http.Handler]. Each client
// receives only the latest revision: if a client cannot keep up,
// intermediate revisions are dropped.
type Server struct {
	upgrader websocket.Upgrader

	mu    sync.Mutex
	conns map[*conn]struct{}
}

// conn is one connected client.
type conn struct {
	ws *websocket.Conn

	// send holds the latest unsent summary.
	send chan *Summary

	// done is closed when the connection is removed.
	done chan struct{}
}

// NewServer returns a new [Server] with no connected clients.
func NewServer() *Server {
	return &Server{conns: map[*conn]struct{}{}}
}

// NumClients returns the number of currently connected clients.
func (sv *Server) NumClients() int {
	sv.mu.Lock()
	defer sv.mu.Unlock()
	return len(sv.conns)
}

// ServeHTTP upgrades the request to a WebSocket connection and
// streams summaries to it until the client disconnects.
func (sv *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ws, err := sv.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("inspect: upgrade failed", "err", err)
		return
	}
	c := &conn{ws: ws, send: make(chan *Summary, 1), done: make(chan struct{})}
	sv.mu.Lock()
	sv.conns[c] = struct{}{}
	sv.mu.Unlock()
	go sv.write(c)
	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			break
		}
	}
	sv.remove(c)
}

// write delivers queued summaries to one client.
func (sv *Server) write(c *conn) {
	for {
		select {
		case <-c.done:
			return
		case sum := <-c.send:
			b, err := json.Marshal(sum)
			if err != nil {
				slog.Error("inspect: marshal failed", "err", err)
				continue
			}
			if err := c.ws.WriteMessage(websocket.TextMessage, b); err != nil {
				sv.remove(c)
				return
			}
		}
	}
}

// remove drops the connection, closing it if still open.
func (sv *Server) remove(c *conn) {
	sv.mu.Lock()
	defer sv.mu.Unlock()
	if _, ok := sv.conns[c]; !ok {
		return
	}
	delete(sv.conns, c)
	close(c.done)
	c.ws.Close()
}

// Publish sends the given revision to every connected client,
// replacing any revision they have not received yet.
func (sv *Server) Publish(rev *shadow.Revision) {
	sum := Summarize(rev)
	sv.mu.Lock()
	defer sv.mu.Unlock()
	for c := range sv.conns {
		for {
			select {
			case c.send <- sum:
			default:
				select {
				case <-c.send:
				default:
				}
				continue
			}
			break
		}
	}
}

// Watch publishes every revision the given root delivers on its
// updates channel, until the context is canceled. It consumes the
// root's [shadow.Root.Updates] channel.
func (sv *Server) Watch(ctx context.Context, rt *shadow.Root) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case rev := <-rt.Updates():
				sv.Publish(rev)
			}
		}
	}()
}

// Client is a WebSocket client connection to an inspect [Server].
// You can use [Connect] to create a new Client.
type Client struct {
	conn *websocket.Conn
}

// Connect connects to an inspect server at the given WebSocket URL.
func Connect(url string) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, err
	}
	return &Client{conn: conn}, nil
}

// Next blocks until the next summary arrives and returns it.
func (c *Client) Next() (*Summary, error) {
	_, msg, err := c.conn.ReadMessage()
	if err != nil {
		return nil, err
	}
	sum := &Summary{}
	if err := json.Unmarshal(msg, sum); err != nil {
		return nil, err
	}
	return sum, nil
}

// Close cleanly closes the connection.
func (c *Client) Close() error {
	c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	return c.conn.Close()
}
