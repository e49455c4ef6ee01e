package ws

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"neoncity.dev/internal/protocol"
	"neoncity.dev/internal/sim/session"
)

type Server struct {
	sess *session.Session
	log  *log.Logger

	upgrader websocket.Upgrader
}

func NewServer(sess *session.Session, logger *log.Logger) *Server {
	return &Server{
		sess: sess,
		log:  logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  64 * 1024,
			WriteBufferSize: 64 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true }, // dev default
		},
	}
}

func (s *Server) Handler() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		conn, err := s.upgrader.Upgrade(rw, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		observerID, out := s.handshake(conn)
		if observerID == "" {
			return
		}
		s.log.Printf("observer %s connected from %s", observerID, r.RemoteAddr)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Writer goroutine.
		go func() {
			for {
				select {
				case <-ctx.Done():
					return
				case b, ok := <-out:
					if !ok {
						return
					}
					_ = conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
					if err := conn.WriteMessage(websocket.TextMessage, b); err != nil {
						cancel()
						return
					}
				}
			}
		}()

		// Reader loop: only POS updates come in after the handshake.
		for {
			_ = conn.SetReadDeadline(time.Now().Add(60 * time.Second))
			_, msg, err := conn.ReadMessage()
			if err != nil {
				cancel()
				break
			}
			base, err := protocol.DecodeBase(msg)
			if err != nil || base.Type != protocol.TypePos {
				continue
			}
			var pos protocol.PosMsg
			if err := json.Unmarshal(msg, &pos); err != nil {
				continue
			}
			if pos.ProtocolVersion != protocol.Version {
				continue
			}
			s.sess.Pos() <- session.PosUpdate{ObserverID: observerID, X: pos.X, Z: pos.Z}
		}

		s.sess.Leave() <- observerID
		s.log.Printf("observer %s disconnected", observerID)
	}
}

func (s *Server) handshake(conn *websocket.Conn) (observerID string, out chan []byte) {
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		return "", nil
	}

	base, err := protocol.DecodeBase(msg)
	if err != nil || base.Type != protocol.TypeHello {
		s.reject(conn, protocol.ErrProtoBadRequest, "expected HELLO")
		return "", nil
	}

	var hello protocol.HelloMsg
	if err := json.Unmarshal(msg, &hello); err != nil {
		s.reject(conn, protocol.ErrProtoBadRequest, "malformed HELLO")
		return "", nil
	}
	if hello.ProtocolVersion != protocol.Version {
		s.reject(conn, protocol.ErrVersionMismatch, "server speaks "+protocol.Version)
		return "", nil
	}

	out = make(chan []byte, 32)
	respCh := make(chan session.JoinResponse, 1)
	s.sess.Join() <- session.JoinRequest{Name: hello.Name, Out: out, Resp: respCh}
	resp := <-respCh

	if err := writeJSON(conn, resp.Welcome); err != nil {
		return "", nil
	}
	return resp.ObserverID, out
}

// reject sends a typed ERROR then closes; best effort on both.
func (s *Server) reject(conn *websocket.Conn, code, message string) {
	_ = writeJSON(conn, protocol.ErrorMsg{
		Type:            protocol.TypeError,
		ProtocolVersion: protocol.Version,
		Code:            code,
		Message:         message,
	})
	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.ClosePolicyViolation, code),
		time.Now().Add(time.Second))
}

func writeJSON(conn *websocket.Conn, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_ = conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
	return conn.WriteMessage(websocket.TextMessage, b)
}
