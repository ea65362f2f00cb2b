package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/png"
	"log/slog"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/google/uuid"

	mandel "github.com/marben/mandelview"
	"github.com/marben/mandelview/internal/metrics"
)

// clientMessage is an input event in pixel space of the session display.
type clientMessage struct {
	Type string `json:"type"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

// statusMessage describes the session view after every event.
type statusMessage struct {
	Type   string     `json:"type"`
	Width  int        `json:"width"`
	Height int        `json:"height"`
	Zoom   int        `json:"zoom"`
	Center [2]float64 `json:"center"`
	Cursor [2]float64 `json:"cursor"`
	Text   string     `json:"text"`
}

var eventKinds = map[string]mandel.EventKind{
	mandel.ZoomIn.String():      mandel.ZoomIn,
	mandel.ZoomOut.String():     mandel.ZoomOut,
	mandel.CursorMoved.String(): mandel.CursorMoved,
}

// errMalformed is returned when a client sends something that is not JSON.
var errMalformed = errors.New("malformed client message")

type session struct {
	conn     *websocket.Conn
	explorer *mandel.Explorer
	log      *slog.Logger
}

func (s *server) serveSession(ctx context.Context, conn *websocket.Conn, remote string) {
	defer conn.CloseNow()

	sess := &session{
		conn:     conn,
		explorer: mandel.NewExplorer(s.cfg.Display.Width, s.cfg.Display.Height, s.cfg.Base(), s.scheduler),
		log:      s.log.With("session", uuid.NewString(), "remote", remote),
	}

	metrics.SessionOpened()
	defer metrics.SessionClosed()
	sess.log.Info("session opened")

	err := sess.run(ctx)
	switch websocket.CloseStatus(err) {
	case websocket.StatusNormalClosure, websocket.StatusGoingAway:
		sess.log.Info("session closed", "frames", sess.explorer.Frames())
		return
	}
	if errors.Is(err, errMalformed) {
		conn.Close(websocket.StatusUnsupportedData, "malformed message")
	}
	sess.log.Warn("session ended", "frames", sess.explorer.Frames(), "err", err)
}

// run presents the initial frame and then handles events until the
// connection ends. Events are handled one at a time, so the view is never
// changed while a frame is being computed.
func (s *session) run(ctx context.Context) error {
	if err := s.present(ctx); err != nil {
		return err
	}
	for {
		typ, data, err := s.conn.Read(ctx)
		if err != nil {
			return err
		}
		if typ != websocket.MessageText {
			s.log.Debug("ignoring binary message", "len", len(data))
			continue
		}

		var msg clientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			return fmt.Errorf("%w: %v", errMalformed, err)
		}
		kind, ok := eventKinds[msg.Type]
		if !ok {
			s.log.Warn("unknown message type", "type", msg.Type)
			continue
		}
		metrics.RecordEvent(kind)

		ev := mandel.Event{Kind: kind, Point: s.explorer.PixelToPlane(image.Pt(msg.X, msg.Y))}
		if s.explorer.Apply(ev) {
			s.log.Debug("view changed", "event", kind, "center", ev.Point, "zoom", s.explorer.Plane().ZoomLevel())
			err = s.present(ctx)
		} else {
			err = s.sendStatus(ctx)
		}
		if err != nil {
			return err
		}
	}
}

// present computes the frame if needed and sends the status followed by the
// frame, so the client knows the frame size before drawing it.
func (s *session) present(ctx context.Context) error {
	buf := s.explorer.Present()
	metrics.ObserveZoom(s.explorer.Plane().ZoomLevel())

	var b bytes.Buffer
	if err := png.Encode(&b, buf.Image()); err != nil {
		return fmt.Errorf("encode frame: %w", err)
	}
	if err := s.sendStatus(ctx); err != nil {
		return err
	}
	if err := s.conn.Write(ctx, websocket.MessageBinary, b.Bytes()); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

func (s *session) sendStatus(ctx context.Context) error {
	p := s.explorer.Plane()
	v := p.View()
	m := p.MouseLocation()
	res := s.explorer.Resolution()
	return wsjson.Write(ctx, s.conn, statusMessage{
		Type:   "status",
		Width:  res.X,
		Height: res.Y,
		Zoom:   p.ZoomLevel(),
		Center: [2]float64{v.Center.X, v.Center.Y},
		Cursor: [2]float64{m.X, m.Y},
		Text:   p.Status(),
	})
}
