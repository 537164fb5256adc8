package net

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"StrawBoard/internal/control"
	"StrawBoard/internal/ink"

	"github.com/google/go-cmp/cmp"
	"github.com/gorilla/websocket"
)

func TestMessageEvent(t *testing.T) {
	tests := []struct {
		msg  PenMessage
		want control.Event
	}{
		{PenMessage{Type: "down", X: 1, Y: 2}, control.Event{Kind: control.Down, Pos: ink.Pt(1, 2)}},
		{PenMessage{Type: "move", X: 3, Y: 4, Shift: true}, control.Event{Kind: control.Move, Pos: ink.Pt(3, 4), Mods: control.ModShift}},
		{PenMessage{Type: "up", Ctrl: true}, control.Event{Kind: control.Up, Mods: control.ModCtrl}},
		{PenMessage{Type: "key", Code: control.KeyStraighten}, control.Event{Kind: control.Key, Code: control.KeyStraighten}},
	}
	for _, tt := range tests {
		got, err := tt.msg.Event()
		if err != nil {
			t.Errorf("%+v: %v", tt.msg, err)
			continue
		}
		if d := cmp.Diff(tt.want, got); d != "" {
			t.Error(d)
		}
		if d := cmp.Diff(tt.msg, MessageOf(got)); d != "" {
			t.Errorf("MessageOf: %s", d)
		}
	}

	for _, bad := range []PenMessage{{Type: "hover"}, {Type: ""}, {Type: "key"}} {
		if _, err := bad.Event(); err == nil {
			t.Errorf("%+v: expected an error", bad)
		}
	}
}

func TestShareLink(t *testing.T) {
	link := ShareLink("10.0.0.7", 8888)
	if link != "strawboard://10.0.0.7:8888" {
		t.Errorf("got %q", link)
	}
	if addr, ok := ParseLink(link + "/"); !ok || addr != "10.0.0.7:8888" {
		t.Errorf("ParseLink(%q) = %q, %v", link, addr, ok)
	}
	for _, bad := range []string{"10.0.0.7:8888", "strawboard://", "http://x:1"} {
		if _, ok := ParseLink(bad); ok {
			t.Errorf("ParseLink(%q) accepted", bad)
		}
	}
}

func TestPenServer(t *testing.T) {
	events := make(chan control.Event, 16)
	srv := NewPenServer(func(ev control.Event) bool {
		events <- ev
		return true
	})
	ts := httptest.NewServer(srv)
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	pen, err := DialPen(ctx, strings.TrimPrefix(ts.URL, "http://"))
	if err != nil {
		t.Fatal(err)
	}
	defer pen.Close()

	want := []control.Event{
		{Kind: control.Down, Pos: ink.Pt(1, 1)},
		{Kind: control.Move, Pos: ink.Pt(5, 9), Mods: control.ModShift},
		{Kind: control.Up, Pos: ink.Pt(5, 9), Mods: control.ModCtrl},
	}
	if err := pen.Send(want[0]); err != nil {
		t.Fatal(err)
	}
	// Frames that do not decode are skipped without dropping the pen.
	pen.mu.Lock()
	pen.conn.WriteMessage(websocket.TextMessage, []byte("{not json"))
	pen.conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"wiggle"}`))
	pen.mu.Unlock()
	for _, ev := range want[1:] {
		if err := pen.Send(ev); err != nil {
			t.Fatal(err)
		}
	}

	var got []control.Event
	for range want {
		select {
		case ev := <-events:
			got = append(got, ev)
		case <-ctx.Done():
			t.Fatalf("timed out after %d events", len(got))
		}
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Error(d)
	}
	if n := srv.Peers.Count(); n != 1 {
		t.Errorf("got %d peers, want 1", n)
	}
}

func TestPenServerStopsWhenSinkCloses(t *testing.T) {
	srv := NewPenServer(func(control.Event) bool { return false })
	ts := httptest.NewServer(srv)
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	pen, err := DialPen(ctx, strings.TrimPrefix(ts.URL, "http://"))
	if err != nil {
		t.Fatal(err)
	}
	defer pen.Close()

	if err := pen.Send(control.Event{Kind: control.Down}); err != nil {
		t.Fatal(err)
	}
	pen.conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	if _, _, err := pen.conn.ReadMessage(); err == nil {
		t.Error("expected the server to hang up")
	}
}
