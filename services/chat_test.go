package services

import (
	"errors"
	"testing"

	"cropconnect-client/models"
)

// fakeChatAPI records requests and serves canned threads.
type fakeChatAPI struct {
	thread    []models.Message
	threadErr error
	sendErr   error

	fetchCalls int
	sendCalls  int
	lastSent   [3]string
}

func (f *fakeChatAPI) Messages(cropID string) ([]models.Message, error) {
	f.fetchCalls++
	return f.thread, f.threadErr
}

func (f *fakeChatAPI) SendMessage(cropID, senderID, text string) error {
	f.sendCalls++
	f.lastSent = [3]string{cropID, senderID, text}
	return f.sendErr
}

func TestSendEmptyTextIsNoOp(t *testing.T) {
	fake := &fakeChatAPI{}
	chat := NewChat(fake, newTestLogger())

	for _, text := range []string{"", "   ", "\n\t "} {
		sent, err := chat.Send("c1", "u1", text)
		if err != nil {
			t.Errorf("Send(%q): unexpected error %v", text, err)
		}
		if sent {
			t.Errorf("Send(%q): reported as sent", text)
		}
	}
	if fake.sendCalls != 0 {
		t.Errorf("empty sends issued %d network requests, want 0", fake.sendCalls)
	}
}

func TestSendTrimsText(t *testing.T) {
	fake := &fakeChatAPI{}
	chat := NewChat(fake, newTestLogger())

	sent, err := chat.Send("c1", "u1", "  hello there  ")
	if err != nil || !sent {
		t.Fatalf("Send: sent=%v err=%v", sent, err)
	}
	if fake.lastSent != [3]string{"c1", "u1", "hello there"} {
		t.Errorf("unexpected send: %v", fake.lastSent)
	}
}

func TestSendSurfacesFailure(t *testing.T) {
	fake := &fakeChatAPI{sendErr: errors.New("boom")}
	chat := NewChat(fake, newTestLogger())

	sent, err := chat.Send("c1", "u1", "hi")
	if !sent || err == nil {
		t.Errorf("Send failure: sent=%v err=%v, want sent=true with error", sent, err)
	}
}

func TestThreadFailureReturnsError(t *testing.T) {
	fake := &fakeChatAPI{threadErr: errors.New("network down")}
	chat := NewChat(fake, newTestLogger())

	if _, err := chat.Thread("c1"); err == nil {
		t.Error("expected error from failed fetch")
	}
}

func TestThreadPreservesServerOrder(t *testing.T) {
	fake := &fakeChatAPI{thread: []models.Message{
		{ID: "m2", Body: "second"},
		{ID: "m1", Body: "first"},
	}}
	chat := NewChat(fake, newTestLogger())

	msgs, err := chat.Thread("c1")
	if err != nil {
		t.Fatalf("Thread: %v", err)
	}
	// Even out-of-order server responses are rendered as returned.
	if msgs[0].ID != "m2" || msgs[1].ID != "m1" {
		t.Errorf("thread reordered: %+v", msgs)
	}
}
