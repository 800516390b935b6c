package ws

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntityChangedSkipsClosedConn(t *testing.T) {
	hub := NewHub()
	open := &Conn{Send: make(chan []byte, 1)}
	gone := &Conn{Send: make(chan []byte, 1)}
	hub.Register(open)
	hub.Register(gone)
	gone.Close()

	hub.EntityChanged("clients", "updated", 7)

	select {
	case msg := <-open.Send:
		assert.Contains(t, string(msg), `"entity":"clients"`)
		assert.Contains(t, string(msg), `"action":"updated"`)
	default:
		t.Fatal("open connection should receive the event")
	}
}

func TestBroadcastDuringCloseDoesNotPanic(t *testing.T) {
	hub := NewHub()
	conns := make([]*Conn, 50)
	for i := range conns {
		conns[i] = &Conn{Send: make(chan []byte, 1)}
		hub.Register(conns[i])
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for _, c := range conns {
			c.Close()
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			hub.EntityChanged("rewards", "updated", uint(i))
		}
	}()
	wg.Wait()
}
