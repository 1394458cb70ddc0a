package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchTicketsDeliversAndStopsOnCancel(t *testing.T) {
	var polls int32
	mux := http.NewServeMux()
	mux.HandleFunc("/support/list", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&polls, 1)
		writeEnvelope(w, http.StatusOK, true, "Tickets fetched!", map[string]interface{}{
			"tickets": []Ticket{{ID: 1, Subject: "login broken", Status: "open"}},
		})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	snapshots := New(srv.URL, "token").WatchTickets(ctx, 15*time.Millisecond)

	// The first snapshot arrives without waiting for the interval
	first := <-snapshots
	require.NoError(t, first.Err)
	require.Len(t, first.Tickets, 1)
	assert.Equal(t, "login broken", first.Tickets[0].Subject)

	second := <-snapshots
	require.NoError(t, second.Err)

	cancel()

	// Drain until the watcher closes the channel
	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-snapshots:
			if !ok {
				goto closed
			}
		case <-deadline:
			t.Fatal("watcher did not stop after cancel")
		}
	}
closed:

	// No further polls once stopped
	settled := atomic.LoadInt32(&polls)
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, settled, atomic.LoadInt32(&polls))
}

func TestWatchTicketsSurfacesPollErrors(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/support/list", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusInternalServerError, false, "Something went wrong!", nil)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	snapshots := New(srv.URL, "token").WatchTickets(ctx, 15*time.Millisecond)

	snap := <-snapshots
	assert.Error(t, snap.Err)
	assert.NotNil(t, snap.Tickets)

	// The watcher keeps polling through errors
	snap = <-snapshots
	assert.Error(t, snap.Err)
}

func TestWatchSystemStatus(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/system/status", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, true, "Status fetched!", SystemStatus{
			AppMaintenance: true,
			Message:        "Scheduled upgrade",
		})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	snapshots := New(srv.URL, "").WatchSystemStatus(ctx, 15*time.Millisecond)

	snap := <-snapshots
	require.NoError(t, snap.Err)
	assert.True(t, snap.Status.AppMaintenance)
	assert.Equal(t, "Scheduled upgrade", snap.Status.Message)

	cancel()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-snapshots:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("watcher did not stop after cancel")
		}
	}
}
