// pkg/viewer/helpers_test.go
package viewer

import (
	"context"
	"sync"
	"time"

	"scrollwish.link/pkg/media"
	"scrollwish.link/pkg/sched"
)

// saveRecorder SaveResponse cagrilarini kaydeder; Err ayarlanarak kayit
// hatasi simule edilir.
type saveRecorder struct {
	mu    sync.Mutex
	calls []ResponsePayload
	err   error
}

func (r *saveRecorder) save(_ context.Context, p ResponsePayload) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.calls = append(r.calls, p)
	return nil
}

func (r *saveRecorder) setErr(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.err = err
}

func (r *saveRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

func (r *saveRecorder) last() ResponsePayload {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls[len(r.calls)-1]
}

// testEnv standart test baglami: sanal saat, sahte medya ve kayit defteri.
type testEnv struct {
	clock   *sched.ManualClock
	factory *media.FakeTrackFactory
	capture *media.FakeCapture
	saves   *saveRecorder
}

func newTestEnv() *testEnv {
	return &testEnv{
		clock:   sched.NewManualClock(time.Date(2026, 2, 1, 12, 0, 0, 0, time.Local)),
		factory: &media.FakeTrackFactory{},
		capture: &media.FakeCapture{},
		saves:   &saveRecorder{},
	}
}

func (e *testEnv) context(width int) Context {
	return Context{
		Viewport:     StaticViewport{W: width, H: 800},
		Clock:        e.clock,
		Tracks:       e.factory,
		Capture:      e.capture,
		SaveResponse: e.saves.save,
	}
}
