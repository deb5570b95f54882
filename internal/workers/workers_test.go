package workers

import (
	"context"
	"testing"
)

// recordingWorker tracks lifecycle calls and their global order.
type recordingWorker struct {
	order      *[]string
	name       string
	startCount int
	stopCount  int
}

func (r *recordingWorker) Start(_ context.Context) {
	r.startCount++
	*r.order = append(*r.order, "start:"+r.name)
}

func (r *recordingWorker) Stop() {
	r.stopCount++
	*r.order = append(*r.order, "stop:"+r.name)
}

func TestWorkers_StartAndStopAll(t *testing.T) {
	var order []string
	w1 := &recordingWorker{order: &order, name: "a"}
	w2 := &recordingWorker{order: &order, name: "b"}

	ws := NewWorkers(w1, w2)
	ws.Start(context.Background())
	ws.Stop()

	for i, w := range []*recordingWorker{w1, w2} {
		if w.startCount != 1 || w.stopCount != 1 {
			t.Errorf("worker[%d]: expected one start and one stop, got %d/%d", i, w.startCount, w.stopCount)
		}
	}
}

func TestWorkers_StopsInReverseOrder(t *testing.T) {
	var order []string
	w1 := &recordingWorker{order: &order, name: "a"}
	w2 := &recordingWorker{order: &order, name: "b"}

	ws := NewWorkers(w1, w2)
	ws.Start(context.Background())
	ws.Stop()

	want := []string{"start:a", "start:b", "stop:b", "stop:a"}
	for i, step := range want {
		if order[i] != step {
			t.Fatalf("step %d: expected %q, got %q (full order %v)", i, step, order[i], order)
		}
	}
}

func TestWorkers_Empty(t *testing.T) {
	ws := NewWorkers()

	// must not panic with no registered workers
	ws.Start(context.Background())
	ws.Stop()
}

func TestFunc_NilCallbacks(t *testing.T) {
	var f Func

	// both callbacks absent: no panic
	f.Start(context.Background())
	f.Stop()
}
