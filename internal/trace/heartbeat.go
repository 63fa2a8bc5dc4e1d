package trace

import (
	"context"
	"runtime"
	"strconv"
	"sync"
	"time"
)

// Heartbeat пишет периодические события во время долгих прогонов по каталогу.
// Если после heartbeat нет span end для файла, значит файл завис.
type Heartbeat struct {
	tracer Tracer
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// StartHeartbeat запускает горутину с тикером; nil, если трассировка выключена.
func StartHeartbeat(tracer Tracer, interval time.Duration) *Heartbeat {
	if tracer == nil || !tracer.Enabled() || interval <= 0 {
		return nil
	}
	ctx, cancel := context.WithCancel(context.Background())
	h := &Heartbeat{
		tracer: tracer,
		cancel: cancel,
		done:   make(chan struct{}),
	}
	go h.loop(ctx, interval)
	return h
}

func (h *Heartbeat) loop(ctx context.Context, interval time.Duration) {
	defer close(h.done)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var beats uint64
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			beats++
			h.tracer.Emit(&Event{
				Time:   now,
				Seq:    NextSeq(),
				Kind:   KindHeartbeat,
				Scope:  ScopeDriver,
				GID:    getGoroutineID(),
				Name:   "heartbeat",
				Detail: "#" + strconv.FormatUint(beats, 10),
				Extra:  runtimeGauges(),
			})
		}
	}
}

// runtimeGauges: число горутин растёт вместе с пулом воркеров, heap с размером файлов.
func runtimeGauges() map[string]string {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return map[string]string{
		"goroutines": strconv.Itoa(runtime.NumGoroutine()),
		"heap_kb":    strconv.FormatUint(ms.HeapAlloc/1024, 10),
	}
}

// Stop останавливает тикер и ждёт выхода горутины. Повторный вызов безопасен.
func (h *Heartbeat) Stop() {
	if h == nil {
		return
	}
	h.once.Do(func() {
		h.cancel()
		<-h.done
	})
}
