package dc

import (
	"context"
	"sync"
	"time"

	"github.com/RafikBaaziz123/ConquEST/internal/world/app/port"
	"github.com/RafikBaaziz123/ConquEST/internal/world/entity"
	"github.com/RafikBaaziz123/ConquEST/modules/kit/logx"

	"go.uber.org/zap"
)

const (
	defaultFlushEvery = 3000 * time.Millisecond
	saveTimeout       = 2 * time.Second
	retryDelay        = 200 * time.Millisecond
)

// WorldDC 把一局对战的最新状态异步写入 MatchStore。
// 模拟线程只负责投递，写库在独立 goroutine 里进行；
// 积压时只保留版本最高的一份记录。
type WorldDC struct {
	store      port.MatchStore
	worldID    entity.WorldID
	level      string
	flushEvery time.Duration
	retryDelay time.Duration
	logger     logx.Logger

	mu         sync.Mutex
	pending    *port.MatchRecord
	version    uint64
	closed     bool
	flushed    bool
	lastTick   uint64
	lastStatus string
	lastOver   bool

	wake chan struct{}
	stop chan struct{}
	done chan struct{}
}

// NewWorldDC flushEvery <= 0 时使用默认的 3s。
func NewWorldDC(store port.MatchStore, worldID entity.WorldID, level string, flushEvery time.Duration, logger logx.Logger) *WorldDC {
	if flushEvery <= 0 {
		flushEvery = defaultFlushEvery
	}
	if logger == nil {
		logger = logx.Nop()
	}
	d := &WorldDC{
		store:      store,
		worldID:    worldID,
		level:      level,
		flushEvery: flushEvery,
		retryDelay: retryDelay,
		logger:     logger.With(zap.String("world_id", string(worldID))),
		wake:       make(chan struct{}, 1),
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
	}
	go d.writerLoop()
	return d
}

func (d *WorldDC) FlushEvery() time.Duration {
	return d.flushEvery
}

// Version 最近一次投递的版本号。
func (d *WorldDC) Version() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.version
}

// IsDirty tick 或对局状态相对上次投递有变化。
func (d *WorldDC) IsDirty(tick uint64, status string, over bool) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.isDirty(tick, status, over)
}

func (d *WorldDC) isDirty(tick uint64, status string, over bool) bool {
	return !d.flushed || d.lastTick != tick || d.lastStatus != status || d.lastOver != over
}

// Flush 投递一份记录；状态没有变化时跳过。
func (d *WorldDC) Flush(snap entity.WorldSnapshot, status string, over bool) {
	if d.store == nil {
		return
	}
	r, ok := d.buildNextRecord(snap, status, over)
	if !ok {
		return
	}
	d.enqueueLatest(r)
}

// Close 等待积压的记录写完。调用方应先 Flush 最终状态。
func (d *WorldDC) Close(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.stop)
	}
	d.mu.Unlock()

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *WorldDC) buildNextRecord(snap entity.WorldSnapshot, status string, over bool) (*port.MatchRecord, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed || !d.isDirty(snap.Tick, status, over) {
		return nil, false
	}
	d.version++
	d.flushed = true
	d.lastTick, d.lastStatus, d.lastOver = snap.Tick, status, over
	return &port.MatchRecord{
		WorldID:   d.worldID,
		Level:     d.level,
		Version:   d.version,
		Status:    status,
		Over:      over,
		Snapshot:  snap,
		UpdatedAt: time.Now(),
	}, true
}

func (d *WorldDC) enqueueLatest(r *port.MatchRecord) {
	if r == nil {
		return
	}

	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	if d.pending == nil || d.pending.Version < r.Version {
		d.pending = r
	}
	d.mu.Unlock()

	select {
	case d.wake <- struct{}{}:
	default:
	}
}

func (d *WorldDC) popPending() *port.MatchRecord {
	d.mu.Lock()
	defer d.mu.Unlock()
	r := d.pending
	d.pending = nil
	return r
}

func (d *WorldDC) requeueOnError(r *port.MatchRecord) bool {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return false
	}
	if d.pending == nil || d.pending.Version < r.Version {
		d.pending = r
	}
	d.mu.Unlock()

	select {
	case d.wake <- struct{}{}:
	default:
	}
	return true
}

func (d *WorldDC) writerLoop() {
	defer close(d.done)

	for {
		select {
		case <-d.wake:
			d.consumePending()
		case <-d.stop:
			d.consumePending()
			return
		}
	}
}

func (d *WorldDC) consumePending() {
	for {
		r := d.popPending()
		if r == nil {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		err := d.store.Save(ctx, r)
		cancel()
		if err == nil {
			continue
		}
		// 写库失败时重排当前记录；若已有更新记录，会被更高 version 覆盖。
		if !d.requeueOnError(r) {
			d.logger.Error("对局记录写入失败，已关闭不再重试", zap.Uint64("version", r.Version), zap.Error(err))
			return
		}
		d.logger.Warn("对局记录写入失败，稍后重试", zap.Uint64("version", r.Version), zap.Error(err))
		time.Sleep(d.retryDelay)
	}
}
