package service

import (
	"context"
	"sync"
	"time"

	"github.com/isavelev/go-cart-keeper/internal/logger"
	"github.com/isavelev/go-cart-keeper/internal/session"
)

// PersistJob debounces collection write-back for one partition. It is
// registered as the collection's change observer; each observation captures
// the session's user id and epoch at that moment, then (re)starts the
// quiescence timer. When the timer fires, the snapshot is flushed once,
// trailing-edge, unless the session epoch has moved on in the meantime.
//
// The job is idle until Arm is called; hydration happens while disarmed so
// the hydration SetAll can never be mistaken for a user mutation.
type PersistJob struct {
	name    string
	window  time.Duration
	session *session.Manager
	flush   func(ctx context.Context, userID string) error
	logger  *logger.Logger

	mu           sync.Mutex
	timer        *time.Timer
	armed        bool
	stopped      bool
	pendingUID   string
	pendingEpoch uint64

	// flushMu is held for the duration of a flush so Stop can wait for an
	// in-flight write to finish.
	flushMu sync.Mutex
}

// NewPersistJob creates a disarmed job for one partition. flush receives the
// user id captured when the mutation was observed and must write the
// collection's current snapshot. If window is zero or negative it defaults
// to 500ms.
func NewPersistJob(
	name string,
	window time.Duration,
	sessions *session.Manager,
	flush func(ctx context.Context, userID string) error,
	log *logger.Logger,
) *PersistJob {
	if window <= 0 {
		window = 500 * time.Millisecond
	}

	return &PersistJob{
		name:    name,
		window:  window,
		session: sessions,
		flush:   flush,
		logger:  log,
	}
}

// CollectionChanged is the collection's change observer. It drops the event
// when the job is disarmed, stopped, or the current session has no persist
// id (unresolved, signed out, guest). Otherwise it captures (uid, epoch) and
// resets the quiescence timer, coalescing rapid mutations into one write.
func (j *PersistJob) CollectionChanged() {
	current := j.session.Current()
	uid := current.PersistID()

	j.mu.Lock()
	defer j.mu.Unlock()

	if j.stopped || !j.armed || uid == "" {
		return
	}

	j.pendingUID = uid
	j.pendingEpoch = current.Epoch

	if j.timer == nil {
		j.timer = time.AfterFunc(j.window, j.flushPending)
		return
	}
	j.timer.Reset(j.window)
}

// Arm enables write-back. Called after hydration completes.
func (j *PersistJob) Arm() {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.armed = true
}

// Disarm disables write-back and cancels any pending timer. Called before
// hydration and on session transitions; a pending write scheduled for the
// previous session must not fire.
func (j *PersistJob) Disarm() {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.armed = false
	j.pendingUID = ""
	if j.timer != nil {
		j.timer.Stop()
	}
}

// Stop permanently disables the job, cancels any pending timer and waits for
// an in-flight flush to complete. Safe to call more than once.
func (j *PersistJob) Stop() {
	j.mu.Lock()
	j.stopped = true
	j.armed = false
	if j.timer != nil {
		j.timer.Stop()
	}
	j.mu.Unlock()

	// taking flushMu blocks until a flush that already fired returns
	j.flushMu.Lock()
	defer j.flushMu.Unlock()
}

func (j *PersistJob) flushPending() {
	j.flushMu.Lock()
	defer j.flushMu.Unlock()

	j.mu.Lock()
	uid := j.pendingUID
	epoch := j.pendingEpoch
	stopped := j.stopped
	j.mu.Unlock()

	if stopped || uid == "" {
		return
	}

	// the session moved on since the mutation was observed: writing now
	// could land under the wrong user id, so the stale write is discarded
	if current := j.session.Current(); current.Epoch != epoch {
		j.logger.Debug().
			Str("func", "PersistJob.flushPending").
			Str("job", j.name).
			Str("user_id", uid).
			Uint64("write_epoch", epoch).
			Uint64("session_epoch", current.Epoch).
			Msg("discarding stale write")
		return
	}

	if err := j.flush(context.Background(), uid); err != nil {
		// in-memory state stays authoritative; the next mutation's
		// debounced write is the retry
		j.logger.Warn().Err(err).
			Str("func", "PersistJob.flushPending").
			Str("job", j.name).
			Str("user_id", uid).
			Msg("snapshot write failed")
		return
	}

	j.logger.Debug().
		Str("func", "PersistJob.flushPending").
		Str("job", j.name).
		Str("user_id", uid).
		Msg("snapshot persisted")
}
