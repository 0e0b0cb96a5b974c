package storage

import (
	"sync"
	"time"

	json "github.com/goccy/go-json"

	"github.com/km1000101/the-Editors-hub/internal/models"
	"github.com/km1000101/the-Editors-hub/internal/providers"
	"github.com/km1000101/the-Editors-hub/internal/structures"
)

// DraftAutosaver owns the editing session's draft buffer. Each Update
// resets a single debounce timer; when the timer fires the draft is written
// to storage if it has a title or content. Cancel and Clear stop the timer
// on every exit path (submit, reset, teardown).
type DraftAutosaver struct {
	mu      sync.Mutex
	kv      KeyValueStore
	logger  providers.Logger
	delay   time.Duration
	timer   *time.Timer
	pending models.Draft

	// schedule defaults to time.AfterFunc; tests swap it for a fake clock.
	schedule func(d time.Duration, f func()) *time.Timer
}

func NewDraftAutosaver(conf *structures.Config, kv KeyValueStore, logger providers.Logger) *DraftAutosaver {
	return &DraftAutosaver{
		kv:       kv,
		logger:   logger,
		delay:    conf.Draft.AutosaveDelay,
		schedule: time.AfterFunc,
	}
}

// Update replaces the pending draft and re-arms the debounce timer. At most
// one timer is pending at a time.
func (a *DraftAutosaver) Update(d models.Draft) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.pending = d
	if a.timer != nil {
		a.timer.Stop()
	}
	a.timer = a.schedule(a.delay, func() {
		if err := a.Flush(); err != nil {
			a.logger.Errorf(providers.TypeApp, "Draft autosave failed: %s", err)
		}
	})
}

// Flush writes the pending draft immediately. Empty drafts are not saved.
func (a *DraftAutosaver) Flush() error {
	a.mu.Lock()
	d := a.pending
	a.mu.Unlock()

	if d.Empty() {
		return nil
	}
	data, err := json.Marshal(d)
	if err != nil {
		return err
	}
	if err := a.kv.Save(KeyDraft, data); err != nil {
		return err
	}
	a.logger.Debugf(providers.TypeApp, "Draft saved automatically")
	return nil
}

// Cancel stops any pending timer without touching storage.
func (a *DraftAutosaver) Cancel() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
}

// Clear cancels the timer, forgets the pending draft and removes the stored
// one. Called after a successful submit or an explicit reset.
func (a *DraftAutosaver) Clear() error {
	a.mu.Lock()
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	a.pending = models.Draft{}
	a.mu.Unlock()

	return a.kv.Delete(KeyDraft)
}

// Restore loads the stored draft, if any. Corrupt drafts are dropped.
func (a *DraftAutosaver) Restore() (models.Draft, bool) {
	data, ok, err := a.kv.Load(KeyDraft)
	if err != nil || !ok {
		return models.Draft{}, false
	}
	var d models.Draft
	if err := json.Unmarshal(data, &d); err != nil {
		a.logger.Warnf(providers.TypeApp, "Corrupt draft buffer dropped: %s", err)
		return models.Draft{}, false
	}
	if d.Empty() {
		return models.Draft{}, false
	}
	return d, true
}

// SetScheduleFunc overrides timer creation. Test hook.
func (a *DraftAutosaver) SetScheduleFunc(fn func(time.Duration, func()) *time.Timer) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.schedule = fn
}
