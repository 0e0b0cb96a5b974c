package storage

import (
	"errors"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/km1000101/the-Editors-hub/internal/models"
	"github.com/km1000101/the-Editors-hub/internal/structures"
	"github.com/km1000101/the-Editors-hub/internal/testutil"
)

// fakeScheduleFunc captures scheduled callbacks so tests fire the debounce
// timer deterministically.
type fakeScheduleFunc struct {
	delays    []time.Duration
	callbacks []func()
}

func (f *fakeScheduleFunc) schedule(d time.Duration, fn func()) *time.Timer {
	f.delays = append(f.delays, d)
	f.callbacks = append(f.callbacks, fn)
	// A real but far-future timer, so Stop has something to stop.
	return time.AfterFunc(time.Hour, func() {})
}

func (f *fakeScheduleFunc) fireLast() {
	f.callbacks[len(f.callbacks)-1]()
}

func testAutosaver() (*DraftAutosaver, *testutil.MockKeyValueStore, *fakeScheduleFunc) {
	kv := testutil.NewMockKeyValueStore()
	conf := &structures.Config{
		Draft: structures.DraftConfig{AutosaveDelay: 2 * time.Second},
	}
	a := NewDraftAutosaver(conf, kv, &testutil.MockLogger{})
	fake := &fakeScheduleFunc{}
	a.SetScheduleFunc(fake.schedule)
	return a, kv, fake
}

func TestUpdate_SchedulesWithConfiguredDelay(t *testing.T) {
	a, _, fake := testAutosaver()

	a.Update(models.Draft{Title: "t", Content: "c"})

	require.Len(t, fake.delays, 1)
	assert.Equal(t, 2*time.Second, fake.delays[0])
}

func TestUpdate_DebouncesToLatestDraft(t *testing.T) {
	a, kv, fake := testAutosaver()

	a.Update(models.Draft{Title: "first"})
	a.Update(models.Draft{Title: "second"})
	a.Update(models.Draft{Title: "final", Content: "text"})

	// Only the last scheduled callback fires, with the latest draft.
	fake.fireLast()

	data, ok := kv.Data[KeyDraft]
	require.True(t, ok)
	var saved models.Draft
	require.NoError(t, json.Unmarshal(data, &saved))
	assert.Equal(t, "final", saved.Title)
	assert.Len(t, kv.Saves, 1)
}

func TestFlush_SkipsEmptyDraft(t *testing.T) {
	a, kv, _ := testAutosaver()

	a.Update(models.Draft{Excerpt: "only excerpt", Tags: "a,b"})
	require.NoError(t, a.Flush())

	assert.Empty(t, kv.Saves)
}

func TestFlush_PropagatesSaveError(t *testing.T) {
	a, kv, _ := testAutosaver()
	kv.SaveErr = errors.New("disk full")

	a.Update(models.Draft{Title: "t"})
	assert.Error(t, a.Flush())
}

func TestClear_RemovesStoredDraftAndPending(t *testing.T) {
	a, kv, _ := testAutosaver()

	a.Update(models.Draft{Title: "t", Content: "c"})
	require.NoError(t, a.Flush())
	require.Contains(t, kv.Data, KeyDraft)

	require.NoError(t, a.Clear())

	assert.NotContains(t, kv.Data, KeyDraft)
	// The pending draft is gone too: flushing again saves nothing.
	require.NoError(t, a.Flush())
	assert.Len(t, kv.Saves, 1)
}

func TestCancel_StopsTimerWithoutSaving(t *testing.T) {
	a, kv, fake := testAutosaver()

	a.Update(models.Draft{Title: "t"})
	a.Cancel()

	require.Len(t, fake.callbacks, 1)
	assert.Empty(t, kv.Saves)
}

func TestRestore_RoundTrip(t *testing.T) {
	a, _, _ := testAutosaver()

	a.Update(models.Draft{Title: "t", Content: "c", Tags: "go,blog"})
	require.NoError(t, a.Flush())

	restored, ok := a.Restore()
	require.True(t, ok)
	assert.Equal(t, "t", restored.Title)
	assert.Equal(t, "go,blog", restored.Tags)
}

func TestRestore_MissingDraft(t *testing.T) {
	a, _, _ := testAutosaver()
	_, ok := a.Restore()
	assert.False(t, ok)
}

func TestRestore_CorruptDraftDropped(t *testing.T) {
	a, kv, _ := testAutosaver()
	kv.Data[KeyDraft] = []byte("{broken")

	_, ok := a.Restore()
	assert.False(t, ok)
}

func TestRestore_EmptyStoredDraftIgnored(t *testing.T) {
	a, kv, _ := testAutosaver()
	kv.Data[KeyDraft] = []byte(`{"title":"","content":""}`)

	_, ok := a.Restore()
	assert.False(t, ok)
}
