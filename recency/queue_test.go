package recency

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emilybidder/agecache/types"
)

func entry(key string) types.Entry[string, int] {
	return types.Entry[string, int]{Key: key}
}

func TestPushAndPopOrder(t *testing.T) {
	q := NewQueue[string, int]()

	q.PushNewest(entry("a"))
	q.PushNewest(entry("b"))
	q.PushNewest(entry("c"))

	require.Equal(t, 3, q.Len())
	assert.Equal(t, []string{"a", "b", "c"}, q.Keys())

	got, ok := q.PopOldest()
	require.True(t, ok)
	assert.Equal(t, "a", got.Key)

	got, ok = q.PopOldest()
	require.True(t, ok)
	assert.Equal(t, "b", got.Key)

	got, ok = q.PopOldest()
	require.True(t, ok)
	assert.Equal(t, "c", got.Key)

	assert.Equal(t, 0, q.Len())
}

func TestPopEmpty(t *testing.T) {
	q := NewQueue[string, int]()

	_, ok := q.PopOldest()
	assert.False(t, ok)

	_, ok = q.PeekOldest()
	assert.False(t, ok)
}

func TestPeekDoesNotRemove(t *testing.T) {
	q := NewQueue[string, int]()
	q.PushNewest(entry("a"))

	got, ok := q.PeekOldest()
	require.True(t, ok)
	assert.Equal(t, "a", got.Key)
	assert.Equal(t, 1, q.Len())
}

func TestRemoveArbitrary(t *testing.T) {
	tests := []struct {
		name   string
		remove string
		want   []string
	}{
		{"oldest", "a", []string{"b", "c"}},
		{"middle", "b", []string{"a", "c"}},
		{"newest", "c", []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewQueue[string, int]()
			handles := map[string]Handle{
				"a": q.PushNewest(entry("a")),
				"b": q.PushNewest(entry("b")),
				"c": q.PushNewest(entry("c")),
			}

			removed := q.Remove(handles[tt.remove])
			assert.Equal(t, tt.remove, removed.Key)
			assert.Equal(t, tt.want, q.Keys())
			assert.Equal(t, 2, q.Len())
		})
	}
}

func TestRemoveOnlyEntry(t *testing.T) {
	q := NewQueue[string, int]()
	h := q.PushNewest(entry("a"))

	q.Remove(h)
	assert.Equal(t, 0, q.Len())
	assert.Equal(t, None, q.oldest)
	assert.Equal(t, None, q.newest)

	// The queue is usable again afterwards.
	q.PushNewest(entry("b"))
	assert.Equal(t, []string{"b"}, q.Keys())
}

func TestTouchPattern(t *testing.T) {
	// A "touch" is remove-then-append under a fresh handle.
	q := NewQueue[string, int]()
	ha := q.PushNewest(entry("a"))
	q.PushNewest(entry("b"))

	moved := q.Remove(ha)
	q.PushNewest(moved)

	assert.Equal(t, []string{"b", "a"}, q.Keys())
}

func TestArenaSlotsAreRecycled(t *testing.T) {
	q := NewQueue[string, int]()

	h1 := q.PushNewest(entry("a"))
	q.PushNewest(entry("b"))
	q.Remove(h1)

	// The freed slot is handed back out before the arena grows.
	h3 := q.PushNewest(entry("c"))
	assert.Equal(t, h1, h3)
	assert.Len(t, q.nodes, 2)
	assert.Equal(t, []string{"b", "c"}, q.Keys())
}

func TestRemovedSlotIsZeroed(t *testing.T) {
	q := NewQueue[string, int]()
	h := q.PushNewest(types.Entry[string, int]{Key: "a", Value: 42})
	q.Remove(h)

	// The arena must not pin removed entries.
	assert.Equal(t, types.Entry[string, int]{}, q.nodes[h].entry)
}
