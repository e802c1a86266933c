package playback

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osa030/19player/internal/domain/track"
)

func TestQueue_Next(t *testing.T) {
	for size := 1; size <= 4; size++ {
		for start := 0; start < size; start++ {
			tracks := make([]track.Track, size)
			for i := range tracks {
				tracks[i] = testTrack(string(rune('a'+i)), i+1)
			}
			q := NewQueue(tracks, tracks[start].ID)

			moved := q.Next()

			expected := start + 1
			if expected > size-1 {
				expected = size - 1
			}
			assert.Equal(t, expected, q.Index(), "size=%d start=%d", size, start)
			assert.Equal(t, start < size-1, moved, "size=%d start=%d", size, start)
		}
	}
}

func TestQueue_Previous(t *testing.T) {
	q := NewQueue(testTracks("a", "b", "c"), "b")

	assert.True(t, q.Previous())
	assert.Equal(t, 0, q.Index())
	assert.False(t, q.Previous())
	assert.Equal(t, 0, q.Index())

	empty := Queue{}
	assert.False(t, empty.Previous())
	assert.False(t, empty.Next())
}

func TestQueue_Replace(t *testing.T) {
	tests := []struct {
		name     string
		startID  string
		expected int
	}{
		{name: "start in context", startID: "c", expected: 2},
		{name: "start absent", startID: "zz", expected: 0},
		{name: "empty start", startID: "", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewQueue(testTracks("x"), "x")
			q.Replace(testTracks("a", "b", "c"), tt.startID)
			assert.Equal(t, tt.expected, q.Index())
			assert.Equal(t, 3, q.Len())
		})
	}
}

func TestQueue_AppendAndClear(t *testing.T) {
	q := NewQueue(testTracks("a", "b"), "b")

	q.Append(testTrack("c", 3))
	assert.Equal(t, 1, q.Index())
	assert.Equal(t, 3, q.Len())
	assert.False(t, q.AtEnd())

	q.Clear()
	assert.Equal(t, 0, q.Index())
	assert.Equal(t, 0, q.Len())
	assert.True(t, q.AtEnd())
	_, ok := q.Current()
	assert.False(t, ok)
}

func TestQueue_TracksIsCopy(t *testing.T) {
	source := testTracks("a", "b")
	q := NewQueue(source, "a")

	source[0].Title = "changed"
	got := q.Tracks()
	got[1].Title = "changed too"

	cur, ok := q.Current()
	assert.True(t, ok)
	assert.Equal(t, "Title a", cur.Title)
	assert.Equal(t, "Title b", q.Tracks()[1].Title)
}
