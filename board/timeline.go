package board

import (
	"errors"

	"tailscale.com/util/deephash"
)

// ErrNoSnapshots indicates a Timeline built from an empty snapshot list.
var ErrNoSnapshots = errors.New("board: timeline needs at least one snapshot")

// Timeline is a periodic sequence of equally sized snapshots. Phase t and
// phase t+Period() resolve to the same snapshot.
type Timeline[T any] struct {
	snapshots     []*Grid[T]
	height, width int
}

// NewTimeline builds a timeline cycling through snapshots in order.
// All snapshots must share one extent.
func NewTimeline[T any](snapshots []*Grid[T]) (*Timeline[T], error) {
	if len(snapshots) == 0 {
		return nil, ErrNoSnapshots
	}
	h, w := snapshots[0].height, snapshots[0].width
	for _, s := range snapshots[1:] {
		if s.height != h || s.width != w {
			return nil, ErrNonRectangular
		}
	}
	cp := make([]*Grid[T], len(snapshots))
	copy(cp, snapshots)
	return &Timeline[T]{snapshots: cp, height: h, width: w}, nil
}

// Period returns the cycle length.
func (tl *Timeline[T]) Period() int { return len(tl.snapshots) }

// Height returns the spatial row count.
func (tl *Timeline[T]) Height() int { return tl.height }

// Width returns the spatial column count.
func (tl *Timeline[T]) Width() int { return tl.width }

// Phase reduces an absolute time to its phase in [0, Period()).
func (tl *Timeline[T]) Phase(t int) int {
	return mod(t, len(tl.snapshots))
}

// SnapshotAt returns the board as it stands at time t.
func (tl *Timeline[T]) SnapshotAt(t int) *Grid[T] {
	return tl.snapshots[tl.Phase(t)]
}

// Contains reports whether the spatial part of n lies within the extent.
func (tl *Timeline[T]) Contains(n Timed) bool {
	return n.Row >= 0 && n.Row < tl.height && n.Col >= 0 && n.Col < tl.width
}

// ValueAt returns the value of n's cell in the snapshot for n's phase.
func (tl *Timeline[T]) ValueAt(n Timed) (T, error) {
	return tl.SnapshotAt(n.Phase).ValueAt(n.Cell)
}

// Fingerprint returns the content hash of the snapshot at time t.
func (tl *Timeline[T]) Fingerprint(t int) deephash.Sum {
	return tl.SnapshotAt(t).Fingerprint()
}
