package voronoi

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/emirpasic/gods/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func siteWithID(id int) Site {
	return Site{X: float64(id), Y: float64(id), ID: id}
}

func TestBeachLineInitPanicsOnNonEmpty(t *testing.T) {
	b := newBeachLine()
	b.init(siteWithID(0))
	assert.Panics(t, func() { b.init(siteWithID(1)) })
}

func TestBeachLineInsertAfterAndBeforeOrdering(t *testing.T) {
	b := newBeachLine()
	root := b.init(siteWithID(5))

	right := b.insertAfter(root, siteWithID(10))
	left := b.insertBefore(root, siteWithID(0))

	var order []int
	b.inOrder(func(s Site) { order = append(order, s.ID) })
	assert.Equal(t, []int{0, 5, 10}, order)

	assert.Equal(t, left, b.predecessor(root))
	assert.Equal(t, right, b.successor(root))
	assert.True(t, b.predecessor(left).isNull())
	assert.True(t, b.successor(right).isNull())
}

// TestBeachLineAgainstRedBlackTreeOracle builds up the beach line the way
// the sweep actually does: each new arc is positioned relative to a
// neighbour already known to be adjacent to it (here, always the current
// rightmost arc), never by an independent key comparison. The resulting
// in-order traversal is checked against a textbook red-black tree fed the
// same keys in the same sorted order, as a structural cross-check on the
// balancing and traversal logic rather than on insertAfter's placement
// semantics.
func TestBeachLineAgainstRedBlackTreeOracle(t *testing.T) {
	b := newBeachLine()
	oracle := redblacktree.NewWith(utils.IntComparator)

	rng := rand.New(rand.NewSource(1))
	perm := rng.Perm(300) // feeds the oracle in arbitrary order
	sorted := append([]int(nil), perm...)
	sort.Ints(sorted) // feeds the beach line in the order it must be chained

	for _, id := range perm {
		oracle.Put(id, nil)
	}

	rightmost := b.init(siteWithID(sorted[0]))
	for _, id := range sorted[1:] {
		rightmost = b.insertAfter(rightmost, siteWithID(id))
	}

	var got []int
	b.inOrder(func(s Site) { got = append(got, s.ID) })

	want := make([]int, 0, oracle.Size())
	it := oracle.Iterator()
	for it.Next() {
		want = append(want, it.Key().(int))
	}

	require.Equal(t, len(want), len(got))
	assert.Equal(t, want, got)
}

func TestBeachLineDeleteLeaf(t *testing.T) {
	b := newBeachLine()
	root := b.init(siteWithID(5))
	right := b.insertAfter(root, siteWithID(10))

	removed := b.delete(right)
	assert.Equal(t, 10, removed.ID)

	var order []int
	b.inOrder(func(s Site) { order = append(order, s.ID) })
	assert.Equal(t, []int{5}, order)
}

// TestBeachLineDeletePreservesHandleAcrossSwap targets the two-children
// delete path, which swaps a node with its predecessor rather than moving
// values, specifically so that any handle held elsewhere to the
// predecessor keeps resolving to the predecessor's own site right up until
// the moment it, too, is deleted.
func TestBeachLineDeletePreservesHandleAcrossSwap(t *testing.T) {
	b := newBeachLine()
	root := b.init(siteWithID(50))

	left := b.insertBefore(root, siteWithID(20))
	_ = b.insertAfter(root, siteWithID(80))
	predecessor := b.insertAfter(left, siteWithID(30))

	// root now has two children (left's subtree and the right side), so
	// deleting it swaps it with its in-order predecessor instead of
	// unlinking directly.
	require.Equal(t, predecessor, b.predecessor(root))

	removed := b.delete(root)
	assert.Equal(t, 50, removed.ID)
	assert.Equal(t, 30, b.site(predecessor).ID)

	var order []int
	b.inOrder(func(s Site) { order = append(order, s.ID) })
	assert.Equal(t, []int{20, 30, 80}, order)
}

func TestBeachLineDeleteAllRandomOrderStaysSorted(t *testing.T) {
	b := newBeachLine()
	root := b.init(siteWithID(0))
	handles := []ArcHandle{root}

	for i := 1; i < 50; i++ {
		handles = append(handles, b.insertAfter(handles[len(handles)-1], siteWithID(i)))
	}

	rng := rand.New(rand.NewSource(2))
	rng.Shuffle(len(handles), func(i, j int) { handles[i], handles[j] = handles[j], handles[i] })

	remaining := make(map[ArcHandle]bool)
	for _, h := range handles {
		remaining[h] = true
	}

	for _, h := range handles {
		delete(remaining, h)
		b.delete(h)

		var order []int
		b.inOrder(func(s Site) { order = append(order, s.ID) })
		for i := 1; i < len(order); i++ {
			assert.Less(t, order[i-1], order[i])
		}
		assert.Len(t, order, len(remaining))
	}
}
