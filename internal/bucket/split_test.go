package bucket

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collectNames flattens every bucket's entry names, sorted, for
// conservation checks.
func collectNames(t *Table) []string {
	var names []string
	for _, b := range t.Buckets() {
		for _, e := range b.Entries {
			names = append(names, e.Name)
		}
	}
	sort.Strings(names)
	return names
}

func TestSplitOversizedBucket(t *testing.T) {
	// Scenario: 25 files under "a", 5 under "b", threshold 10.
	var entries []Entry
	for i := 0; i < 25; i++ {
		entries = append(entries, Entry{Name: fmt.Sprintf("a-file-%02d", i)})
	}
	for i := 0; i < 5; i++ {
		entries = append(entries, Entry{Name: fmt.Sprintf("b-file-%02d", i)})
	}
	table, total, _ := Build(entries, false)
	require.Equal(t, 30, total)
	before := collectNames(table)

	Split(table, 10)

	// a(25) -> a1(10), a2(15); a2 -> a2(10), a3(5).
	assert.Equal(t, []string{"a1", "a2", "a3", "b"}, table.Keys())
	assert.Equal(t, 10, table.Get("a1").Count())
	assert.Equal(t, 10, table.Get("a2").Count())
	assert.Equal(t, 5, table.Get("a3").Count())
	assert.Equal(t, 5, table.Get("b").Count())

	for _, b := range table.Buckets() {
		assert.LessOrEqual(t, b.Count(), 10, "bucket %q exceeds threshold", b.Key)
	}
	assert.Equal(t, before, collectNames(table), "entries must be conserved")
}

func TestSplitPreservesInsertionOrder(t *testing.T) {
	var entries []Entry
	for i := 0; i < 5; i++ {
		entries = append(entries, Entry{Name: fmt.Sprintf("a%d", i)})
	}
	table, _, _ := Build(entries, false)

	Split(table, 3)

	require.Equal(t, []string{"a1", "a2"}, table.Keys())
	assert.Equal(t, "a0", table.Get("a1").Entries[0].Name)
	assert.Equal(t, "a2", table.Get("a1").Entries[2].Name)
	assert.Equal(t, "a3", table.Get("a2").Entries[0].Name)
	assert.Equal(t, "a4", table.Get("a2").Entries[1].Name)
}

func TestSplitAsymmetricRename(t *testing.T) {
	// A digit-suffixed bucket keeps its key for the start half; only the
	// end half gets a fresh (incremented) key.
	table := NewTable()
	for i := 0; i < 7; i++ {
		table.Append("a1", Entry{Name: fmt.Sprintf("f%d", i)})
	}

	Split(table, 4)

	assert.Equal(t, []string{"a1", "a2"}, table.Keys())
	assert.Equal(t, 4, table.Get("a1").Count())
	assert.Equal(t, 3, table.Get("a2").Count())
}

func TestSplitEndKeyCollisionAppends(t *testing.T) {
	table := NewTable()
	for i := 0; i < 6; i++ {
		table.Append("a1", Entry{Name: fmt.Sprintf("f%d", i)})
	}
	table.Append("a2", Entry{Name: "existing"})

	Split(table, 4)

	// a1's overflow lands in the existing a2 bucket, nothing is lost.
	assert.Equal(t, 7, table.TotalEntries())
	assert.Equal(t, 3, table.Get("a2").Count())
}

func TestSplitNoopAtOrBelowThreshold(t *testing.T) {
	table, _, _ := Build(entriesNamed("a1", "a2", "b1"), false)

	Split(table, 2)

	assert.Equal(t, []string{"a", "b"}, table.Keys())
}

func TestSplitZeroThresholdDisabled(t *testing.T) {
	table, _, _ := Build(entriesNamed("a1", "a2", "a3"), false)

	Split(table, 0)

	assert.Equal(t, []string{"a"}, table.Keys())
	assert.Equal(t, 3, table.Get("a").Count())
}

func TestSplitThresholdOne(t *testing.T) {
	table, _, _ := Build(entriesNamed("aa", "ab", "ac"), false)

	Split(table, 1)

	assert.Equal(t, 3, table.TotalEntries())
	for _, b := range table.Buckets() {
		assert.LessOrEqual(t, b.Count(), 1)
	}
}
