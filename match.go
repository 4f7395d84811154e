// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lz4block

package lz4block

// matchFinder owns the single-entry hash table used to find candidate
// back-references during compression. Positions are stored biased by +1
// so the zero value of the backing array means "absent" everywhere, and
// reset is a single clear() call.
type matchFinder struct {
	table [hashTableSize]int32
}

// reset marks every hash slot absent. Called once at the start of every
// encode; entries are absolute input positions and are never valid across
// two different input buffers.
func (m *matchFinder) reset() {
	clear(m.table[:])
}

// hash computes the 14-bit hash table index for the 4-byte window at in[pos:].
func (m *matchFinder) hash(in []byte, pos int) uint32 {
	return (load32(in[pos:]) * hashMultiplier) >> (32 - hashLog)
}

// updateAndProbe returns the prior candidate position stored at the hash
// slot for in[pos:] (or -1 if the slot was empty), then stores pos there.
func (m *matchFinder) updateAndProbe(in []byte, pos int) int {
	h := m.hash(in, pos)
	candidate := int(m.table[h]) - 1
	m.table[h] = int32(pos + 1) //nolint:gosec // G115: pos bounded by maxBlockSize
	return candidate
}

// insert stores pos into the hash table without returning the previous
// occupant; used by the encoder's "thorough" re-indexing pass.
func (m *matchFinder) insert(in []byte, pos int) {
	h := m.hash(in, pos)
	m.table[h] = int32(pos + 1) //nolint:gosec // G115: pos bounded by maxBlockSize
}

// isValidCandidate reports whether candidate is a usable match start for the
// scan at pos: within the 65535-byte window, and the 4-byte window truly
// matches rather than merely colliding on the hash.
func isValidCandidate(in []byte, candidate, pos int) bool {
	if candidate < 0 || pos-candidate > maxOffset {
		return false
	}
	return in[candidate] == in[pos] &&
		in[candidate+1] == in[pos+1] &&
		in[candidate+2] == in[pos+2] &&
		in[candidate+3] == in[pos+3]
}
