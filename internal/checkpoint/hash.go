// Package checkpoint fingerprints deterministic simulation state into
// 32-bit FNV-1a hashes, chains them into a tamper-evident sequence, and
// verifies recorded checkpoints against a re-simulated world.
//
// The serialization feeding the hash is a frozen wire format: every value
// is linearized as a little-endian uint32 word, collections are emitted in
// canonical (ID-sorted) order, and the field order below must never change.
// Reordering anything silently changes every fingerprint and breaks
// compatibility with recorded runs.
package checkpoint

import (
	"sort"

	"github.com/vovakirdan/fortress-run/internal/sim"
)

// FNV-1a 32-bit parameters.
const (
	fnvOffset uint32 = 0x811c9dc5
	fnvPrime  uint32 = 0x01000193
)

// hasher accumulates a running FNV-1a hash over a word stream.
type hasher struct {
	h uint32
}

func newHasher() hasher {
	return hasher{h: fnvOffset}
}

// word folds one uint32 into the hash, little-endian byte order.
func (s *hasher) word(u uint32) {
	for i := 0; i < 4; i++ {
		s.h ^= u & 0xff
		s.h *= fnvPrime
		u >>= 8
	}
}

// signed folds a signed integer as its two's-complement low 32 bits.
func (s *hasher) signed(v int) {
	s.word(uint32(int32(v)))
}

// flag folds a bool as a 0/1 word.
func (s *hasher) flag(b bool) {
	if b {
		s.word(1)
	} else {
		s.word(0)
	}
}

// str folds a string as its length followed by one word per byte.
// Relic ids are short; this keeps every input on the same word path.
func (s *hasher) str(v string) {
	s.signed(len(v))
	for i := 0; i < len(v); i++ {
		s.word(uint32(v[i]))
	}
}

// HashState computes the 32-bit fingerprint of a world.
// Field order: tick, wave, ended, won, rngState, fortressHP, gold, dust,
// goldEarned, kills, eliteKills, enemy count, enemy records (ID-sorted),
// relic count, relic records (ID-sorted). Enemy records are
// (id, type, elite, hp, xRaw, yRaw).
func HashState(w *sim.World) uint32 {
	s := newHasher()
	s.word(uint32(w.Tick))
	s.signed(w.Wave)
	s.flag(w.Ended)
	s.flag(w.Won)
	s.word(w.RngState())
	s.signed(w.FortressHP)
	s.signed(w.Gold)
	s.signed(w.Dust)
	s.signed(w.GoldEarned)
	s.signed(w.Kills)
	s.signed(w.EliteKills)

	// Canonical enemy order: sorted by ID regardless of slice order.
	idx := make([]int, len(w.Enemies))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool {
		return w.Enemies[idx[a]].ID < w.Enemies[idx[b]].ID
	})
	s.signed(len(w.Enemies))
	for _, i := range idx {
		e := &w.Enemies[i]
		s.word(e.ID)
		s.word(uint32(e.Type))
		s.flag(e.Elite)
		s.signed(e.HP)
		s.word(uint32(int32(e.X)))
		s.word(uint32(int32(e.Y)))
	}

	// Relics are kept ID-sorted by the world, but sort a copy anyway: the
	// canonical order is part of the wire format, not an invariant we
	// borrow.
	relics := make([]sim.Relic, len(w.Relics))
	copy(relics, w.Relics)
	sort.Slice(relics, func(a, b int) bool { return relics[a].ID < relics[b].ID })
	s.signed(len(relics))
	for _, r := range relics {
		s.str(r.ID)
		s.str(r.Stat)
		s.signed(r.Amount)
	}

	return s.h
}

// chainHash links a checkpoint to its predecessor:
// fnv1a32(prevChain, tick, hash32), in that word order.
func chainHash(prevChain uint32, tick uint64, hash uint32) uint32 {
	s := newHasher()
	s.word(prevChain)
	s.word(uint32(tick))
	s.word(hash)
	return s.h
}

// FinalHash binds a run's terminal summary to its simulated outcome.
// Word order: state hash, tick, wave, kills, eliteKills, goldEarned,
// dustEarned, won.
func FinalHash(w *sim.World) uint32 {
	s := newHasher()
	s.word(HashState(w))
	s.word(uint32(w.Tick))
	s.signed(w.Wave)
	s.signed(w.Kills)
	s.signed(w.EliteKills)
	s.signed(w.GoldEarned)
	s.signed(w.DustEarned)
	s.flag(w.Won)
	return s.h
}
