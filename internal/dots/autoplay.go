package dots

import "math/rand"

var neighbourOffsets = [4]Pos{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// PlayRandom performs one gesture of random moves: it presses a random cell,
// enters up to steps random neighbours and releases. Rejected moves still
// count as steps, so the gesture always ends.
func PlayRandom(s *Session, rng *rand.Rand, steps int) (Outcome, error) {
	n := s.Size()
	cur := P(rng.Intn(n), rng.Intn(n))
	s.PointerDown(cur)

	for i := 0; i < steps; i++ {
		off := neighbourOffsets[rng.Intn(len(neighbourOffsets))]
		next := P(cur.Row+off.Row, cur.Col+off.Col)
		if s.PointerEnter(next) {
			chain := s.Chain()
			cur = chain[len(chain)-1]
		}
	}
	return s.PointerUp()
}
