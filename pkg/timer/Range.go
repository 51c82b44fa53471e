package timer

import "math/rand"
import "time"


/*
	RandomDuration draws a duration uniformly from [min, max] in
	milliseconds, as the leader-timeout and election-timeout windows
	require. Returns min when max <= min.

	It takes an explicit *rand.Rand rather than the package-level
	source so randomness is reproducible under a seed -- a Node owns
	one seeded source and uses it for every timer it arms.
*/

func RandomDuration(src *rand.Rand, minMs int, maxMs int) time.Duration {
	if maxMs <= minMs { return time.Duration(minMs) * time.Millisecond }

	span := maxMs - minMs
	offset := src.Intn(span + 1)

	return time.Duration(minMs + offset) * time.Millisecond
}
