package source

import (
	"github.com/nathanhack/infochannel/batch"
	"github.com/nathanhack/infochannel/channel"
	"github.com/nathanhack/infochannel/random"
)

//Generate creates n messages of m bits each. Every bit uses one draw from rng and
// is 0 when the draw falls below d.P0, otherwise 1.
func Generate(rng random.Source, d channel.Distribution, n, m int) *batch.Batch {
	messages := batch.New(n, m)
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			if rng.Float64() >= d.P0 {
				messages.Set(i, j, 1)
			}
		}
	}
	return messages
}
