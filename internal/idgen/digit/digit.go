// Package digit issues booking IDs in the legacy scheme: the guest's last
// name followed by one random decimal digit. Collisions against the active
// set are the caller's concern; it simply asks again.
package digit

import (
	"context"
	"math/rand"
	"strconv"
)

type Generator struct {
	rnd *rand.Rand
}

func New(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

func (g *Generator) BookingID(_ context.Context, lastName string) (string, error) {
	return lastName + strconv.Itoa(g.rnd.Intn(10)), nil
}
