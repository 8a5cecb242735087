package randcalls

import (
	"math/rand"
	randv2 "math/rand/v2"
)

func LinkID() int {
	return rand.Intn(36) // want "global rand.Intn is forbidden, use the generator package"
}

func Fragment() uint64 {
	return randv2.Uint64() // want "global randv2.Uint64 is forbidden, use the generator package"
}

func Seeded() int {
	r := randv2.New(randv2.NewPCG(1, 2))
	return r.IntN(36)
}
