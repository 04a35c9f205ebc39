package selfplay

import (
	"math"
	"math/big"
)

func binomprob(k, n int64, p float64) float64 {
	c := new(big.Float).SetInt(new(big.Int).Binomial(n, k))
	c.Mul(c, big.NewFloat(math.Pow(p, float64(k))*math.Pow(1-p, float64(n-k))))
	f, _ := c.Float64()
	return f
}

// binomTest is the one-sided probability of seeing at least succ
// successes out of succ+fail trials with success rate p.
func binomTest(succ, fail int64, p float64) float64 {
	n := succ + fail
	var r float64
	for k := succ; k <= n; k++ {
		r += binomprob(k, n, p)
	}
	return r
}
