package deck

import "github.com/minaorangina/crazycircus/podium"

// MaxTokens is the largest number of animals a deck can be built for
const MaxTokens = 10

var factorials = [MaxTokens + 1]int{1, 1, 2, 6, 24, 120, 720, 5040, 40320, 362880, 3628800}

func factorial(n int) int {
	if n < 0 || n > MaxTokens {
		panic("deck: factorial out of range")
	}
	return factorials[n]
}

// Count is the number of positions n animals can take: every ordering
// times every cut point between the two podiums.
func Count(n int) int {
	return factorial(n) * (n + 1)
}

// permute calls visit with every permutation of the indices 0..n-1, starting
// with the identity. It uses Heap's algorithm, so consecutive permutations
// differ by a single swap. visit must not keep the slice.
func permute(n int, visit func(perm []int)) {
	a := make([]int, n)
	for i := range a {
		a[i] = i
	}
	c := make([]int, n)

	visit(a)

	i := 0
	for i < n {
		if c[i] < i {
			if i%2 == 0 {
				a[0], a[i] = a[i], a[0]
			} else {
				a[c[i]], a[i] = a[i], a[c[i]]
			}
			visit(a)
			c[i]++
			i = 0
		} else {
			c[i] = 0
			i++
		}
	}
}

// cut lays a permutation out on the podiums: indices [0, k) go to Blue and
// [k, n) to Red, lowest index first so it ends up at the bottom.
func cut(tokens []podium.Token, perm []int, k int) podium.State {
	blue := make([]podium.Token, 0, k)
	red := make([]podium.Token, 0, len(perm)-k)
	for i, idx := range perm {
		if i < k {
			blue = append(blue, tokens[idx])
		} else {
			red = append(red, tokens[idx])
		}
	}
	return podium.NewState(blue, red)
}

// Enumerate visits every position of the given animals: for each permutation,
// in the order Heap's algorithm produces them, the n+1 cuts from k=0 to k=n.
func Enumerate(tokens []podium.Token, visit func(podium.State)) {
	if len(tokens) > MaxTokens {
		panic(ErrTooManyTokens)
	}
	n := len(tokens)
	permute(n, func(perm []int) {
		for k := 0; k <= n; k++ {
			visit(cut(tokens, perm, k))
		}
	})
}
