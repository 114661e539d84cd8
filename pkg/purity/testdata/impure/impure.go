package impure

var counter int

var names = map[string]int{}

func Bump() { counter++ }

func Set(n int) { counter = n }

func Register(name string) { names[name] = 1 }

func Fill(xs []int) {
	for i := range xs {
		xs[i] = 0
	}
}

func Reset(p *int) { *p = 0 }

type point struct{ X int }

func Move(p *point) { p.X++ }

func Pure(x int) int {
	y := x
	y++
	return y
}

func Shadow() int {
	counter := 1
	counter++
	return counter
}

func Read() int { return counter + len(names) }

type tally struct{ n int }

func (t *tally) Bump() { t.n++ }

func (t tally) Peek() int {
	t.n++
	return t.n
}

func Drop(m map[string]int) { delete(m, "a") }

func Wipe(xs []int) { clear(xs) }

func Overwrite(dst, src []int) { copy(dst, src) }

func Scratch(src []int) []int {
	dst := make([]int, len(src))
	copy(dst, src)
	return dst
}

func Swap(xs []int) { xs[0], xs[1] = xs[1], xs[0] }
