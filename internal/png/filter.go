package png

// PNG scanline filter types.
const (
	ftNone = iota
	ftSub
	ftUp
	ftAverage
	ftPaeth
	nFilter
)

// filterer picks a filter per scanline using the minimum sum of absolute
// differences heuristic. Each candidate row keeps its filter byte in front.
type filterer struct {
	bpp  int
	rows [nFilter][]byte
}

func newFilterer(width, bpp int) *filterer {
	f := &filterer{bpp: bpp}
	for i := range f.rows {
		f.rows[i] = make([]byte, 1+width*bpp)
		f.rows[i][0] = byte(i)
	}
	return f
}

// filter returns the best filtered form of cur, including the leading
// filter-type byte. prev is the unfiltered previous row (all zero for the
// first row). The returned slice is reused on the next call.
func (f *filterer) filter(cur, prev []byte) []byte {
	best, bestScore := ftNone, -1
	for ft := ftNone; ft < nFilter; ft++ {
		out := f.rows[ft][1:]
		score := 0
		for i, x := range cur {
			var a, c byte
			if i >= f.bpp {
				a = cur[i-f.bpp]
				c = prev[i-f.bpp]
			}
			b := prev[i]

			var v byte
			switch ft {
			case ftNone:
				v = x
			case ftSub:
				v = x - a
			case ftUp:
				v = x - b
			case ftAverage:
				v = x - byte((int(a)+int(b))/2)
			case ftPaeth:
				v = x - paeth(a, b, c)
			}
			out[i] = v
			score += abs(int(int8(v)))
		}
		if bestScore < 0 || score < bestScore {
			best, bestScore = ft, score
		}
	}
	return f.rows[best]
}

// paeth implements the Paeth predictor from the PNG specification.
func paeth(a, b, c byte) byte {
	p := int(a) + int(b) - int(c)
	pa := abs(p - int(a))
	pb := abs(p - int(b))
	pc := abs(p - int(c))
	if pa <= pb && pa <= pc {
		return a
	}
	if pb <= pc {
		return b
	}
	return c
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
