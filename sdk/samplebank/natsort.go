package samplebank

// naturalLess compares two strings treating runs of digits as numbers, so
// "s2.wav" sorts before "s10.wav". Letters compare case-insensitively.
// Numeric runs are compared without parsing: leading zeros are stripped and
// the longer remaining run is the larger number, so arbitrarily long runs
// cannot overflow.
func naturalLess(a, b string) bool {
	for len(a) > 0 && len(b) > 0 {
		if isDigit(a[0]) && isDigit(b[0]) {
			an, arest := takeNumber(a)
			bn, brest := takeNumber(b)
			if an != bn {
				if len(an) != len(bn) {
					return len(an) < len(bn)
				}
				return an < bn
			}
			a, b = arest, brest
			continue
		}
		ac, bc := lower(a[0]), lower(b[0])
		if ac != bc {
			return ac < bc
		}
		a, b = a[1:], b[1:]
	}
	return len(a) < len(b)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}

// takeNumber splits the leading digit run off s, with leading zeros removed.
func takeNumber(s string) (string, string) {
	i := 0
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	run := s[:i]
	for len(run) > 1 && run[0] == '0' {
		run = run[1:]
	}
	return run, s[i:]
}
