// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the scientific-notation front end (spec §4.9,
// C10): [sign] digits ['.' digits] ('e'|'E') [sign] digits
// [('p'|'P') digits]. Grounded on _teacher_copy/intconv.go's hand-written
// scanner structure, since no teacher file parses a grammar with a
// periodic tail. The materialised Int is built limb-by-limb from a lazy
// digit source (sciDigits) rather than through an intermediate fully
// padded/periodic byte string, matching the "materialises large
// padded/periodic expansions lazily" framing in spec §1.

package compint

import (
	"math"

	"github.com/pkg/errors"
)

func isDigitByte(b byte) bool { return b >= '0' && b <= '9' }
func isSignByte(b byte) bool  { return b == '+' || b == '-' }

type parsedScientific struct {
	neg        bool
	intPart    []byte
	fracPart   []byte
	expNeg     bool
	expPart    []byte
	hasPeriod  bool
	periodPart []byte
}

// parseScientific hand-scans src against the grammar in spec §4.9,
// reporting the most specific error Kind it can for each malformed
// transition.
func parseScientific(src string) (parsedScientific, error) {
	var p parsedScientific
	n := len(src)
	if n == 0 {
		return p, newError(EmptyInput, src, 0)
	}
	i := 0
	if isSignByte(src[0]) {
		p.neg = src[0] == '-'
		i = 1
	}

	intStart := i
	for i < n && isDigitByte(src[i]) {
		i++
	}
	p.intPart = []byte(src[intStart:i])
	if len(p.intPart) == 0 {
		if i < n && isSignByte(src[i]) {
			return p, newError(InvalidSign, src, i)
		}
		return p, newError(EmptyInput, src, intStart)
	}

	seenDot := false
	if i < n && src[i] == '.' {
		seenDot = true
		i++
		fracStart := i
		for i < n && isDigitByte(src[i]) {
			i++
		}
		p.fracPart = []byte(src[fracStart:i])
	}

	if i >= n {
		return p, newError(EndsWithNonDigit, src, n-1)
	}
	switch {
	case src[i] == '.':
		return p, newError(RepeatedDot, src, i)
	case src[i] == 'p' || src[i] == 'P':
		return p, newError(PeriodWithoutExponent, src, i)
	case src[i] == 'e' || src[i] == 'E':
		if seenDot && len(p.fracPart) == 0 {
			return p, newError(ExponentAfterNonDigit, src, i)
		}
	case isSignByte(src[i]):
		return p, newError(InvalidSign, src, i)
	default:
		return p, newError(InvalidCharacter, src, i)
	}

	i++ // consume 'e'/'E'
	if i < n && isSignByte(src[i]) {
		p.expNeg = src[i] == '-'
		i++
	}
	expStart := i
	for i < n && isDigitByte(src[i]) {
		i++
	}
	p.expPart = []byte(src[expStart:i])
	if len(p.expPart) == 0 {
		switch {
		case i >= n:
			return p, newError(EndsWithNonDigit, src, n-1)
		case src[i] == 'p' || src[i] == 'P':
			return p, newError(PeriodAfterNonDigit, src, i)
		case isSignByte(src[i]):
			return p, newError(InvalidSign, src, i)
		default:
			return p, newError(InvalidCharacter, src, i)
		}
	}

	if i >= n {
		return p, nil
	}
	switch {
	case src[i] == '.':
		return p, newError(DotAfterExponent, src, i)
	case src[i] == 'e' || src[i] == 'E':
		return p, newError(RepeatedExponent, src, i)
	case src[i] == 'p' || src[i] == 'P':
		// fall through to period clause below
	default:
		return p, newError(InvalidCharacter, src, i)
	}

	p.hasPeriod = true
	i++
	periodStart := i
	for i < n && isDigitByte(src[i]) {
		i++
	}
	p.periodPart = []byte(src[periodStart:i])
	if len(p.periodPart) == 0 {
		return p, newError(EmptyPeriod, src, periodStart)
	}
	if i < n {
		switch {
		case src[i] == '.':
			return p, newError(DotAfterPeriod, src, i)
		case src[i] == 'e' || src[i] == 'E':
			return p, newError(ExponentAfterPeriod, src, i)
		case src[i] == 'p' || src[i] == 'P':
			return p, newError(RepeatedPeriod, src, i)
		default:
			return p, newError(InvalidCharacter, src, i)
		}
	}
	return p, nil
}

// parseExponentMagnitude parses digits as a non-negative integer,
// reporting ExponentOverflow per spec §4.9 ("exponent > 999_999_999").
func parseExponentMagnitude(src string, digits []byte, at int) (int, error) {
	var v int64
	for _, b := range digits {
		v = v*10 + int64(b-'0')
		if v > 999_999_999 {
			return 0, newError(ExponentOverflow, src, at)
		}
	}
	return int(v), nil
}

// sciDigits is the lazy digit view spec §4.9 describes: the first
// len(head) digits come from the finite significand; the remainder (up
// to length) come either from implicit zero padding or, when period is
// set, from the period bytes cycled.
type sciDigits struct {
	head   []byte
	period []byte // nil when there is no periodic tail
	length int
}

func (d *sciDigits) digitAt(i int) byte {
	if i < len(d.head) {
		return d.head[i]
	}
	if d.period == nil {
		return '0'
	}
	return d.period[(i-len(d.head))%len(d.period)]
}

// FromScientific parses src per spec §4.9 and materialises the
// resulting Int, building its limbs directly from the lazy digit view
// rather than through an intermediate padded string.
func FromScientific(src string) (*Int, error) {
	p, err := parseScientific(src)
	if err != nil {
		return nil, err
	}
	exp, err := parseExponentMagnitude(src, p.expPart, 0)
	if err != nil {
		return nil, err
	}
	if p.expNeg {
		exp = -exp
	}

	head := make([]byte, 0, len(p.intPart)+len(p.fracPart))
	head = append(head, p.intPart...)
	head = append(head, p.fracPart...)
	k := len(head)
	totalLength := len(p.intPart) + exp
	if totalLength < k {
		return nil, newError(PrecisionLoss, src, 0)
	}
	if totalLength < 1 {
		return nil, errors.Wrap(newError(PrecisionLoss, src, 0), "computed integer length is not positive")
	}
	if totalLength > 100_000_000 {
		return nil, errors.Wrapf(newError(RequestedArraySizeExceedsMaximum, src, 0),
			"requested integer length %d exceeds the maximum", totalLength)
	}

	ds := &sciDigits{head: head, length: totalLength}
	if p.hasPeriod {
		ds.period = p.periodPart
	}

	limbs := buildLimbsFromDigitSource(ds)
	x := &Int{limbs: limbs, offset: 0, length: len(limbs), negative: p.neg}
	x.canonicalise()
	return x, nil
}

// ToScientific renders x in scientific notation (spec §6 to_scientific):
// precision >= 0 renders exactly that many fractional digits, padding
// with zeros; precision < 0 renders up to |precision| fractional
// digits with trailing zeros trimmed; precision == math.MinInt32 is
// unbounded (all significant fractional digits, trailing zeros
// trimmed).
func (x *Int) ToScientific(precision int) string {
	digitCount := x.DigitCount()
	exp := digitCount - 1
	firstOffset := 0
	if x.negative {
		firstOffset = 1
	}

	available := digitCount - 1
	var frac []byte
	switch {
	case precision == math.MinInt32:
		frac = make([]byte, available)
		for i := 0; i < available; i++ {
			frac[i] = x.DigitAt(firstOffset + 1 + i)
		}
		frac = trimTrailingZeroBytes(frac)
	case precision >= 0:
		frac = make([]byte, precision)
		take := precision
		if take > available {
			take = available
		}
		for i := 0; i < take; i++ {
			frac[i] = x.DigitAt(firstOffset + 1 + i)
		}
		for i := take; i < precision; i++ {
			frac[i] = '0'
		}
	default:
		limit := -precision
		take := limit
		if take > available {
			take = available
		}
		frac = make([]byte, take)
		for i := 0; i < take; i++ {
			frac[i] = x.DigitAt(firstOffset + 1 + i)
		}
		frac = trimTrailingZeroBytes(frac)
	}

	var out []byte
	if x.negative {
		out = append(out, '-')
	}
	out = append(out, x.DigitAt(firstOffset))
	if len(frac) > 0 {
		out = append(out, '.')
		out = append(out, frac...)
	}
	out = append(out, 'E')
	out = append(out, []byte(itoa(exp))...)
	return string(out)
}

func trimTrailingZeroBytes(b []byte) []byte {
	i := len(b)
	for i > 0 && b[i-1] == '0' {
		i--
	}
	return b[:i]
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}

// buildLimbsFromDigitSource fills an MSB-first limb array nine digits at
// a time from ds, avoiding ever materialising ds's full decimal string.
func buildLimbsFromDigitSource(ds *sciDigits) []uint32 {
	total := ds.length
	firstLen := total % limbDigits
	if firstLen == 0 {
		firstLen = limbDigits
	}
	nLimbs := (total + limbDigits - 1) / limbDigits
	limbs := make([]uint32, nLimbs)
	pos := 0
	var v uint32
	for j := 0; j < firstLen; j++ {
		v = v*10 + uint32(ds.digitAt(pos)-'0')
		pos++
	}
	limbs[0] = v
	for i := 1; i < nLimbs; i++ {
		v = 0
		for j := 0; j < limbDigits; j++ {
			v = v*10 + uint32(ds.digitAt(pos)-'0')
			pos++
		}
		limbs[i] = v
	}
	return limbs
}
