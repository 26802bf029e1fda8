// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the RA representation (spec §3, §4.2): an
// unsigned arbitrary-precision integer whose limbs are single base-B
// digit values, B in [2,256], described by an immutable *BaseTable.
// IntAscii duplicates Int's window/canonicalise skeleton non-generically
// rather than sharing it through a generic limb type, mirroring how
// other_examples' db47h-decimal duplicates nat's shape as dec instead of
// parameterising over the limb width.
package compint

import "math/big"

// IntAscii is an unsigned arbitrary-precision integer in a configurable
// base B, stored as one digit value (not ASCII byte) per limb,
// most-significant limb first. The zero value is not ready to use;
// construct with ZeroAscii, FromBaseString, FromUint64Ascii, or FromR9.
type IntAscii struct {
	table  *BaseTable
	limbs  []byte
	offset int
	length int
}

func (x *IntAscii) get(i int) byte {
	p := x.offset + i
	if p < len(x.limbs) {
		return x.limbs[p]
	}
	return 0
}

func (x *IntAscii) set(i int, v byte) {
	p := x.offset + i
	if p >= len(x.limbs) {
		panic("compint: set past materialised window; call materialiseFullWindow first")
	}
	x.limbs[p] = v
}

func (x *IntAscii) storedLen() int {
	avail := len(x.limbs) - x.offset
	if avail < 0 {
		return 0
	}
	if avail > x.length {
		return x.length
	}
	return avail
}

func (x *IntAscii) elided() bool {
	return x.offset+x.length > len(x.limbs)
}

func (x *IntAscii) materialiseFullWindow() {
	if !x.elided() {
		return
	}
	fresh := make([]byte, x.length)
	copy(fresh, x.limbs[x.offset:])
	x.limbs = fresh
	x.offset = 0
}

func (x *IntAscii) ensurePrefixHeadroom(k int) {
	if x.offset >= k {
		return
	}
	grown := make([]byte, len(x.limbs)+k)
	newOffset := x.offset + k
	copy(grown[newOffset:], x.limbs[x.offset:])
	x.limbs = grown
	x.offset = newOffset
}

func (x *IntAscii) canonicalise() {
	for x.length > 1 && x.get(0) == 0 {
		x.offset++
		x.length--
	}
}

func (x *IntAscii) isZeroMagnitude() bool {
	return x.length == 1 && x.get(0) == 0
}

// IsZero reports whether x is the number 0.
func (x *IntAscii) IsZero() bool { return x.isZeroMagnitude() }

func (x *IntAscii) clear() {
	if len(x.limbs) == 0 {
		x.limbs = make([]byte, 1)
	}
	x.offset = len(x.limbs) - 1
	x.limbs[x.offset] = 0
	x.length = 1
}

// Clear resets x to 0, keeping its BaseTable.
func (x *IntAscii) Clear() { x.clear() }

// ZeroAscii returns the number 0 in base table.
func ZeroAscii(table *BaseTable) *IntAscii {
	x := &IntAscii{table: table, limbs: make([]byte, 1), length: 1}
	return x
}

// Base returns the number of digits B in x's BaseTable (spec §6 base()).
func (x *IntAscii) Base() int { return x.table.Base() }

// Copy returns a fresh, independently-owned duplicate of x.
func (x *IntAscii) Copy() *IntAscii {
	sl := x.storedLen()
	buf := make([]byte, sl)
	copy(buf, x.limbs[x.offset:x.offset+sl])
	return &IntAscii{table: x.table, limbs: buf, offset: 0, length: x.length}
}

// FromBaseString decodes src byte-for-byte through table into an
// IntAscii: each input byte maps directly to one limb via table.Decode,
// with no arithmetic regrouping (the "fast I/O form" spec §1 describes).
// Unmappable bytes decode as digit 0 per table's lossy-decode contract.
func FromBaseString(table *BaseTable, src []byte) (*IntAscii, error) {
	if len(src) == 0 {
		return nil, newErrorAt(EmptyInput, "")
	}
	limbs := make([]byte, len(src))
	for i, b := range src {
		limbs[i] = table.Decode(b)
	}
	x := &IntAscii{table: table, limbs: limbs, offset: 0, length: len(limbs)}
	x.canonicalise()
	return x, nil
}

// FromUint64Ascii converts v into base table by repeated division.
func FromUint64Ascii(table *BaseTable, v uint64) *IntAscii {
	b := uint64(table.Base())
	if v == 0 {
		return ZeroAscii(table)
	}
	var rev []byte
	for v > 0 {
		rev = append(rev, byte(v%b))
		v /= b
	}
	limbs := make([]byte, len(rev))
	for i, d := range rev {
		limbs[len(rev)-1-i] = d
	}
	return &IntAscii{table: table, limbs: limbs, offset: 0, length: len(limbs)}
}

// ToByteArray renders x's digits through table.Encode into a freshly
// allocated []byte.
func (x *IntAscii) ToByteArray() []byte {
	out := make([]byte, x.length)
	for i := 0; i < x.length; i++ {
		out[i] = x.table.Encode(x.get(i))
	}
	return out
}

// String renders x through its BaseTable's encoding.
func (x *IntAscii) String() string {
	return string(x.ToByteArray())
}

// ToHexString renders x re-based into hexadecimal, independent of x's
// own BaseTable (spec §6 to_hex_string()).
func (x *IntAscii) ToHexString() string {
	return x.ToR9().toHexStringFromR9()
}

func (z *Int) toHexStringFromR9() string {
	mag := z.toBigIntAbs()
	return mag.Text(16)
}

func (x *Int) toBigIntAbs() *big.Int {
	n := new(big.Int)
	ten9 := big.NewInt(base1e9)
	for i := 0; i < x.length; i++ {
		n.Mul(n, ten9)
		n.Add(n, big.NewInt(int64(x.get(i))))
	}
	return n
}

func requireSameBase(x, y *IntAscii) error {
	if x.table != y.table {
		return newErrorAt(IncompatibleBases, "")
	}
	return nil
}

// asciiSliceAdd adds two MSB-first base-B digit-value slices and
// returns a freshly allocated MSB-first result, grounded on
// sliceops.go's sliceAdd but generalised from base1e9 to an arbitrary
// base.
func asciiSliceAdd(base int, a, b []byte) []byte {
	if len(a) < len(b) {
		a, b = b, a
	}
	out := make([]byte, len(a)+1)
	var carry int
	for i := 0; i < len(a); i++ {
		av := int(a[len(a)-1-i])
		bv := 0
		if i < len(b) {
			bv = int(b[len(b)-1-i])
		}
		s := av + bv + carry
		if s >= base {
			s -= base
			carry = 1
		} else {
			carry = 0
		}
		out[len(out)-1-i] = byte(s)
	}
	out[0] = byte(carry)
	return trimLeadingAsciiOrZero(out)
}

// asciiSliceSub computes a-b for MSB-first digit-value slices with
// a >= b, mirroring sliceops.go's sliceSub.
func asciiSliceSub(base int, a, b []byte) []byte {
	out := make([]byte, len(a))
	var borrow int
	for i := 0; i < len(a); i++ {
		av := int(a[len(a)-1-i])
		bv := 0
		if i < len(b) {
			bv = int(b[len(b)-1-i])
		}
		d := av - bv - borrow
		if d < 0 {
			d += base
			borrow = 1
		} else {
			borrow = 0
		}
		out[len(out)-1-i] = byte(d)
	}
	return trimLeadingAsciiOrZero(out)
}

func trimLeadingAsciiOrZero(x []byte) []byte {
	i := 0
	for i < len(x)-1 && x[i] == 0 {
		i++
	}
	return x[i:]
}

func asciiCompare(a, b []byte) int {
	a, b = trimLeadingAsciiOrZero(a), trimLeadingAsciiOrZero(b)
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := range a {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Compare returns -1, 0, or 1 comparing x and y's magnitudes; both must
// share the same BaseTable.
func (x *IntAscii) Compare(y *IntAscii) (int, error) {
	if err := requireSameBase(x, y); err != nil {
		return 0, err
	}
	return asciiCompare(x.toSlice(), y.toSlice()), nil
}

func (x *IntAscii) toSlice() []byte {
	out := make([]byte, x.length)
	for i := 0; i < x.length; i++ {
		out[i] = x.get(i)
	}
	return out
}

// AddInPlace adds y into x, both sharing the same BaseTable (spec §6
// add_in_place, generalised to RA; IncompatibleBases per spec §7 when
// the tables differ).
func (x *IntAscii) AddInPlace(y *IntAscii) (*IntAscii, error) {
	if err := requireSameBase(x, y); err != nil {
		return nil, err
	}
	sum := asciiSliceAdd(x.table.Base(), x.toSlice(), y.toSlice())
	x.limbs, x.offset, x.length = sum, 0, len(sum)
	return x, nil
}

// SubInPlace subtracts y from x in place; x must be >= y (spec §6
// sub_in_place, generalised to RA, which has no sign).
func (x *IntAscii) SubInPlace(y *IntAscii) (*IntAscii, error) {
	if err := requireSameBase(x, y); err != nil {
		return nil, err
	}
	xs, ys := x.toSlice(), y.toSlice()
	if asciiCompare(xs, ys) < 0 {
		return nil, newErrorAt(InvalidLength, "RA subtraction would underflow")
	}
	diff := asciiSliceSub(x.table.Base(), xs, ys)
	x.limbs, x.offset, x.length = diff, 0, len(diff)
	return x, nil
}

// MultiplySimple multiplies x and y (schoolbook, spec §4.6 generalised
// to RA), using table.DivMod's precomputed B^2 lookup for the inner
// loop's carry propagation instead of hardware division.
func (x *IntAscii) MultiplySimple(y *IntAscii) (*IntAscii, error) {
	if err := requireSameBase(x, y); err != nil {
		return nil, err
	}
	a, b := x.toSlice(), y.toSlice()
	out := make([]byte, len(a)+len(b))
	n, m := len(a), len(b)
	for i := n - 1; i >= 0; i-- {
		if a[i] == 0 {
			continue
		}
		var carry int
		for j := m - 1; j >= 0; j-- {
			pos := i + j + 1
			v := int(a[i])*int(b[j]) + int(out[pos]) + carry
			q, r := x.table.DivMod(v)
			out[pos] = r
			carry = int(q)
		}
		k := i
		for carry > 0 {
			v := int(out[k]) + carry
			q, r := x.table.DivMod(v)
			out[k] = r
			carry = int(q)
			k--
		}
	}
	result := &IntAscii{table: x.table, limbs: trimLeadingAsciiOrZero(out), offset: 0}
	result.length = len(result.limbs)
	return result, nil
}

// ToR9 converts x to the R9 representation (spec §6 to_r9()).
func (x *IntAscii) ToR9() *Int {
	mag := new(big.Int)
	base := big.NewInt(int64(x.table.Base()))
	for i := 0; i < x.length; i++ {
		mag.Mul(mag, base)
		mag.Add(mag, big.NewInt(int64(x.get(i))))
	}
	return fromBigIntAbs(mag)
}

// FromR9 converts value's magnitude into base table (spec §6
// IntAscii::from_r9(table, value)).
func FromR9(table *BaseTable, value *Int) *IntAscii {
	mag := value.toBigIntAbs()
	base := big.NewInt(int64(table.Base()))
	if mag.Sign() == 0 {
		return ZeroAscii(table)
	}
	var rev []byte
	q := new(big.Int).Set(mag)
	r := new(big.Int)
	for q.Sign() > 0 {
		q.QuoRem(q, base, r)
		rev = append(rev, byte(r.Int64()))
	}
	limbs := make([]byte, len(rev))
	for i, d := range rev {
		limbs[len(rev)-1-i] = d
	}
	return &IntAscii{table: table, limbs: limbs, offset: 0, length: len(limbs)}
}

// fromBigIntAbs builds an Int (always non-negative) from a non-negative
// math/big.Int magnitude, grouping into base-1e9 limbs.
func fromBigIntAbs(mag *big.Int) *Int {
	if mag.Sign() == 0 {
		return Zero()
	}
	ten9 := big.NewInt(base1e9)
	q := new(big.Int).Set(mag)
	r := new(big.Int)
	var rev []uint32
	for q.Sign() > 0 {
		q.QuoRem(q, ten9, r)
		rev = append(rev, uint32(r.Int64()))
	}
	limbs := make([]uint32, len(rev))
	for i, d := range rev {
		limbs[len(rev)-1-i] = d
	}
	x := &Int{limbs: limbs, offset: 0, length: len(limbs)}
	x.canonicalise()
	return x
}
