// Package conv formats integers without fmt or strconv, for MCU builds where
// those packages cost too much flash.
package conv

// Utoa renders n in decimal right-aligned in buf and returns the digits.
// A buf shorter than the number keeps the low-order digits; 20 bytes fit
// any uint64.
func Utoa(buf []byte, n uint64) []byte {
	i := len(buf)
	for i > 0 {
		i--
		buf[i] = '0' + byte(n%10)
		n /= 10
		if n == 0 {
			break
		}
	}
	return buf[i:]
}

// Itoa is Utoa for signed values. Negative numbers get a leading '-'.
func Itoa(buf []byte, n int64) []byte {
	if n >= 0 {
		return Utoa(buf, uint64(n))
	}
	digits := Utoa(buf, uint64(-n))
	i := len(buf) - len(digits)
	if i == 0 {
		return digits
	}
	i--
	buf[i] = '-'
	return buf[i:]
}

// AppendUint appends the decimal form of n to dst.
func AppendUint(dst []byte, n uint64) []byte {
	var buf [20]byte
	return append(dst, Utoa(buf[:], n)...)
}

// AppendInt appends the decimal form of n to dst.
func AppendInt(dst []byte, n int64) []byte {
	var buf [20]byte
	return append(dst, Itoa(buf[:], n)...)
}
