package core

// SampleRecord is one completed conversion plus the two auxiliary line
// levels captured alongside it. It never outlives the interrupt that made it.
type SampleRecord struct {
	Raw uint32
	LOP bool
	LON bool
}

// SampleLineMax bounds one formatted line: 10 digits, two flags, CRLF.
const SampleLineMax = 10 + 4 + 2

// AppendLine appends "<raw> <lop> <lon>\r\n" to buf without allocating
// when buf has capacity.
func (r SampleRecord) AppendLine(buf []byte) []byte {
	buf = appendUint(buf, r.Raw)
	buf = append(buf, ' ', flagDigit(r.LOP), ' ', flagDigit(r.LON))
	return append(buf, '\r', '\n')
}

// String returns the record without the line terminator.
func (r SampleRecord) String() string {
	var line [SampleLineMax]byte
	b := r.AppendLine(line[:0])
	return string(b[:len(b)-2])
}

// InRange reports whether Raw fits the given resolution.
func (r SampleRecord) InRange(res Resolution) bool {
	return r.Raw <= res.MaxValue()
}

func flagDigit(v bool) byte {
	if v {
		return '1'
	}
	return '0'
}

// appendUint writes n in decimal, right to left into a scratch array.
func appendUint(buf []byte, n uint32) []byte {
	if n == 0 {
		return append(buf, '0')
	}

	var digits [10]byte
	pos := len(digits)
	for n > 0 {
		pos--
		digits[pos] = byte('0' + n%10)
		n /= 10
	}
	return append(buf, digits[pos:]...)
}

// utoa converts an unsigned integer to a string
func utoa(n uint32) string {
	var digits [10]byte
	return string(appendUint(digits[:0], n))
}
