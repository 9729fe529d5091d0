package core

import "testing"

func TestSampleRecordLine(t *testing.T) {
	testCases := []struct {
		name string
		rec  SampleRecord
		want string
	}{
		{"mid scale lop", SampleRecord{Raw: 512, LOP: true}, "512 1 0"},
		{"zero", SampleRecord{}, "0 0 0"},
		{"full scale both", SampleRecord{Raw: 1023, LOP: true, LON: true}, "1023 1 1"},
		{"lon only", SampleRecord{Raw: 7, LON: true}, "7 0 1"},
		{"widest value", SampleRecord{Raw: 4294967295}, "4294967295 0 0"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.rec.String(); got != tc.want {
				t.Errorf("String: expected %q, got %q", tc.want, got)
			}
			line := tc.rec.AppendLine(nil)
			if string(line) != tc.want+"\r\n" {
				t.Errorf("AppendLine: expected %q, got %q", tc.want+"\r\n", line)
			}
			if len(line) > SampleLineMax {
				t.Errorf("Line of %d bytes exceeds SampleLineMax %d", len(line), SampleLineMax)
			}
		})
	}
}

func TestSampleRecordInRange(t *testing.T) {
	if !(SampleRecord{Raw: 1023}).InRange(Resolution10Bit) {
		t.Error("1023 must fit 10 bits")
	}
	if (SampleRecord{Raw: 1024}).InRange(Resolution10Bit) {
		t.Error("1024 must not fit 10 bits")
	}
	if (SampleRecord{Raw: 256}).InRange(Resolution8Bit) {
		t.Error("256 must not fit 8 bits")
	}
}

func TestUtoa(t *testing.T) {
	testCases := []struct {
		n    uint32
		want string
	}{
		{0, "0"},
		{9, "9"},
		{10, "10"},
		{139, "139"},
		{32768, "32768"},
		{4294967295, "4294967295"},
	}
	for _, tc := range testCases {
		if got := utoa(tc.n); got != tc.want {
			t.Errorf("utoa(%d): expected %q, got %q", tc.n, tc.want, got)
		}
	}
}
