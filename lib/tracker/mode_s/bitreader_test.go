package mode_s

import "testing"

func TestBitReaderReadBits(t *testing.T) {
	r := newBitReader([]byte{0xAB, 0xCD, 0xEF})
	cases := []struct {
		offset, n int
		want      uint64
	}{
		{0, 8, 0xAB},
		{8, 8, 0xCD},
		{0, 4, 0xA},
		{4, 4, 0xB},
		{0, 24, 0xABCDEF},
		{20, 4, 0xF},
	}
	for _, c := range cases {
		got, err := r.readBits(c.offset, c.n)
		if err != nil {
			t.Fatalf("readBits(%d,%d): %v", c.offset, c.n, err)
		}
		if got != c.want {
			t.Errorf("readBits(%d,%d) = %#x, want %#x", c.offset, c.n, got, c.want)
		}
	}
}

func TestBitReaderOutOfRange(t *testing.T) {
	r := newBitReader([]byte{0x00, 0x00})
	if _, err := r.readBits(10, 10); err == nil {
		t.Error("expected BitRangeError reading past the end of the buffer")
	}
	if _, err := r.readBits(-1, 4); err == nil {
		t.Error("expected BitRangeError for negative offset")
	}
	if _, err := r.readBits(0, 0); err == nil {
		t.Error("expected error for zero-width read")
	}
	if _, err := r.readBits(0, 65); err == nil {
		t.Error("expected error for width > 64")
	}
}

func TestBitReaderReadBool(t *testing.T) {
	r := newBitReader([]byte{0x80})
	v, err := r.readBool(0)
	if err != nil || !v {
		t.Errorf("readBool(0) = %v, %v; want true, nil", v, err)
	}
	v, err = r.readBool(1)
	if err != nil || v {
		t.Errorf("readBool(1) = %v, %v; want false, nil", v, err)
	}
}

func TestBitReaderReadHex(t *testing.T) {
	r := newBitReader([]byte{0x12, 0x34, 0x56})
	got, err := r.readHex(0, 24)
	if err != nil {
		t.Fatal(err)
	}
	if got != "123456" {
		t.Errorf("readHex = %q, want %q", got, "123456")
	}
}
