package flarm

import "github.com/xoolive/rs1090/lib/tracker/mode_s"

// bitReader reads big-endian, msb-first fixed-width fields from the
// decrypted FLARM payload. Mirrors lib/tracker/mode_s's bitReader
// (duplicated rather than exported cross-package, since FLARM's field
// layout is unrelated to Mode S's and the two should evolve independently).
type bitReader struct {
	buf []byte
}

func newBitReader(buf []byte) *bitReader {
	return &bitReader{buf: buf}
}

func (r *bitReader) nbits() int {
	return len(r.buf) * 8
}

func (r *bitReader) readBits(offset, n int) (uint64, error) {
	if n <= 0 || n > 64 {
		return 0, mode_s.NewMalformedFlarm("invalid width %d", n)
	}
	if offset < 0 || offset+n > r.nbits() {
		return 0, mode_s.NewMalformedFlarm("read of %d bits at offset %d exceeds %d-bit buffer", n, offset, r.nbits())
	}

	var acc uint64
	byteIdx := offset / 8
	bitIdx := offset % 8
	bitsNeeded := n
	for bitsNeeded > 0 {
		avail := 8 - bitIdx
		take := avail
		if take > bitsNeeded {
			take = bitsNeeded
		}
		b := r.buf[byteIdx]
		shift := avail - take
		mask := byte((1 << take) - 1)
		chunk := (b >> shift) & mask
		acc = (acc << take) | uint64(chunk)

		bitsNeeded -= take
		byteIdx++
		bitIdx = 0
	}
	return acc, nil
}

func (r *bitReader) readBool(offset int) (bool, error) {
	v, err := r.readBits(offset, 1)
	if err != nil {
		return false, err
	}
	return v != 0, nil
}

func (r *bitReader) readUint32(offset, n int) (uint32, error) {
	v, err := r.readBits(offset, n)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}
