package precise

import (
	"encoding/binary"
	"fmt"
)

// PackedLen is the size of the packed on-chain representation: the
// 128-bit scaled value in little-endian byte order.
const PackedLen = 16

// MarshalBinary packs the scaled value into PackedLen little-endian
// bytes. It fails when the value does not fit in 128 bits.
func (d Decimal) MarshalBinary() ([]byte, error) {
	s, err := d.Scaled()
	if err != nil {
		return nil, fmt.Errorf("pack decimal: %w", err)
	}
	buf := make([]byte, PackedLen)
	binary.LittleEndian.PutUint64(buf[0:8], s.Lo)
	binary.LittleEndian.PutUint64(buf[8:16], s.Hi)
	return buf, nil
}

// UnmarshalBinary reads a PackedLen little-endian scaled value.
func (d *Decimal) UnmarshalBinary(data []byte) error {
	if len(data) != PackedLen {
		return fmt.Errorf("unpack decimal: need %d bytes, got %d", PackedLen, len(data))
	}
	*d = DecimalFromScaled(Scaled{
		Lo: binary.LittleEndian.Uint64(data[0:8]),
		Hi: binary.LittleEndian.Uint64(data[8:16]),
	})
	return nil
}

// MarshalBinary packs the scaled value into PackedLen little-endian
// bytes. A rate always fits.
func (r Rate) MarshalBinary() ([]byte, error) {
	s := r.Scaled()
	buf := make([]byte, PackedLen)
	binary.LittleEndian.PutUint64(buf[0:8], s.Lo)
	binary.LittleEndian.PutUint64(buf[8:16], s.Hi)
	return buf, nil
}

// UnmarshalBinary reads a PackedLen little-endian scaled value.
func (r *Rate) UnmarshalBinary(data []byte) error {
	if len(data) != PackedLen {
		return fmt.Errorf("unpack rate: need %d bytes, got %d", PackedLen, len(data))
	}
	*r = RateFromScaled(Scaled{
		Lo: binary.LittleEndian.Uint64(data[0:8]),
		Hi: binary.LittleEndian.Uint64(data[8:16]),
	})
	return nil
}
