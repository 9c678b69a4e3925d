package raster

import (
	"bytes"
	"encoding/binary"
	"errors"
)

type DpiType uint8

const (
	DpiNoUnits DpiType = iota
	DpiPxPerInch
	DpiPxPerSm
)

// EnsureJFIFAPP0 inserts JFIF APP0 marker segment with the given density if
// it is missing. Standard library encoder never writes one and some readers
// guess wrong physical size without it.
func EnsureJFIFAPP0(data []byte, dpit DpiType, xdensity, ydensity uint16) ([]byte, bool, error) {
	if len(data) < 4 {
		return nil, false, errors.New("jpeg too small")
	}
	if data[0] != 0xFF || data[1] != 0xD8 {
		return nil, false, errors.New("not a jpeg")
	}

	marker := []byte{0xFF, 0xE0}                             // APP0
	jfif := []byte{0x4A, 0x46, 0x49, 0x46, 0x00, 0x01, 0x02} // JFIF + version

	if data[2] == marker[0] && data[3] == marker[1] {
		return data, false, nil
	}

	buf := new(bytes.Buffer)
	buf.Grow(len(data) + 18)
	buf.Write(data[:2])
	buf.Write(marker)
	_ = binary.Write(buf, binary.BigEndian, uint16(0x10)) // length
	buf.Write(jfif)
	_ = binary.Write(buf, binary.BigEndian, uint8(dpit))
	_ = binary.Write(buf, binary.BigEndian, xdensity)
	_ = binary.Write(buf, binary.BigEndian, ydensity)
	_ = binary.Write(buf, binary.BigEndian, uint16(0)) // no thumbnail
	buf.Write(data[2:])
	return buf.Bytes(), true, nil
}
