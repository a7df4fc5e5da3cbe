// Package endian reports the byte order of the running machine.
package endian

import (
	"encoding/binary"
	"unsafe"
)

var hostOrder = func() binary.ByteOrder {
	var probe uint16 = 1
	if (*[2]byte)(unsafe.Pointer(&probe))[0] == 1 {
		return binary.LittleEndian
	}
	return binary.BigEndian
}()

// Host returns the machine byte order, usable with encoding/binary readers
// and writers.
func Host() binary.ByteOrder {
	return hostOrder
}

// IsLittle reports whether the machine stores the least significant byte
// first.
func IsLittle() bool {
	return hostOrder == binary.LittleEndian
}

// IsBig reports whether the machine stores the most significant byte first.
func IsBig() bool {
	return hostOrder == binary.BigEndian
}
