package enc

import (
	"encoding/binary"
	"github.com/pkg/errors"
	"unsafe"
)

// hostOrder is the byte order of the machine this process runs on. Views
// follow it so that reinterpreting decoded bytes gives the same result as
// a plain in-memory cast would.
var hostOrder = func() binary.ByteOrder {
	var probe uint16 = 1
	if (*[2]byte)(unsafe.Pointer(&probe))[0] == 1 {
		return binary.LittleEndian
	}
	return binary.BigEndian
}()

// Uint16View reinterprets buf as 16-bit unsigned values in host byte
// order. The buffer length must be a multiple of 2; decode with a matching
// block size to guarantee that, see MimeEncoder.DecodeBlocks.
func Uint16View(buf []byte) ([]uint16, error) {
	if len(buf)%2 != 0 {
		return nil, errors.Errorf("cannot view %d bytes as uint16: not a multiple of 2", len(buf))
	}
	res := make([]uint16, len(buf)/2)
	for i := range res {
		res[i] = hostOrder.Uint16(buf[i*2:])
	}
	return res, nil
}

// Uint32View reinterprets buf as 32-bit unsigned values in host byte
// order. The buffer length must be a multiple of 4.
func Uint32View(buf []byte) ([]uint32, error) {
	if len(buf)%4 != 0 {
		return nil, errors.Errorf("cannot view %d bytes as uint32: not a multiple of 4", len(buf))
	}
	res := make([]uint32, len(buf)/4)
	for i := range res {
		res[i] = hostOrder.Uint32(buf[i*4:])
	}
	return res, nil
}

// Uint64View reinterprets buf as 64-bit unsigned values in host byte
// order. The buffer length must be a multiple of 8.
func Uint64View(buf []byte) ([]uint64, error) {
	if len(buf)%8 != 0 {
		return nil, errors.Errorf("cannot view %d bytes as uint64: not a multiple of 8", len(buf))
	}
	res := make([]uint64, len(buf)/8)
	for i := range res {
		res[i] = hostOrder.Uint64(buf[i*8:])
	}
	return res, nil
}

// Uint16Bytes is the inverse of Uint16View.
func Uint16Bytes(vals []uint16) []byte {
	res := make([]byte, len(vals)*2)
	for i, v := range vals {
		hostOrder.PutUint16(res[i*2:], v)
	}
	return res
}

// Uint32Bytes is the inverse of Uint32View.
func Uint32Bytes(vals []uint32) []byte {
	res := make([]byte, len(vals)*4)
	for i, v := range vals {
		hostOrder.PutUint32(res[i*4:], v)
	}
	return res
}

// Uint64Bytes is the inverse of Uint64View.
func Uint64Bytes(vals []uint64) []byte {
	res := make([]byte, len(vals)*8)
	for i, v := range vals {
		hostOrder.PutUint64(res[i*8:], v)
	}
	return res
}
