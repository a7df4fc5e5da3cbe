package endian

import (
	"github.com/stretchr/testify/require"
	"testing"
)

func Test_HostOrder(t *testing.T) {
	require.NotEqual(t, IsLittle(), IsBig())

	buf := make([]byte, 2)
	Host().PutUint16(buf, 0x0102)
	if IsLittle() {
		require.Equal(t, []byte{0x02, 0x01}, buf)
	} else {
		require.Equal(t, []byte{0x01, 0x02}, buf)
	}
}
