package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChecksum_Deterministic(t *testing.T) {
	data := []byte(`{"a":1}`)

	require.Equal(t, Checksum(data), Checksum(data))
	require.NotEqual(t, Checksum(data), Checksum([]byte(`{"a":2}`)))
}

func TestChecksumString_MatchesBytes(t *testing.T) {
	text := `{"name":"cpu.usage"}`

	require.Equal(t, Checksum([]byte(text)), ChecksumString(text))
}

func TestChecksum_Empty(t *testing.T) {
	require.Equal(t, Checksum(nil), ChecksumString(""))
}
