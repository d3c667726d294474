package ldse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildArchViewDefaultsAndBlockSize(t *testing.T) {
	arch := ArchSpec{Levels: []ArchLevelSpec{
		{Name: "L0", BlockSize: i64(16)},
		{Name: "L1", TotalCapacity: i64(4096), ReadBW: i64(8), WriteBW: i64(32)},
	}}
	bypass := [][]bool{{false, true}, {true, false}}

	av, err := buildArchView(arch, bypass, 2)
	require.NoError(t, err)

	assert.Equal(t, uint32(maxUint32), av.TotalCapacity[0])
	assert.Equal(t, uint32(16), av.LineCapacity[0])

	assert.Equal(t, uint32(4096), av.TotalCapacity[1])
	assert.Equal(t, uint32(32), av.LineCapacity[1]) // max(readBW, writeBW)

	assert.Equal(t, [][]bool{{true, false}, {false, true}}, av.Kept)
}

func TestBuildArchViewRejectsEmptyLevels(t *testing.T) {
	_, err := buildArchView(ArchSpec{}, nil, 1)
	require.Error(t, err)
	var cfgErr *ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestSaturateUint32ClampsOversizedCapacity(t *testing.T) {
	arch := ArchSpec{Levels: []ArchLevelSpec{{Name: "L0", TotalCapacity: i64(1 << 40), BlockSize: i64(1 << 40)}}}
	av, err := buildArchView(arch, nil, 1)
	require.NoError(t, err)
	assert.Equal(t, uint32(maxUint32), av.TotalCapacity[0])
	assert.Equal(t, uint32(maxUint32), av.LineCapacity[0])
}
