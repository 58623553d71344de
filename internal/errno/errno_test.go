package errno

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_Size(t *testing.T) {
	assert.Equal(t, 127, Table.Len())
}

func TestTable_EveryEntryDescribed(t *testing.T) {
	for _, e := range Table.Entries() {
		assert.NotEmpty(t, e.Description, e.Name)
		assert.NotEqual(t, UnknownDescription, Static().Describe(e), e.Name)
	}
}

func TestTable_Aliases(t *testing.T) {
	for _, name := range []string{"EDEADLOCK", "EOPNOTSUPP", "EWOULDBLOCK"} {
		e, ok := Table.ByName(name)
		require.True(t, ok, name)
		assert.True(t, e.Alias, name)
	}
}

func TestResolve_UnknownName(t *testing.T) {
	m := Table.Resolve("ENOTREAL", 0)
	assert.False(t, m.Found)

	name, num, desc := m.Fields(Static())
	assert.Equal(t, "ENOTREAL", name)
	assert.Equal(t, "-", num)
	assert.Equal(t, UnknownDescription, desc)

	_, _, desc = m.Fields(Native())
	assert.Equal(t, UnknownDescription, desc)
}

func TestResolve_UnknownNumber(t *testing.T) {
	name, num, desc := Table.Resolve("9999", 0).Fields(Static())
	assert.Equal(t, "-", name)
	assert.Equal(t, "9999", num)
	assert.Equal(t, UnknownDescription, desc)
}

func TestDescriber(t *testing.T) {
	assert.IsType(t, Static(), Describer(false))
	assert.IsType(t, Native(), Describer(true))
}
