package signal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_Size(t *testing.T) {
	assert.Equal(t, 38, Table.Len())
}

func TestTable_EveryEntryDescribed(t *testing.T) {
	for _, e := range Table.Entries() {
		assert.NotEqual(t, UnknownDescription, Static().Describe(e), e.Name)
	}
}

func TestTable_Aliases(t *testing.T) {
	for _, name := range []string{"SIGCLD", "SIGINFO", "SIGIOT", "SIGPOLL", "SIGUNUSED"} {
		e, ok := Table.ByName(name)
		require.True(t, ok, name)
		assert.True(t, e.Alias, name)
	}
}

func TestNumberlessSignals(t *testing.T) {
	for _, name := range []string{"SIGEMT", "SIGLOST"} {
		m := Table.Resolve(name, 0)
		require.True(t, m.Found, name)

		_, num, desc := m.Fields(Static())
		assert.Equal(t, "-", num)
		assert.NotEqual(t, UnknownDescription, desc)

		_, _, desc = m.Fields(Native())
		assert.Equal(t, UnknownDescription, desc)
	}
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Offset(false))
	assert.Equal(t, -128, Offset(true))
}

func TestResolve_UnknownStatus(t *testing.T) {
	name, num, desc := Table.Resolve("1", Offset(true)).Fields(Static())
	assert.Equal(t, "-", name)
	assert.Equal(t, "-127", num)
	assert.Equal(t, UnknownDescription, desc)
}
