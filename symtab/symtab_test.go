package symtab

import (
	"strings"
	"testing"

	"github.com/attic/dbgshell/expr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableResolve(t *testing.T) {
	table := New()
	table.Set("main", 0x4400)

	addr, ok := table.Resolve("main")
	assert.True(t, ok)
	assert.Equal(t, uint16(0x4400), addr)

	_, ok = table.Resolve("MAIN")
	assert.False(t, ok)

	assert.True(t, table.Delete("main"))
	assert.False(t, table.Delete("main"))
	assert.Zero(t, table.Len())
}

func TestTableFind(t *testing.T) {
	table := New()
	table.Set("reset_vector", 0xfffe)
	table.Set("main", 0x4400)
	table.Set("Main_loop", 0x4420)

	assert.Equal(t, []Symbol{
		{Name: "Main_loop", Address: 0x4420},
		{Name: "main", Address: 0x4400},
		{Name: "reset_vector", Address: 0xfffe},
	}, table.Symbols())

	assert.Equal(t, []Symbol{
		{Name: "Main_loop", Address: 0x4420},
		{Name: "main", Address: 0x4400},
	}, table.Find("MAIN"))

	assert.Empty(t, table.Find("nothing"))
}

func TestLoad(t *testing.T) {
	doc := `
main: 0x4400
loop: main+0x20
count: 16
end: loop - 1
`
	table := New()
	require.NoError(t, table.Load(strings.NewReader(doc)))

	tests := []struct {
		name     string
		expected uint16
	}{
		{"main", 0x4400},
		{"loop", 0x4420},
		{"count", 16},
		{"end", 0x441f},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr, ok := table.Resolve(tt.name)
			require.True(t, ok)
			assert.Equal(t, tt.expected, addr)
		})
	}

	got, err := expr.Evaluate("end+1", table)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x4420), got)
}

func TestLoadEmpty(t *testing.T) {
	table := New()
	require.NoError(t, table.Load(strings.NewReader("")))
	require.NoError(t, table.Load(strings.NewReader("# nothing\n")))
	assert.Zero(t, table.Len())
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		contains string
	}{
		{"Forward reference", "a: b+1\nb: 2\n", "symbol a (line 1): unknown token: b"},
		{"Not a mapping", "- a\n- b\n", "expected a mapping"},
		{"Nested value", "a:\n  b: 1\n", "expected a scalar value"},
		{"Bad YAML", "a: [1,\n", "decoding symbols"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New().Load(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}
