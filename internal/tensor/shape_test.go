package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapeBasics(t *testing.T) {
	s := Shape{3, 4, 5}
	assert.Equal(t, 3, s.Rank())
	assert.Equal(t, 60, s.NumElements())
	assert.Equal(t, []int{20, 5, 1}, s.ComputeStrides())
	assert.Equal(t, "(3, 4, 5)", s.String())

	assert.Equal(t, 1, Shape{}.NumElements(), "scalar has one element")
	assert.Equal(t, 0, Shape{2, 0}.NumElements())
	assert.Equal(t, "()", Shape{}.String())
}

func TestShapeValidate(t *testing.T) {
	require.NoError(t, Shape{0, 3}.Validate())
	require.Error(t, Shape{2, -1}.Validate())
}

func TestShapeWithout(t *testing.T) {
	s := Shape{3, 1, 5, 1}
	assert.Equal(t, Shape{3, 5}, s.Without(3, 1))
	assert.Equal(t, Shape{3, 1, 5, 1}, s, "receiver must not change")
	assert.True(t, s.Clone().Equal(s))
	assert.False(t, s.Equal(Shape{3, 1, 5}))
}

func TestNames(t *testing.T) {
	n := Names{"a", "", "c"}
	assert.Equal(t, "(:a, nil, :c)", n.String())

	pos, ok := n.Index("c")
	assert.True(t, ok)
	assert.Equal(t, 2, pos)

	_, ok = n.Index("")
	assert.False(t, ok, "empty names never match")
	_, ok = n.Index("b")
	assert.False(t, ok)

	assert.Equal(t, Names{"a"}, n.Without(1, 2))
	assert.Equal(t, Names{"", ""}, Unnamed(2))
	assert.True(t, n.Clone().Equal(n))
}

func TestNamesValidate(t *testing.T) {
	require.NoError(t, Names{"a", "", ""}.Validate(), "unnamed axes may repeat")

	err := Names{"a", "b", "a", "b"}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `axis name "a" used by axes 0 and 2`)
	assert.Contains(t, err.Error(), `axis name "b" used by axes 1 and 3`)
}

func TestParseDataType(t *testing.T) {
	for dt := Float32; dt <= Bool; dt++ {
		got, err := ParseDataType(dt.String())
		require.NoError(t, err)
		assert.Equal(t, dt, got)
	}
	_, err := ParseDataType("complex64")
	require.Error(t, err)

	assert.True(t, Int64.IsInteger())
	assert.True(t, Uint8.IsInteger())
	assert.False(t, Float32.IsInteger())
	assert.False(t, Bool.IsInteger())
}
