package customer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribe(t *testing.T) {
	c := New("Ada", "Lovelace", "123")
	assert.Equal(t, "Ada Lovelace (123)", c.Describe())
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	ada := New("Ada", "Lovelace", "123")
	alan := New("Alan", "Turing", "456")

	require.NoError(t, r.Register(ada))
	require.NoError(t, r.Register(alan))

	got, err := r.Find("456")
	require.NoError(t, err)
	assert.Same(t, alan, got)

	list := r.List()
	require.Len(t, list, 2)
	assert.Same(t, ada, list[0])
	assert.Same(t, alan, list[1])
}

func TestRegistry_Duplicate(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(New("Ada", "Lovelace", "123")))

	var dupErr *DuplicateError
	require.ErrorAs(t, r.Register(New("Someone", "Else", "123")), &dupErr)
	assert.Equal(t, "123", dupErr.NationalID)
	assert.Len(t, r.List(), 1)
}

func TestRegistry_FindMissing(t *testing.T) {
	_, err := NewRegistry().Find("999")

	var nfErr *NotFoundError
	require.ErrorAs(t, err, &nfErr)
	assert.Equal(t, "999", nfErr.NationalID)
}

func TestRegistry_Remove(t *testing.T) {
	r := NewRegistry()
	ada := New("Ada", "Lovelace", "123")
	require.NoError(t, r.Register(ada))
	require.NoError(t, r.Register(New("Alan", "Turing", "456")))

	require.NoError(t, r.Remove("123"))

	_, err := r.Find("123")
	var nfErr *NotFoundError
	require.ErrorAs(t, err, &nfErr)
	assert.Len(t, r.List(), 1)

	// The removed record itself is untouched.
	assert.Equal(t, "Ada Lovelace (123)", ada.Describe())

	require.ErrorAs(t, r.Remove("123"), &nfErr)
}
