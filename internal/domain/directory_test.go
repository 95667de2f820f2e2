package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectory(t *testing.T) {
	d := NewDirectory(DefaultPeople...)

	assert.True(t, d.Exists(4))
	assert.False(t, d.Exists(6))
	assert.NoError(t, d.Lookup(1))
	assert.ErrorIs(t, d.Lookup(23), ErrPersonNotFound)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, d.IDs())
	assert.Equal(t, 5, d.Len())
}

func TestDirectory_Duplicates(t *testing.T) {
	d := NewDirectory(3, 1, 3)
	assert.Equal(t, []int{1, 3}, d.IDs())
}

func TestDirectory_Nil(t *testing.T) {
	var d *Directory
	assert.False(t, d.Exists(1))
	assert.Nil(t, d.IDs())
	assert.Equal(t, 0, d.Len())
}
