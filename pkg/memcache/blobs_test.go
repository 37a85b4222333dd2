package mem

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlobsSetGet(t *testing.T) {
	s := NewBlobs()
	src := []byte("hello")
	s.Set("k", src, 0)
	src[0] = 'j'

	got, ok := s.Get("k")
	require.True(t, ok)
	assert.Equal(t, "hello", string(got))

	got[0] = 'y'
	again, _ := s.Get("k")
	assert.Equal(t, "hello", string(again))
}

func TestBlobsExpiry(t *testing.T) {
	s := NewBlobs()
	s.Set("k", []byte("v"), time.Millisecond)
	time.Sleep(5 * time.Millisecond)

	_, ok := s.Get("k")
	assert.False(t, ok)
}

func TestBlobsDelete(t *testing.T) {
	s := NewBlobs()
	s.Set("k", []byte("v"), 0)
	s.Delete("k")

	_, ok := s.Get("k")
	assert.False(t, ok)
}
