package seatmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelection_ToggleInvolution(t *testing.T) {
	s := NewSelection()
	s.Toggle("A2", true)
	assert.Equal(t, []string{"A2"}, s.IDs())

	s.Toggle("B1", true)
	s.Toggle("B1", true) // toggle twice restores the original contents
	assert.Equal(t, []string{"A2"}, s.IDs())
}

func TestSelection_UnavailableIsNoop(t *testing.T) {
	s := NewSelection()
	assert.False(t, s.Toggle("A1", false))
	assert.Zero(t, s.Len())

	s.Toggle("A2", true)
	assert.False(t, s.Toggle("A2", false)) // deselect attempt on a now-taken seat changes nothing
	assert.Equal(t, []string{"A2"}, s.IDs())
}

func TestSelection_PreservesPickOrder(t *testing.T) {
	s := NewSelection()
	s.Toggle("C3", true)
	s.Toggle("A1", true)
	s.Toggle("B2", true)
	s.Toggle("A1", true) // drop the middle pick
	assert.Equal(t, []string{"C3", "B2"}, s.IDs())
}

func TestSelection_Total(t *testing.T) {
	s := NewSelection()
	assert.Zero(t, s.Total(8.50))

	s.Toggle("A2", true)
	s.Toggle("A3", true)
	assert.InDelta(t, 17.00, s.Total(8.50), 1e-9)

	s.Toggle("A2", true)
	assert.InDelta(t, 8.50, s.Total(8.50), 1e-9)
}

func TestSelection_Clear(t *testing.T) {
	s := NewSelection()
	s.Toggle("A1", true)
	s.Toggle("A2", true)
	s.Clear()
	assert.Zero(t, s.Len())
	assert.Empty(t, s.IDs())
	assert.False(t, s.Contains("A1"))
}
