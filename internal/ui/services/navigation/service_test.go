package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmptyList(t *testing.T) {
	s := NewService(0)
	assert.Equal(t, -1, s.Cursor())
	assert.False(t, s.Navigate(DirectionDown))

	start, end := s.Window()
	assert.Equal(t, 0, start)
	assert.Equal(t, 0, end)
}

func TestNavigateClampsToList(t *testing.T) {
	s := NewService(3)

	assert.False(t, s.Navigate(DirectionUp))
	assert.True(t, s.Navigate(DirectionDown))
	assert.True(t, s.Navigate(DirectionDown))
	assert.False(t, s.Navigate(DirectionDown))
	assert.Equal(t, 2, s.Cursor())

	s.Navigate(DirectionHome)
	assert.Equal(t, 0, s.Cursor())
	s.Navigate(DirectionEnd)
	assert.Equal(t, 2, s.Cursor())
}

func TestViewportFollowsCursor(t *testing.T) {
	s := NewService(20)
	s.SetViewportHeight(5)

	for i := 0; i < 7; i++ {
		s.Navigate(DirectionDown)
	}
	assert.Equal(t, 7, s.Cursor())
	assert.Equal(t, 3, s.ViewportOffset())

	start, end := s.Window()
	assert.Equal(t, 3, start)
	assert.Equal(t, 8, end)

	s.Navigate(DirectionPageUp)
	assert.Equal(t, 3, s.Cursor())
	assert.Equal(t, 3, s.ViewportOffset())

	s.Navigate(DirectionPageDown)
	s.Navigate(DirectionPageDown)
	assert.Equal(t, 11, s.Cursor())
	assert.Equal(t, 7, s.ViewportOffset())
}

func TestSetCountClampsCursor(t *testing.T) {
	s := NewService(10)
	s.MoveToIndex(9)

	s.SetCount(4)
	assert.Equal(t, 3, s.Cursor())
	assert.LessOrEqual(t, s.ViewportOffset(), 3)

	s.MoveToIndex(-5)
	assert.Equal(t, 0, s.Cursor())
}
