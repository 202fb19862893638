package anim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func TestTweenAt(t *testing.T) {
	tw := Tween{From: 0, To: 100, Start: epoch, Duration: 200 * time.Millisecond, Ease: Linear}

	assert.Equal(t, 0.0, tw.At(epoch.Add(-time.Second)))
	assert.Equal(t, 0.0, tw.At(epoch))
	assert.InDelta(t, 50.0, tw.At(epoch.Add(100*time.Millisecond)), 1e-9)
	assert.Equal(t, 100.0, tw.At(epoch.Add(200*time.Millisecond)))
	assert.Equal(t, 100.0, tw.At(epoch.Add(time.Hour)))
	assert.True(t, tw.Done(epoch.Add(200*time.Millisecond)))
	assert.False(t, tw.Done(epoch.Add(199*time.Millisecond)))
}

func TestTweenZeroDuration(t *testing.T) {
	tw := Tween{From: 3, To: 7, Start: epoch}
	assert.Equal(t, 7.0, tw.At(epoch))
	assert.True(t, tw.Done(epoch))
}

func TestEaseInOut(t *testing.T) {
	assert.Equal(t, 0.0, EaseInOut(0))
	assert.InDelta(t, 0.5, EaseInOut(0.5), 1e-9)
	assert.InDelta(t, 1.0, EaseInOut(1), 1e-9)
	assert.Less(t, EaseInOut(0.25), 0.25)
	assert.Greater(t, EaseInOut(0.75), 0.75)
}

func TestValue(t *testing.T) {
	v := NewValue(10)
	assert.False(t, v.Animating())
	assert.True(t, v.Advance(epoch))

	v.AnimateTo(20, epoch, 100*time.Millisecond, Linear)
	assert.True(t, v.Animating())
	assert.Equal(t, 20.0, v.Target())

	assert.False(t, v.Advance(epoch.Add(50*time.Millisecond)))
	assert.InDelta(t, 15.0, v.Get(), 1e-9)

	// retargeting starts from wherever the value currently is
	v.AnimateTo(0, epoch.Add(50*time.Millisecond), 100*time.Millisecond, Linear)
	assert.False(t, v.Advance(epoch.Add(100*time.Millisecond)))
	assert.InDelta(t, 7.5, v.Get(), 1e-9)

	assert.True(t, v.Advance(epoch.Add(150*time.Millisecond)))
	assert.Equal(t, 0.0, v.Get())
	assert.False(t, v.Animating())
}

func TestValueSetAndFinish(t *testing.T) {
	v := NewValue(0)
	v.AnimateTo(5, epoch, time.Second, Linear)
	v.Finish()
	assert.Equal(t, 5.0, v.Get())
	assert.False(t, v.Animating())

	v.AnimateTo(9, epoch, time.Second, Linear)
	v.Set(1)
	assert.Equal(t, 1.0, v.Get())
	assert.False(t, v.Animating())
}
