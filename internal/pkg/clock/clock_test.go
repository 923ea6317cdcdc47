package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSystem_Now(t *testing.T) {
	t.Parallel()

	before := time.Now()
	got := New().Now()
	assert.False(t, got.Before(before))

	loc := time.FixedZone("WIB", 7*60*60)
	assert.Equal(t, loc, NewIn(loc).Now().Location())

	var nilClock *System
	assert.WithinDuration(t, time.Now(), nilClock.Now(), time.Second)
}

func TestFixed_Now(t *testing.T) {
	t.Parallel()

	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, at, Fixed(at).Now())
}
