package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResourceLifecycle(t *testing.T) {
	t.Run("pending clears previous error and status", func(t *testing.T) {
		r := NewResource("")
		r.RejectCode("boom", 500)

		r.Pending()

		snap := r.Snapshot()
		assert.True(t, snap.Loading)
		assert.Empty(t, snap.Error)
		assert.Zero(t, snap.StatusCode)
	})

	t.Run("fulfill replaces data wholesale", func(t *testing.T) {
		r := NewResource([]string{"old"})
		r.Pending()

		r.Fulfill([]string{"new"})

		snap := r.Snapshot()
		assert.False(t, snap.Loading)
		assert.Equal(t, []string{"new"}, snap.Data)
		assert.Empty(t, snap.Error)
	})

	t.Run("error and data are mutually exclusive outcomes", func(t *testing.T) {
		r := NewResource("")

		r.Fulfill("ok")
		assert.Empty(t, r.Snapshot().Error)

		r.Reject("failed")
		snap := r.Snapshot()
		assert.Equal(t, "failed", snap.Error)
		assert.False(t, snap.Loading)
	})

	t.Run("fulfill code keeps the http status", func(t *testing.T) {
		r := NewResource("")

		r.FulfillCode("created", 201)

		snap := r.Snapshot()
		assert.Equal(t, "created", snap.Data)
		assert.Equal(t, 201, snap.StatusCode)
	})

	t.Run("reject code keeps the http status", func(t *testing.T) {
		r := NewResource("")

		r.RejectCode("forbidden", 403)

		snap := r.Snapshot()
		assert.Equal(t, "forbidden", snap.Error)
		assert.Equal(t, 403, snap.StatusCode)
	})
}

func TestResourceReset(t *testing.T) {
	t.Run("returns to the exact initial value", func(t *testing.T) {
		r := NewResource("initial")
		r.FulfillCode("changed", 200)

		r.Reset()

		assert.Equal(t, Snapshot[string]{Data: "initial"}, r.Snapshot())
	})

	t.Run("resetting twice is a no-op", func(t *testing.T) {
		r := NewResource(42)
		r.Reject("boom")

		r.Reset()
		first := r.Snapshot()
		r.Reset()

		assert.Equal(t, first, r.Snapshot())
	})

	t.Run("clears a pending flag left by an abandoned call", func(t *testing.T) {
		r := NewResource("")
		r.Pending()

		r.Reset()

		assert.False(t, r.Loading())
	})
}
