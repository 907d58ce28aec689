package id_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frazier-at-cpcc/tsugi-xapi/internal/id"
)

func TestGenerateID(t *testing.T) {
	a, b := id.GenerateID(), id.GenerateID()
	assert.NotEqual(t, a, b)
	assert.True(t, id.Valid(a))
	assert.False(t, id.Valid("not-a-uuid"))
	assert.False(t, id.Valid(""))
}

func TestFingerprint(t *testing.T) {
	f := id.Fingerprint("Learner@Example.edu ")
	assert.Len(t, f, 12)
	assert.Equal(t, f, id.Fingerprint("learner@example.edu"))
	assert.NotEqual(t, f, id.Fingerprint("other@example.edu"))
	assert.NotContains(t, f, "learner")
}
