package imagine_test

import (
	"testing"

	"github.com/fwojciec/imagine"
	"github.com/stretchr/testify/assert"
)

func TestOutcome_Success(t *testing.T) {
	t.Parallel()
	o := imagine.Success("/tmp/images/img.png", []byte("PNG"))
	assert.False(t, o.Failed())
	assert.True(t, o.Valid())
	assert.Equal(t, "/tmp/images/img.png", o.Path)
	assert.Equal(t, []byte("PNG"), o.Data)
}

func TestOutcome_Failure(t *testing.T) {
	t.Parallel()
	o := imagine.Failure("no image produced")
	assert.True(t, o.Failed())
	assert.False(t, o.Valid())
	assert.Equal(t, "no image produced", o.Reason)
}

// A success that references no artifact at all is malformed: callers treat
// it as a failure.
func TestOutcome_EmptySuccessInvalid(t *testing.T) {
	t.Parallel()
	o := imagine.Success("", nil)
	assert.False(t, o.Failed())
	assert.False(t, o.Valid())
}

func TestOutcome_PathOnlyValid(t *testing.T) {
	t.Parallel()
	o := imagine.Success("/tmp/images/img.png", nil)
	assert.True(t, o.Valid())
}
