package advanced

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandleVoronoiPanicRecover(t *testing.T) {
	testFn := func(shouldThrow bool, shouldPanic bool) (err error) {
		defer func() {
			recoveredErr := HandleVoronoiPanicRecover(recover())
			if recoveredErr != nil {
				err = recoveredErr
			}
		}()

		if shouldThrow {
			NewDiagram([]Point{{X: 1, Y: 1}}, Rectangle{X: 0, Y: 0, Width: 2, Height: 2}, Options{Weights: []float64{1, 2}})
		}

		if shouldPanic {
			panic("true panic")
		}

		return nil
	}

	t.Run("with throw", func(t *testing.T) {
		err := testFn(true, false)
		assert.EqualError(t, err, "got 2 weights for 1 points")
	})

	t.Run("with real panic", func(t *testing.T) {
		assert.Panics(t, func() {
			testFn(false, true)
		})
	})

	t.Run("no error", func(t *testing.T) {
		err := testFn(false, false)
		assert.NoError(t, err)
	})
}
