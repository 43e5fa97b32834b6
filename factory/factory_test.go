package factory

import (
	"math"
	"testing"
)

func TestFactory(t *testing.T) {
	t.Run("creates a count function", func(t *testing.T) {
		count := Factory(WithStart(1.0), WithStep(1.0))
		assertSequence(t, count, 2, 3)
	})

	t.Run("creates a count starting from 10 with a step of 5", func(t *testing.T) {
		count := Factory(WithStart(10.0), WithStep(5.0))
		assertSequence(t, count, 15, 20)
	})

	t.Run("defaults to start 0, step 1 when no arguments passed", func(t *testing.T) {
		count := Factory[float64]()
		assertSequence(t, count, 1, 2)
	})

	t.Run("creates a count starting from -100 with a step of 50", func(t *testing.T) {
		count := Factory(WithStart(-100.0), WithStep(50.0))
		assertSequence(t, count, -50, 0, 50)
	})

	t.Run("creates a count starting from 100 with a step of -50", func(t *testing.T) {
		count := Factory(WithStart(100.0), WithStep(-50.0))
		assertSequence(t, count, 50, 0, -50)
	})

	t.Run("creates a count with large magnitude values", func(t *testing.T) {
		count := Factory(WithStart(141_592_653_589_793.0), WithStep(141_592_653_589_793.0))
		assertSequence(t, count, 283_185_307_179_586, 424_777_960_769_379, 566_370_614_359_172)
	})

	t.Run("creates a count starting from 0 with a step of 0", func(t *testing.T) {
		count := Factory(WithStart(0.0), WithStep(0.0))
		assertSequence(t, count, 0, 0, 0)
	})

	t.Run("creates a count starting from 5 with a step of 0", func(t *testing.T) {
		count := Factory(WithStart(5.0), WithStep(0.0))
		assertSequence(t, count, 5, 5, 5)
	})

	t.Run("when no start is passed, defaults to start from 0", func(t *testing.T) {
		count := Factory(WithStep(5.0))
		assertSequence(t, count, 5, 10, 15)
	})

	t.Run("when no step is passed, defaults to a step of 1", func(t *testing.T) {
		count := Factory(WithStart(5.0))
		assertSequence(t, count, 6, 7, 8)
	})

	t.Run("works with integer types", func(t *testing.T) {
		count := Factory(WithStart(int64(-3)), WithStep(int64(2)))
		assertSequence(t, count, -1, 1, 3)
	})

	t.Run("steps by fractions with float addition", func(t *testing.T) {
		tenth := 0.1
		count := Factory(WithStep(tenth))
		assertSequence(t, count, tenth, tenth+tenth, tenth+tenth+tenth)
	})
}

func TestCounter(t *testing.T) {
	t.Run("nth call returns start plus n steps", func(t *testing.T) {
		cases := []struct {
			start, step float64
		}{
			{0, 1},
			{1, 1},
			{10, 5},
			{-100, 50},
			{3000, -500},
			{-30000, 4500},
			{7, 0},
		}

		for _, tc := range cases {
			c := New(tc.start, tc.step)
			for n := 1; n <= 100; n++ {
				got := c.Next()
				want := tc.start + float64(n)*tc.step
				if got != want {
					t.Fatalf("New(%v, %v): call %d got %v, want %v", tc.start, tc.step, n, got, want)
				}
			}
		}
	})

	t.Run("exposes its step", func(t *testing.T) {
		AssertEqual(t, New(2, -7).Step(), -7)
	})

	t.Run("counters do not share state", func(t *testing.T) {
		first := Factory[int]()
		second := Factory[int]()

		first()
		first()
		first()

		AssertEqual(t, second(), 1)
		AssertEqual(t, first(), 4)
	})

	t.Run("does not guard against overflow", func(t *testing.T) {
		c := New[int8](math.MaxInt8-1, 1)
		AssertEqual(t, c.Next(), math.MaxInt8)
		AssertEqual(t, c.Next(), math.MinInt8)
	})
}

func assertSequence[T Number](t testing.TB, count func() T, want ...T) {
	t.Helper()
	for i, w := range want {
		if got := count(); got != w {
			t.Errorf("call %d: got %v, want %v", i+1, got, w)
		}
	}
}

func AssertEqual[T comparable](t testing.TB, got, want T) {
	t.Helper()
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
