package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestMonitor(t *testing.T) {
	t.Run("reports the live count on every tick", func(t *testing.T) {
		// Arrange
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStore := NewMockStore(ctrl)
		mockStore.EXPECT().Len().Return(3).MinTimes(2)

		reports := make(chan int, 10)
		m := NewMonitor(mockStore, 10*time.Millisecond, func(live int) {
			reports <- live
		})

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})

		// Act
		go func() {
			m.Run(ctx)
			close(done)
		}()

		// Assert
		for i := 0; i < 2; i++ {
			select {
			case live := <-reports:
				assert.Equal(t, 3, live)
			case <-time.After(time.Second):
				t.Fatal("monitor did not report in time")
			}
		}

		cancel()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("monitor did not stop after cancel")
		}
	})

	t.Run("stops without reporting when cancelled first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStore := NewMockStore(ctrl)
		called := false
		m := NewMonitor(mockStore, time.Hour, func(int) { called = true })

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		m.Run(ctx)

		assert.False(t, called)
	})

	t.Run("counts a real store", func(t *testing.T) {
		store := NewCacheStore(time.Minute, time.Minute)
		store.Create()
		store.Create()

		reports := make(chan int, 1)
		m := NewMonitor(store, 5*time.Millisecond, func(live int) {
			select {
			case reports <- live:
			default:
			}
		})

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go m.Run(ctx)

		select {
		case live := <-reports:
			assert.Equal(t, 2, live)
		case <-time.After(time.Second):
			t.Fatal("monitor did not report in time")
		}
	})
}
