package schedule_test

import (
	"context"
	"sync/atomic"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/hospital-mgmt/frontdesk/schedule"
)

var _ = Describe("Timers", func() {
	It("waits for scheduled functions", func() {
		timers := schedule.NewTimers()
		var ran atomic.Bool
		timers.After(20*time.Millisecond, func() { ran.Store(true) })

		Expect(timers.Wait(context.Background())).To(Succeed())
		Expect(ran.Load()).To(BeTrue())
	})

	It("stops waiting when the context is done", func() {
		timers := schedule.NewTimers()
		timers.After(time.Hour, func() {})

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()
		Expect(timers.Wait(ctx)).To(MatchError(context.DeadlineExceeded))
	})

	It("returns at once when nothing is scheduled", func() {
		Expect(schedule.NewTimers().Wait(context.Background())).To(Succeed())
	})
})

var _ = Describe("Immediate", func() {
	It("runs the function synchronously", func() {
		ran := false
		schedule.Immediate{}.After(time.Hour, func() { ran = true })
		Expect(ran).To(BeTrue())
	})
})
