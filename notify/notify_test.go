package notify_test

import (
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/hospital-mgmt/frontdesk/notify"
)

type sink struct {
	mu        sync.Mutex
	shown     []string
	dismissed []string
}

func (s *sink) Shown(n notify.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shown = append(s.shown, n.Message)
}

func (s *sink) Dismissed(n notify.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dismissed = append(s.dismissed, n.Message)
}

func (s *sink) Dismissals() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string{}, s.dismissed...)
}

func messages(board *notify.Board) []string {
	var result []string
	for _, n := range board.Active() {
		result = append(result, n.Message)
	}
	return result
}

var _ = Describe("Board", func() {
	const ttl = 50 * time.Millisecond

	var s *sink

	BeforeEach(func() {
		s = &sink{}
	})

	It("removes success banners after the ttl", func() {
		board := notify.NewBoard(notify.ModeAppend, ttl, s)
		DeferCleanup(board.Close)

		board.Show("saved", notify.SeveritySuccess)
		Expect(messages(board)).To(Equal([]string{"saved"}))

		Eventually(board.Active).Should(BeEmpty())
		Expect(s.Dismissals()).To(Equal([]string{"saved"}))
	})

	It("keeps danger banners", func() {
		board := notify.NewBoard(notify.ModeAppend, ttl, s)
		DeferCleanup(board.Close)

		board.Show("failed", notify.SeverityDanger)
		Consistently(board.Active, 3*ttl).Should(HaveLen(1))
	})

	It("dismisses banners on request", func() {
		board := notify.NewBoard(notify.ModeAppend, ttl, s)
		board.Show("failed", notify.SeverityDanger)

		id := board.Active()[0].Id
		Expect(board.Dismiss(id)).To(BeTrue())
		Expect(board.Dismiss(id)).To(BeFalse())
		Expect(board.Active()).To(BeEmpty())
	})

	It("appends in append mode", func() {
		board := notify.NewBoard(notify.ModeAppend, time.Hour, s)
		DeferCleanup(board.Close)

		board.Show("first", notify.SeverityDanger)
		board.Show("second", notify.SeverityInfo)
		Expect(messages(board)).To(Equal([]string{"first", "second"}))
	})

	It("replaces in replace mode", func() {
		board := notify.NewBoard(notify.ModeReplace, time.Hour, s)
		DeferCleanup(board.Close)

		board.Show("first", notify.SeverityDanger)
		board.Show("second", notify.SeveritySuccess)
		Expect(messages(board)).To(Equal([]string{"second"}))
		Expect(s.Dismissals()).To(Equal([]string{"first"}))
	})

	It("does not dismiss anything when closed", func() {
		board := notify.NewBoard(notify.ModeAppend, ttl, s)
		board.Show("saved", notify.SeveritySuccess)
		board.Close()

		Consistently(board.Active, 3*ttl).Should(HaveLen(1))
	})

	It("uses the default ttl when none is given", func() {
		Expect(notify.SeverityInfo.AutoDismiss()).To(BeTrue())
		Expect(notify.SeverityDanger.AutoDismiss()).To(BeFalse())
		board := notify.NewBoard(notify.ModeAppend, 0)
		board.Show("x", notify.SeverityInfo)
		Expect(board.Active()[0].Id).ToNot(BeEmpty())
		board.Close()
	})
})
