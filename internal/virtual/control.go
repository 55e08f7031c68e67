package virtual

import (
	"github.com/sirupsen/logrus"
)

// ScrollTo sets the scroll offset along the active axis
func (e *Engine[K]) ScrollTo(offset int) {
	e.view.SetOffset(offset)
}

// ScrollToIndex scrolls so the item at index starts at the top of the
// viewport. The last item and beyond scroll to the bottom instead.
func (e *Engine[K]) ScrollToIndex(index int) {
	if index >= len(e.opts.UniqueKeys)-1 {
		e.ScrollToBottom()
		return
	}
	e.ScrollTo(e.OffsetOf(index) + e.view.ContentOffset())
}

// ScrollToBottom scrolls to the end of the content, then re-checks after a
// short delay because trailing items may grow once rendered. It retries
// while the bottom has not been reached, at most BottomRetries times.
func (e *Engine[K]) ScrollToBottom() {
	e.stopBottom()
	e.scrollToBottom(1)
}

func (e *Engine[K]) scrollToBottom(attempt int) {
	e.ScrollTo(e.view.ScrollSize())
	e.cancelBottom = e.opts.Scheduler.AfterFunc(bottomRetryDelay, func() {
		e.cancelBottom = nil
		if e.AtBottom() {
			return
		}
		if attempt >= e.opts.BottomRetries {
			e.log.WithFields(logrus.Fields{
				"attempts": attempt,
				"offset":   e.view.Offset(),
				"scroll":   e.view.ScrollSize(),
			}).Debug("Gave up scrolling to bottom")
			return
		}
		e.scrollToBottom(attempt + 1)
	})
}

// AtBottom reports whether the viewport shows the end of the content
func (e *Engine[K]) AtBottom() bool {
	return e.view.Offset()+e.view.ClientSize()+1 >= e.view.ScrollSize()
}

func (e *Engine[K]) stopBottom() {
	if e.cancelBottom != nil {
		e.cancelBottom()
		e.cancelBottom = nil
	}
}
