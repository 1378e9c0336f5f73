package examscreen

import (
	"time"

	"github.com/edugen/tka/internal/exam"
)

// FinishedMsg is emitted when the exam has been scored, so the app can
// show the results screen.
type FinishedMsg struct {
	Result *exam.Result
}

// LeftMsg is emitted when the learner leaves a running exam. The
// attempt stays snapshotted and can be resumed from home.
type LeftMsg struct{}

// examReadyMsg is sent when generation completes (or fails).
type examReadyMsg struct {
	err error
}

// timerTickMsg drives the one-second countdown refresh.
type timerTickMsg time.Time

// loadingTickMsg rotates the generation status message.
type loadingTickMsg time.Time

// answerSavedMsg confirms answer persistence completed.
type answerSavedMsg struct {
	err error
}

// finalizedMsg carries the scored result back into the update loop.
type finalizedMsg struct {
	result *exam.Result
	err    error
}
