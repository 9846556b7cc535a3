package quiz

import (
	"github.com/ahleksu/gail-prac-app/internal/catalog"
)

// catalogLoadedMsg is sent when the one-shot catalog fetch completes. If the
// user navigated away before it arrives, the router discards it with the
// screen.
type catalogLoadedMsg struct {
	Questions []catalog.Question
	Err       error
}

// resultSavedMsg reports the outcome of persisting a finalized result.
// Failures degrade to "no persisted result"; the session itself is done.
type resultSavedMsg struct {
	Err error
}
