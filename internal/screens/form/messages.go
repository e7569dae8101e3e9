package form

import (
	"time"

	"github.com/arjun/roadmapper/internal/roadmap"
)

// resultMsg is sent when roadmap generation finishes.
type resultMsg struct {
	Result *roadmap.Result
	Err    error
}

// spinnerTickMsg animates the busy spinner during generation.
type spinnerTickMsg time.Time
