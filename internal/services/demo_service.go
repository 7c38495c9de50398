package services

import (
	"time"

	"github.com/demoproject/demo-app/internal/models"
	"github.com/demoproject/demo-app/internal/validators"
)

// Clock returns the current time
type Clock func() time.Time

// DemoService builds the payload served by the root endpoint
type DemoService struct {
	versions *LibraryVersionService
	now      Clock
}

// NewDemoService creates a new demo service
// A nil clock falls back to time.Now
func NewDemoService(versions *LibraryVersionService, now Clock) *DemoService {
	if now == nil {
		now = time.Now
	}
	return &DemoService{
		versions: versions,
		now:      now,
	}
}

// BuildResponse creates a fresh response stamped with the current time
func (s *DemoService) BuildResponse() models.DemoResponse {
	return models.DemoResponse{
		Message:       models.DemoMessage,
		Timestamp:     validators.FormatUTCTimestamp(s.now()),
		LodashVersion: s.versions.Version(),
	}
}
