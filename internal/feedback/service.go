package feedback

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ers220/component-compass/pkg/config"
	pkgerrors "github.com/ers220/component-compass/pkg/errors"
)

const (
	stampLayout = "20060102_150405"
	dateLayout  = "2006-01-02 15:04:05"
)

// Entry is one piece of feedback left on the exit page.
type Entry struct {
	StudentName  string
	StudentEmail string
	Rating       int
	Feedback     string
}

// SaveResult reports the file written for a feedback submission.
type SaveResult struct {
	Filename string `json:"filename"`
}

// Service archives feedback submissions as dated text files.
type Service interface {
	Save(ctx context.Context, entry Entry) (*SaveResult, error)
}

type service struct {
	dir string
	now func() time.Time
}

// ServiceParams bundles the dependencies required to build a feedback service.
type ServiceParams struct {
	Config config.FeedbackConfig
	Now    func() time.Time
}

// NewService constructs a feedback recorder with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Config.Dir == "" {
		return nil, fmt.Errorf("feedback directory is required")
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &service{dir: params.Config.Dir, now: now}, nil
}

func (s *service) Save(_ context.Context, entry Entry) (*SaveResult, error) {
	if entry.Rating < 0 || entry.Rating > 5 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "rating must be between 0 and 5")
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create feedback directory")
	}

	now := s.now()
	filename := "feedback_" + now.Format(stampLayout) + ".txt"

	name := entry.StudentName
	if name == "" {
		name = "Unknown"
	}
	email := entry.StudentEmail
	if email == "" {
		email = "Unknown"
	}

	content := fmt.Sprintf(
		"COMPONENT COMPASS - Customer Feedback\n"+
			"================================\n\n"+
			"Date: %s\n"+
			"User: %s (%s)\n"+
			"Rating: %d/5 stars\n"+
			"Feedback:\n%s\n\n"+
			"---End of Feedback---\n",
		now.Format(dateLayout), name, email, entry.Rating, entry.Feedback,
	)

	if err := os.WriteFile(filepath.Join(s.dir, filename), []byte(content), 0o644); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "write feedback file")
	}

	return &SaveResult{Filename: filename}, nil
}
