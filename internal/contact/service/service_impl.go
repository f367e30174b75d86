package service

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/jvrel/portfolio/internal/clock"
	"github.com/jvrel/portfolio/internal/contact/domain"
	"github.com/jvrel/portfolio/internal/metrics"
	"github.com/jvrel/portfolio/internal/providers/email"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB     *gorm.DB
	Log    *zap.Logger
	GenID  *snowflake.Node
	Clock  clock.Clock
	Repo   domain.Repository
	Mailer email.Provider
}

type Service struct {
	db     *gorm.DB
	log    *zap.Logger
	genID  *snowflake.Node
	clock  clock.Clock
	repo   domain.Repository
	mailer email.Provider
}

func New(p Params) domain.Service {
	return &Service{
		db:     p.DB,
		log:    p.Log.Named("contact.service"),
		genID:  p.GenID,
		clock:  p.Clock,
		repo:   p.Repo,
		mailer: p.Mailer,
	}
}

// Submit runs the intake pipeline. The rate-limit read and the insert are
// two separate store operations: two near-simultaneous submissions from the
// same email can both pass the read before either write lands. Accepted
// limitation; closing it would need a conditional write keyed on
// (email, time bucket), which not every configured store offers.
func (s *Service) Submit(ctx context.Context, req domain.SubmitRequest) (domain.SubmitResponse, error) {
	metrics.SubmissionsReceived.Inc()

	input, err := domain.ValidateSubmission(req.Name, req.Email, req.Message)
	if err != nil {
		metrics.SubmissionsRejected.WithLabelValues(err.Error()).Inc()
		return domain.SubmitResponse{}, err
	}

	last, err := s.repo.LatestByEmail(ctx, s.db, input.Email)
	if err != nil {
		s.log.Error("rate limit lookup failed", zap.Error(err))
		metrics.SubmissionsRejected.WithLabelValues(domain.ErrStorageUnavailable.Error()).Inc()
		return domain.SubmitResponse{}, domain.ErrStorageUnavailable
	}

	now := s.clock.Now().UTC()
	if last != nil && now.Sub(last.CreatedAt) < domain.RateLimitWindow {
		metrics.SubmissionsRejected.WithLabelValues(domain.ErrRateLimited.Error()).Inc()
		return domain.SubmitResponse{}, domain.ErrRateLimited
	}

	submission := domain.ContactSubmission{
		ID:        s.genID.Generate(),
		Name:      input.Name,
		Email:     input.Email,
		Message:   input.Message,
		CreatedAt: now,
		Read:      false,
		SourceIP:  orUnknown(req.SourceIP),
		UserAgent: orUnknown(req.UserAgent),
	}

	if err := s.repo.Insert(ctx, s.db, &submission); err != nil {
		s.log.Error("persist submission failed", zap.Error(err))
		metrics.SubmissionsRejected.WithLabelValues(domain.ErrStorageUnavailable.Error()).Inc()
		return domain.SubmitResponse{}, domain.ErrStorageUnavailable
	}
	metrics.SubmissionsPersisted.Inc()

	resp := domain.SubmitResponse{
		Submission:   submission,
		Notification: s.notify(ctx, submission),
	}
	return resp, nil
}

// notify attempts the best-effort notification. The send context is detached
// from request cancellation: the write has already been observed, so a
// client disconnect must not abort the notification mid-flight. The
// provider bounds its own latency.
func (s *Service) notify(ctx context.Context, submission domain.ContactSubmission) domain.NotificationResult {
	if !s.mailer.Enabled() {
		metrics.Notifications.WithLabelValues(string(domain.NotificationSkipped)).Inc()
		return domain.NotificationResult{Status: domain.NotificationSkipped}
	}

	subject := fmt.Sprintf("Portfolio contact — %s <%s>", submission.Name, submission.Email)
	body := notificationBody(submission)

	if err := s.mailer.Send(context.WithoutCancel(ctx), subject, body); err != nil {
		s.log.Warn("notification send failed",
			zap.String("submission_id", submission.ID.String()),
			zap.Error(err),
		)
		metrics.Notifications.WithLabelValues(string(domain.NotificationFailed)).Inc()
		return domain.NotificationResult{
			Status: domain.NotificationFailed,
			Reason: err.Error(),
		}
	}

	metrics.Notifications.WithLabelValues(string(domain.NotificationSent)).Inc()
	return domain.NotificationResult{Status: domain.NotificationSent}
}

func notificationBody(submission domain.ContactSubmission) string {
	return fmt.Sprintf(`New contact form message

Name: %s
Email: %s
Message:
%s

--- meta
id: %s
ip: %s
userAgent: %s
time: %s
`,
		submission.Name,
		submission.Email,
		submission.Message,
		submission.ID.String(),
		submission.SourceIP,
		submission.UserAgent,
		submission.CreatedAt.Format(time.RFC3339),
	)
}

func (s *Service) List(ctx context.Context, req domain.ListRequest) ([]domain.ContactSubmission, error) {
	limit := req.Limit
	if limit <= 0 || limit > domain.AdminListLimit {
		limit = domain.AdminListLimit
	}

	items, err := s.repo.List(ctx, s.db, limit)
	if err != nil {
		s.log.Error("list submissions failed", zap.Error(err))
		return nil, domain.ErrStorageUnavailable
	}

	submissions := make([]domain.ContactSubmission, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		submissions = append(submissions, *item)
	}
	return submissions, nil
}

func orUnknown(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
