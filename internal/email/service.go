package email

import (
	"context"
	"encoding/json"
	"fmt"
	"net/smtp"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kalebesantos/kgym/internal/logger"
	"github.com/kalebesantos/kgym/internal/metrics"
)

const (
	queueKey       = "emails"
	failedQueueKey = "emails:failed"
)

type Job struct {
	To      string    `json:"to"`
	Name    string    `json:"name"`
	Subject string    `json:"subject"`
	Body    string    `json:"body"`
	Type    string    `json:"type"`
	Tries   int       `json:"tries"`
	Created time.Time `json:"created"`
}

type Service struct {
	redis    *redis.Client
	from     string
	fromName string
	smtpHost string
	smtpPort string
	smtpUser string
	smtpPass string
}

func New(fromEmail, fromName, smtpHost, smtpPort, smtpUser, smtpPass, redisAddr string) *Service {
	return &Service{
		redis: redis.NewClient(&redis.Options{
			Addr: redisAddr,
		}),
		from:     fromEmail,
		fromName: fromName,
		smtpHost: smtpHost,
		smtpPort: smtpPort,
		smtpUser: smtpUser,
		smtpPass: smtpPass,
	}
}

func (s *Service) Send(ctx context.Context, to, name, subject, body string) error {
	return s.enqueue(ctx, Job{
		To:      to,
		Name:    name,
		Subject: subject,
		Body:    body,
		Type:    "generic",
		Created: time.Now(),
	})
}

func (s *Service) enqueue(ctx context.Context, job Job) error {
	data, err := json.Marshal(job)
	if err != nil {
		logger.Errorf("Failed to marshal email job: %v", err)
		return err
	}

	if err := s.redis.LPush(ctx, queueKey, data).Err(); err != nil {
		logger.Errorf("Failed to queue email to %s: %v", job.To, err)
		metrics.RecordEmail(job.Type, "queue_failed")
		return err
	}

	logger.Infof("Email queued: %s to %s", job.Subject, job.To)
	metrics.RecordEmail(job.Type, "queued")
	return nil
}

func (s *Service) Start(ctx context.Context) {
	logger.Info("Email worker started")

	for {
		select {
		case <-ctx.Done():
			logger.Info("Email worker stopped")
			return
		default:
			s.processNext(ctx)
		}
	}
}

func (s *Service) processNext(ctx context.Context) {
	result, err := s.redis.BRPop(ctx, 2*time.Second, queueKey).Result()
	if err != nil {
		return
	}

	var job Job
	if err := json.Unmarshal([]byte(result[1]), &job); err != nil {
		logger.Errorf("Bad email data: %v", err)
		return
	}

	job.Tries++
	if err := s.sendNow(job); err != nil {
		logger.Errorf("Failed to send email to %s: %v", job.To, err)

		if job.Tries < 3 {
			time.Sleep(5 * time.Second)
			data, _ := json.Marshal(job)
			s.redis.LPush(context.Background(), queueKey, data)
			return
		}

		metrics.RecordEmail(job.Type, "failed")
		s.saveFailed(job, err)
		return
	}

	metrics.RecordEmail(job.Type, "sent")
	logger.Infof("Email sent to %s", job.To)
}

func (s *Service) sendNow(job Job) error {
	message := fmt.Sprintf("From: %s <%s>\r\n", s.fromName, s.from)
	message += fmt.Sprintf("To: %s\r\n", job.To)
	message += fmt.Sprintf("Subject: %s\r\n", job.Subject)
	message += "\r\n" + job.Body

	var auth smtp.Auth
	if s.smtpUser != "" && s.smtpPass != "" {
		auth = smtp.PlainAuth("", s.smtpUser, s.smtpPass, s.smtpHost)
	}

	addr := s.smtpHost + ":" + s.smtpPort
	return smtp.SendMail(addr, auth, s.from, []string{job.To}, []byte(message))
}

func (s *Service) saveFailed(job Job, sendErr error) {
	failed := map[string]interface{}{
		"job":   job,
		"error": sendErr.Error(),
		"time":  time.Now(),
	}
	data, _ := json.Marshal(failed)
	s.redis.LPush(context.Background(), failedQueueKey, data)
	logger.Errorf("Email moved to failed queue: %s", job.To)
}

func (s *Service) QueueLength(ctx context.Context) int64 {
	length, _ := s.redis.LLen(ctx, queueKey).Result()
	return length
}

func (s *Service) Close() error {
	return s.redis.Close()
}

func (s *Service) SendWelcome(ctx context.Context, to, name string) error {
	body := fmt.Sprintf(`Olá %s,

Your KGym account is ready. Sign in with your registered email to see your
plan, workout sheets and check-in history.

- KGym Team`, name)

	return s.enqueue(ctx, Job{
		To:      to,
		Name:    name,
		Subject: "Welcome to KGym",
		Body:    body,
		Type:    "welcome",
		Created: time.Now(),
	})
}

func (s *Service) SendPlanAssigned(ctx context.Context, to, name, planName string, endDate time.Time) error {
	body := fmt.Sprintf(`Olá %s,

Your membership plan has been activated:

Plan: %s
Valid until: %s

See you at the gym!

- KGym Team`, name, planName, endDate.Format("Jan 2, 2006"))

	return s.enqueue(ctx, Job{
		To:      to,
		Name:    name,
		Subject: "Plan Activated - " + planName,
		Body:    body,
		Type:    "plan_assigned",
		Created: time.Now(),
	})
}
