package email

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/kalebesantos/kgym/internal/logger"
)

func TestMain(m *testing.M) {
	logger.Init()

	code := m.Run()
	os.Exit(code)
}

func newTestService(rdb *redis.Client) *Service {
	return &Service{
		redis:    rdb,
		from:     "noreply@kgym.app",
		fromName: "KGym",
		smtpHost: "smtp.test.com",
		smtpPort: "587",
		smtpUser: "test@example.com",
		smtpPass: "password",
	}
}

func TestSend(t *testing.T) {
	db, mock := redismock.NewClientMock()
	ctx := context.Background()

	mock.Regexp().ExpectLPush(queueKey, `.*`).SetVal(1)

	svc := newTestService(db)

	err := svc.Send(ctx, "student@example.com", "Maria", "Hello", "Test body")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSendWelcome(t *testing.T) {
	db, mock := redismock.NewClientMock()
	ctx := context.Background()

	mock.Regexp().ExpectLPush(queueKey, `.*`).SetVal(1)

	svc := newTestService(db)

	err := svc.SendWelcome(ctx, "student@example.com", "Maria")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSendPlanAssigned(t *testing.T) {
	db, mock := redismock.NewClientMock()
	ctx := context.Background()

	mock.Regexp().ExpectLPush(queueKey, `.*`).SetVal(1)

	svc := newTestService(db)

	endDate := time.Now().AddDate(0, 1, 0)
	err := svc.SendPlanAssigned(ctx, "student@example.com", "Maria", "Mensal", endDate)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSendQueueError(t *testing.T) {
	db, mock := redismock.NewClientMock()
	ctx := context.Background()

	mock.Regexp().ExpectLPush(queueKey, `.*`).SetErr(redis.ErrClosed)

	svc := newTestService(db)

	err := svc.Send(ctx, "student@example.com", "Maria", "Hello", "Test body")
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQueueLength(t *testing.T) {
	db, mock := redismock.NewClientMock()
	ctx := context.Background()

	mock.ExpectLLen(queueKey).SetVal(3)

	svc := newTestService(db)

	assert.Equal(t, int64(3), svc.QueueLength(ctx))
	assert.NoError(t, mock.ExpectationsWereMet())
}
