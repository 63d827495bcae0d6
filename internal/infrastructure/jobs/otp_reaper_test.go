package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type otpDeleterStub struct {
	deleted   int64
	err       error
	calls     int
	lastLimit int
}

func (s *otpDeleterStub) DeleteExpired(_ context.Context, limit int) (int64, error) {
	s.calls++
	s.lastLimit = limit
	if s.err != nil {
		return 0, s.err
	}
	return s.deleted, nil
}

func TestReap_DeletesBatch(t *testing.T) {
	repo := &otpDeleterStub{deleted: 3}
	job := &OtpReaperJob{repo: repo, interval: time.Millisecond, batch: 500, stop: make(chan struct{})}

	job.reap(context.Background())
	require.Equal(t, 1, repo.calls)
	require.Equal(t, 500, repo.lastLimit)
}

func TestReap_RepoErrorDoesNotPanic(t *testing.T) {
	repo := &otpDeleterStub{err: errors.New("db down")}
	job := &OtpReaperJob{repo: repo, interval: time.Millisecond, batch: 500, stop: make(chan struct{})}

	job.reap(context.Background())
	require.Equal(t, 1, repo.calls)
}

func TestStartStop_StopsByContext(t *testing.T) {
	job := &OtpReaperJob{repo: &otpDeleterStub{}, interval: time.Millisecond, batch: 10, stop: make(chan struct{})}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		job.Start(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("job did not stop on context cancel")
	}
}

func TestStartStop_StopsByStopChannel(t *testing.T) {
	job := &OtpReaperJob{repo: &otpDeleterStub{}, interval: time.Millisecond, batch: 10, stop: make(chan struct{})}

	done := make(chan struct{})
	go func() {
		job.Start(context.Background())
		close(done)
	}()
	job.Stop()

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("job did not stop on Stop()")
	}
}
