package mailer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type stubMailer struct {
	name  string
	err   error
	calls int
}

func (s *stubMailer) Name() string { return s.name }

func (s *stubMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	s.calls++
	return s.err
}

func TestChainFirstSuccessWins(t *testing.T) {
	t.Parallel()

	first := &stubMailer{name: "first"}
	second := &stubMailer{name: "second"}
	chain := NewChain(first, second)

	require.NoError(t, chain.Send(context.Background(), "a@x.com", "hi", "<p>hi</p>"))
	require.Equal(t, 1, first.calls)
	require.Equal(t, 0, second.calls)
}

func TestChainFallsThroughFailures(t *testing.T) {
	t.Parallel()

	first := &stubMailer{name: "first", err: errors.New("down")}
	second := &stubMailer{name: "second", err: errors.New("also down")}
	third := &stubMailer{name: "third"}
	chain := NewChain(first, second, third)

	require.NoError(t, chain.Send(context.Background(), "a@x.com", "hi", "<p>hi</p>"))
	require.Equal(t, 1, first.calls)
	require.Equal(t, 1, second.calls)
	require.Equal(t, 1, third.calls)
}

func TestChainAllFail(t *testing.T) {
	t.Parallel()

	first := &stubMailer{name: "first", err: errors.New("down")}
	second := &stubMailer{name: "second", err: errors.New("also down")}
	chain := NewChain(first, second)

	err := chain.Send(context.Background(), "a@x.com", "hi", "<p>hi</p>")
	require.Error(t, err)
	require.Contains(t, err.Error(), "first")
	require.Contains(t, err.Error(), "second")
}

func TestChainEmpty(t *testing.T) {
	t.Parallel()

	require.Error(t, NewChain().Send(context.Background(), "a@x.com", "hi", ""))
}

func TestLogSinkAlwaysSucceeds(t *testing.T) {
	t.Parallel()

	require.NoError(t, NewLogSink().Send(context.Background(), "a@x.com", "hi", "<p>hi</p>"))
}
