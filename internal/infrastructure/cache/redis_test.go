package cache

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// scriptRecorder answers EVAL/EVALSHA with a fixed counter value and keeps
// what it was called with.
type scriptRecorder struct {
	count  int64
	err    error
	calls  int
	keys   []string
	args   []any
	script string
}

func (s *scriptRecorder) run(keys []string, args []any) *redis.Cmd {
	s.calls++
	s.keys = keys
	s.args = args
	if s.err != nil {
		return redis.NewCmdResult(nil, s.err)
	}
	return redis.NewCmdResult(s.count, nil)
}

func (s *scriptRecorder) Eval(_ context.Context, script string, keys []string, args ...any) *redis.Cmd {
	s.script = script
	return s.run(keys, args)
}

func (s *scriptRecorder) EvalSha(_ context.Context, _ string, keys []string, args ...any) *redis.Cmd {
	return s.run(keys, args)
}

func (s *scriptRecorder) EvalRO(ctx context.Context, script string, keys []string, args ...any) *redis.Cmd {
	return s.Eval(ctx, script, keys, args...)
}

func (s *scriptRecorder) EvalShaRO(ctx context.Context, sha1 string, keys []string, args ...any) *redis.Cmd {
	return s.EvalSha(ctx, sha1, keys, args...)
}

func (s *scriptRecorder) ScriptExists(_ context.Context, hashes ...string) *redis.BoolSliceCmd {
	return redis.NewBoolSliceResult(make([]bool, len(hashes)), nil)
}

func (s *scriptRecorder) ScriptLoad(_ context.Context, _ string) *redis.StringCmd {
	return redis.NewStringResult("", nil)
}

func TestRateLimiter_Allow(t *testing.T) {
	t.Run("single atomic call with window in milliseconds", func(t *testing.T) {
		rec := &scriptRecorder{count: 1}
		l := newRateLimiter(rec, 5, 10*time.Minute)

		ok, err := l.Allow(context.Background(), "203.0.113.7")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ok {
			t.Fatalf("expected first request to pass")
		}
		if rec.calls != 1 {
			t.Fatalf("expected one round trip, got %d", rec.calls)
		}
		if len(rec.keys) != 1 || rec.keys[0] != "ratelimit:203.0.113.7" {
			t.Fatalf("unexpected keys %v", rec.keys)
		}
		if len(rec.args) != 1 || rec.args[0] != int64(600000) {
			t.Fatalf("unexpected args %v", rec.args)
		}
	})

	t.Run("limit is inclusive", func(t *testing.T) {
		for _, tc := range []struct {
			count int64
			want  bool
		}{{5, true}, {6, false}} {
			l := newRateLimiter(&scriptRecorder{count: tc.count}, 5, time.Minute)
			ok, err := l.Allow(context.Background(), "ip")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ok != tc.want {
				t.Fatalf("count %d: expected %v, got %v", tc.count, tc.want, ok)
			}
		}
	})

	t.Run("redis error is wrapped", func(t *testing.T) {
		redisErr := errors.New("connection refused")
		l := newRateLimiter(&scriptRecorder{err: redisErr}, 5, time.Minute)

		ok, err := l.Allow(context.Background(), "ip")
		if !errors.Is(err, redisErr) {
			t.Fatalf("expected redis error, got %v", err)
		}
		if ok {
			t.Fatalf("expected deny on error")
		}
	})

	t.Run("sub millisecond window is clamped", func(t *testing.T) {
		rec := &scriptRecorder{count: 1}
		l := newRateLimiter(rec, 5, 0)

		if _, err := l.Allow(context.Background(), "ip"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.args[0] != int64(1) {
			t.Fatalf("expected 1ms expiry, got %v", rec.args[0])
		}
	})
}

func TestAllowScript_RepairsMissingTTL(t *testing.T) {
	rec := &scriptRecorder{}
	allowScript.Eval(context.Background(), rec, []string{"k"}, int64(1000))
	if !strings.Contains(rec.script, "PTTL") || !strings.Contains(rec.script, "PEXPIRE") {
		t.Fatalf("expected ttl check and expiry in script, got %q", rec.script)
	}
	if strings.Index(rec.script, "INCR") > strings.Index(rec.script, "PEXPIRE") {
		t.Fatalf("expected expiry after increment")
	}
}
