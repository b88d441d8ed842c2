package pipe

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/ib-77/okflow/pkg/ok"
)

func TestThen_SuccessInvokesOnce(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	calls := 0
	res := Then(ctx, ok.Success(21), func(ctx context.Context, v int) ok.Result[int] {
		calls++
		return ok.Success(v * 2)
	})

	if calls != 1 {
		t.Fatalf("expected exactly one invocation, got %d", calls)
	}
	if !res.IsSuccess() || res.Result() != 42 {
		t.Fatalf("expected success with 42, got: success=%v, val=%v", res.IsSuccess(), res.Result())
	}
}

func TestThen_FailurePassesThrough(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	err := errors.New("boom")

	called := false
	res := Then(ctx, ok.Fail[int](err), func(ctx context.Context, v int) ok.Result[string] {
		called = true
		return ok.Success("unreachable")
	})

	if called {
		t.Fatalf("callback must not run on failure")
	}
	if res.IsSuccess() || !errors.Is(res.Err(), err) {
		t.Fatalf("expected 'boom' failure to pass through, got: success=%v, err=%v", res.IsSuccess(), res.Err())
	}
}

func TestThenOK(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	res := ThenOK(ctx, ok.OK(), func(ctx context.Context) ok.Result[string] {
		return ok.Success("ready")
	})
	if !res.IsSuccess() || res.Result() != "ready" {
		t.Fatalf("expected success with 'ready', got: success=%v, val=%v", res.IsSuccess(), res.Result())
	}

	err := errors.New("not ok")
	called := false
	res = ThenOK(ctx, ok.Fail[ok.Unit](err), func(ctx context.Context) ok.Result[string] {
		called = true
		return ok.Success("unreachable")
	})
	if called || res.IsSuccess() || !errors.Is(res.Err(), err) {
		t.Fatalf("expected untouched failure, got: called=%v, success=%v, err=%v", called, res.IsSuccess(), res.Err())
	}
}

func TestThenMatch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	got := ThenMatch(ctx, "pending", "pending", func(ctx context.Context, v string) string {
		return "active"
	})
	if got != "active" {
		t.Fatalf("expected 'active' on match, got %q", got)
	}

	called := false
	got = ThenMatch(ctx, "done", "pending", func(ctx context.Context, v string) string {
		called = true
		return "active"
	})
	if called || got != "done" {
		t.Fatalf("expected 'done' untouched, got %q (called=%v)", got, called)
	}
}

func TestThenIf(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	got := ThenIf(ctx, 10, true, func(ctx context.Context, v int) int { return v + 1 })
	if got != 11 {
		t.Fatalf("expected 11, got %d", got)
	}

	got = ThenIf(ctx, 10, false, func(ctx context.Context, v int) int { return v + 1 })
	if got != 10 {
		t.Fatalf("expected 10 untouched, got %d", got)
	}
}

func TestThenTry(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	res := ThenTry(ctx, ok.Success("8"), func(ctx context.Context, s string) (int, error) {
		return strconv.Atoi(s)
	})
	if !res.IsSuccess() || res.Result() != 8 {
		t.Fatalf("expected success with 8, got: success=%v, val=%v", res.IsSuccess(), res.Result())
	}

	res = ThenTry(ctx, ok.Success("bad"), func(ctx context.Context, s string) (int, error) {
		return strconv.Atoi(s)
	})
	if res.IsSuccess() || res.Err() == nil {
		t.Fatalf("expected parse failure, got: success=%v, err=%v", res.IsSuccess(), res.Err())
	}
}

func TestMap(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	res := Map(ctx, ok.Success(5), func(ctx context.Context, v int) string {
		return strconv.Itoa(v * 3)
	})
	if !res.IsSuccess() || res.Result() != "15" {
		t.Fatalf("expected success with '15', got: success=%v, val=%v", res.IsSuccess(), res.Result())
	}

	err := errors.New("upstream")
	res = Map(ctx, ok.Fail[int](err), func(ctx context.Context, v int) string { return "x" })
	if res.IsSuccess() || !errors.Is(res.Err(), err) {
		t.Fatalf("expected 'upstream' failure, got: success=%v, err=%v", res.IsSuccess(), res.Err())
	}
}

func TestTap_ReturnsInputUnchanged(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	calls := 0
	in := ok.Success(3)
	out := Tap(ctx, in, func(ctx context.Context, v int) {
		calls++
	})
	if calls != 1 {
		t.Fatalf("expected side effect once, got %d", calls)
	}
	if out != in {
		t.Fatalf("expected input returned unchanged")
	}

	err := errors.New("boom")
	failIn := ok.Fail[int](err)
	out = Tap(ctx, failIn, func(ctx context.Context, v int) {
		calls++
	})
	if calls != 1 {
		t.Fatalf("side effect must not run on failure")
	}
	if out != failIn {
		t.Fatalf("expected failure returned unchanged")
	}
}

func TestTapOK(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	ran := false
	in := ok.OK()
	out := TapOK(ctx, in, func(ctx context.Context) { ran = true })

	if !ran {
		t.Fatalf("expected side effect to run on OK")
	}
	if out != in {
		t.Fatalf("expected input returned unchanged")
	}
}

func TestTapMatch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	ran := false
	got := TapMatch(ctx, 404, 404, func(ctx context.Context, v int) { ran = true })
	if !ran || got != 404 {
		t.Fatalf("expected side effect on match and value unchanged, got %d (ran=%v)", got, ran)
	}

	ran = false
	got = TapMatch(ctx, 200, 404, func(ctx context.Context, v int) { ran = true })
	if ran || got != 200 {
		t.Fatalf("expected no side effect and value unchanged, got %d (ran=%v)", got, ran)
	}
}

func TestFinally(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	got := Finally(ctx, ok.Success(2),
		func(ctx context.Context, v int) string { return "val:" + strconv.Itoa(v) },
		func(ctx context.Context, err error) string { return "err" })
	if got != "val:2" {
		t.Fatalf("expected 'val:2', got %q", got)
	}

	got = Finally(ctx, ok.Fail[int](errors.New("boom")),
		func(ctx context.Context, v int) string { return "val" },
		func(ctx context.Context, err error) string { return "err:" + err.Error() })
	if got != "err:boom" {
		t.Fatalf("expected 'err:boom', got %q", got)
	}
}
