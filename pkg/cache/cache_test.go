package cache

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	// Get always returns miss
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	// Set does nothing (no error)
	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}

	// Still a miss after Set
	_, hit, _ = c.Get(ctx, "key")
	if hit {
		t.Error("NullCache should not store data")
	}

	// Delete does nothing (no error)
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()

	// Miss before Set
	_, hit, err := c.Get(ctx, "result:abc")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("Get before Set should miss")
	}

	// Roundtrip
	if err := c.Set(ctx, "result:abc", []byte(`{"found":true}`), time.Hour); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	data, hit, err := c.Get(ctx, "result:abc")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if !hit {
		t.Fatal("Get after Set should hit")
	}
	if string(data) != `{"found":true}` {
		t.Errorf("Get data = %s", data)
	}

	// Delete
	if err := c.Delete(ctx, "result:abc"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	_, hit, _ = c.Get(ctx, "result:abc")
	if hit {
		t.Error("Get after Delete should miss")
	}

	// Deleting a missing key is not an error
	if err := c.Delete(ctx, "never-set"); err != nil {
		t.Errorf("Delete of missing key: %v", err)
	}
}

func TestFileCacheExpiration(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()

	if err := c.Set(ctx, "ephemeral", []byte("x"), time.Nanosecond); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	time.Sleep(10 * time.Millisecond)
	_, hit, err := c.Get(ctx, "ephemeral")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("expired entry should be a miss")
	}

	// Zero TTL means no expiration
	if err := c.Set(ctx, "durable", []byte("y"), 0); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	_, hit, _ = c.Get(ctx, "durable")
	if !hit {
		t.Error("zero-TTL entry should not expire")
	}
}

func TestHash(t *testing.T) {
	// Test determinism
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}

	// Test different inputs produce different hashes
	h3 := Hash([]byte("world"))
	if h1 == h3 {
		t.Error("Different inputs should produce different hashes")
	}

	// Test hash length (SHA-256 produces 64 hex chars)
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	// GraphKey is deterministic per source
	if k.GraphKey("data/a.edgelist") != k.GraphKey("data/a.edgelist") {
		t.Error("GraphKey should be deterministic")
	}
	if k.GraphKey("data/a.edgelist") == k.GraphKey("data/b.edgelist") {
		t.Error("Different sources should produce different keys")
	}

	// ResultKey must react to every solve parameter
	base := ResultKeyOpts{Algorithm: "tabu-search", Target: 5, MaxIterations: 1000, Tenure: 10, Seed: 42}
	variants := []ResultKeyOpts{
		{Algorithm: "exact", Target: 5, MaxIterations: 1000, Tenure: 10, Seed: 42},
		{Algorithm: "tabu-search", Target: 6, MaxIterations: 1000, Tenure: 10, Seed: 42},
		{Algorithm: "tabu-search", Target: 5, MaxIterations: 500, Tenure: 10, Seed: 42},
		{Algorithm: "tabu-search", Target: 5, MaxIterations: 1000, Tenure: 7, Seed: 42},
		{Algorithm: "tabu-search", Target: 5, MaxIterations: 1000, Tenure: 10, Seed: 43},
	}
	baseKey := k.ResultKey("hash123", base)
	for i, v := range variants {
		if k.ResultKey("hash123", v) == baseKey {
			t.Errorf("variant %d should produce a different key", i)
		}
	}

	// Different graphs never share result keys
	if k.ResultKey("hash123", base) == k.ResultKey("hash456", base) {
		t.Error("Different graph hashes should produce different keys")
	}
}

func TestScopedKeyer(t *testing.T) {
	inner := NewDefaultKeyer()
	scoped := NewScopedKeyer(inner, "suite:dense:")

	// All keys should be prefixed
	graphKey := scoped.GraphKey("data/a.edgelist")
	if graphKey != "suite:dense:"+inner.GraphKey("data/a.edgelist") {
		t.Errorf("ScopedKeyer GraphKey unexpected: %s", graphKey)
	}

	resultKey := scoped.ResultKey("hash123", ResultKeyOpts{Algorithm: "exact", Target: 5})
	if len(resultKey) < 12 || resultKey[:12] != "suite:dense:" {
		t.Errorf("ScopedKeyer ResultKey should be prefixed: %s", resultKey)
	}
}

func TestScopedKeyerNilInner(t *testing.T) {
	// Should use DefaultKeyer when inner is nil
	scoped := NewScopedKeyer(nil, "prefix:")
	key := scoped.GraphKey("source")
	if key != "prefix:"+NewDefaultKeyer().GraphKey("source") {
		t.Errorf("Unexpected key with nil inner: %s", key)
	}
}

func TestRetryableError(t *testing.T) {
	// Retryable(nil) returns nil
	if Retryable(nil) != nil {
		t.Error("Retryable(nil) should return nil")
	}

	// Non-nil error is wrapped
	err := Retryable(ErrNetwork)
	if err == nil {
		t.Fatal("Retryable should return wrapped error")
	}
	if !IsRetryable(err) {
		t.Error("IsRetryable should return true for wrapped error")
	}

	// Error message is preserved
	if err.Error() != ErrNetwork.Error() {
		t.Errorf("Error message should be preserved: %s", err.Error())
	}

	// Non-wrapped errors are not retryable
	if IsRetryable(errors.New("permanent failure")) {
		t.Error("IsRetryable should return false for unwrapped error")
	}
}

func TestNetworkErrorsStayIdentifiable(t *testing.T) {
	// The Redis backend wraps transport errors this way; both the retry
	// marker and the network classification must survive the wrapping.
	err := Retryable(fmt.Errorf("%w: connection refused", ErrNetwork))
	if !IsRetryable(err) {
		t.Error("wrapped network error should be retryable")
	}
	if !errors.Is(err, ErrNetwork) {
		t.Error("wrapped network error should match ErrNetwork")
	}
}

func TestRetryWithBackoff(t *testing.T) {
	ctx := context.Background()

	// Success on first try
	calls := 0
	err := RetryWithBackoff(ctx, func() error {
		calls++
		return nil
	})
	if err != nil {
		t.Errorf("Should succeed: %v", err)
	}
	if calls != 1 {
		t.Errorf("Should call once: %d", calls)
	}

	// Non-retryable error stops immediately
	errPermanent := errors.New("permanent failure")
	calls = 0
	err = RetryWithBackoff(ctx, func() error {
		calls++
		return errPermanent
	})
	if err != errPermanent {
		t.Errorf("Should return non-retryable error: %v", err)
	}
	if calls != 1 {
		t.Errorf("Should not retry non-retryable error: %d", calls)
	}

	// Retryable error triggers retries
	calls = 0
	err = RetryWithBackoff(ctx, func() error {
		calls++
		if calls < 2 {
			return Retryable(ErrNetwork)
		}
		return nil
	})
	if err != nil {
		t.Errorf("Should succeed after retry: %v", err)
	}
	if calls != 2 {
		t.Errorf("Should retry once: %d", calls)
	}
}

func TestRetryWithBackoffContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately

	err := RetryWithBackoff(ctx, func() error {
		return Retryable(ErrNetwork)
	})
	if err != context.Canceled {
		t.Errorf("Should return context error: %v", err)
	}
}
