package state

import (
	"context"
	"testing"
)

func TestEnvFromContext(t *testing.T) {
	ctx := ContextWithEnv(context.Background())

	env := EnvFromContext(ctx)
	if env == nil {
		t.Fatal("EnvFromContext() returned nil env")
	}
	if env.Log == nil {
		t.Error("new env should carry a nop logger")
	}
	if env.Uptime() < 0 {
		t.Error("Uptime() went backwards")
	}
}

func TestEnvFromContext_Missing(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("EnvFromContext() without env should panic")
		}
	}()
	EnvFromContext(context.Background())
}
