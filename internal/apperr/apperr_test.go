package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOfWrapped(t *testing.T) {
	err := fmt.Errorf("create order: %w", Validation("cart is empty"))
	if KindOf(err) != KindValidation {
		t.Fatalf("expected validation kind, got %s", KindOf(err))
	}
	if !Is(err, KindValidation) {
		t.Fatalf("expected Is to match")
	}
}

func TestKindOfUnclassifiedIsInternal(t *testing.T) {
	if KindOf(errors.New("disk full")) != KindInternal {
		t.Fatalf("expected internal kind")
	}
	if Is(nil, KindInternal) {
		t.Fatalf("nil error must not match any kind")
	}
}

func TestInternalUnwrapsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := Internal("order creation failed", cause)
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to be reachable")
	}
}
