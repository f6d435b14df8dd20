package engine

import (
	"errors"
	"testing"
)

func TestErrorHelpers(t *testing.T) {
	inf := ErrInference("boom")
	if !IsInference(inf) {
		t.Fatal("IsInference false for inference error")
	}
	if IsInference(errors.New("boom")) {
		t.Fatal("IsInference true for plain error")
	}
	if inf.Error() != "boom" {
		t.Fatalf("message: %q", inf.Error())
	}

	dep := ErrDependencyUnavailable("no runtime")
	if !IsDependencyUnavailable(dep) {
		t.Fatal("IsDependencyUnavailable false for dependency error")
	}
	if IsDependencyUnavailable(inf) || IsInference(dep) {
		t.Fatal("error classes overlap")
	}
}
