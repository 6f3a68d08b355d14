package product

import (
	"testing"

	"github.com/llir/llvm/ir/types"

	"github.com/sentra-lang/canalgo/internal/absenv"
)

func testEnv() *absenv.Environment {
	return absenv.New(absenv.DefaultConfig(), 64, 0)
}

func TestConstructIntType(t *testing.T) {
	env := testEnv()
	vec, err := Construct(env, &types.IntType{BitSize: 32})
	if err != nil {
		t.Fatalf("Construct(i32) failed: %v", err)
	}
	if vec.Len() != 3 {
		t.Fatalf("int product vector should have 3 components, got %d", vec.Len())
	}
	if !vec.IsBottom() {
		t.Error("freshly constructed int vector should be bottom")
	}
}

func TestConstructFloatType(t *testing.T) {
	env := testEnv()
	vec, err := Construct(env, &types.FloatType{Kind: types.FloatKindDouble})
	if err != nil {
		t.Fatalf("Construct(double) failed: %v", err)
	}
	if vec.Len() != 1 {
		t.Fatalf("float product vector should have 1 component, got %d", vec.Len())
	}
	if !vec.IsBottom() {
		t.Error("freshly constructed float vector should be bottom")
	}
}

func TestConstructPointerType(t *testing.T) {
	env := testEnv()
	vec, err := Construct(env, &types.PointerType{})
	if err != nil {
		t.Fatalf("Construct(pointer) failed: %v", err)
	}
	if vec.Len() != 3 {
		t.Fatalf("pointer product vector should have 3 components, got %d", vec.Len())
	}
}

func TestConstructUnsupportedType(t *testing.T) {
	env := testEnv()
	if _, err := Construct(env, &types.VoidType{}); err == nil {
		t.Error("Construct(void) should fail")
	}
}
