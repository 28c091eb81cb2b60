package scenegen

import (
	"math"
	"testing"
)

func TestVec3Ops(t *testing.T) {
	v := Vec3{1, 2, 3}
	w := Vec3{-1, 0.5, 2}

	add := v.Add(w)
	if add != (Vec3{0, 2.5, 5}) {
		t.Fatalf("Add mismatch: %+v", add)
	}
	mul := v.Mul(3)
	if mul != (Vec3{3, 6, 9}) {
		t.Fatalf("Mul mismatch: %+v", mul)
	}
}

func TestQuaternionLen(t *testing.T) {
	if q := QuatIdent(); q != (Quaternion{0, 0, 0, 1}) {
		t.Fatalf("QuatIdent wrong: %+v", q)
	}
	q := Quaternion{1, 2, 2, 4}
	if math.Abs(q.Len()-5) > 1e-12 {
		t.Fatalf("Len mismatch: %.12g", q.Len())
	}
	if q.IsUnit() {
		t.Fatal("non-unit quaternion reported as unit")
	}
	if !QuatIdent().IsUnit() {
		t.Fatal("identity not unit")
	}
	// the reference grid rotation is unit up to float32 precision
	if !(Quaternion{0.46193978, 0.1913417, 0.1913417, 0.84462326}).IsUnit() {
		t.Fatal("grid rotation not unit")
	}
	if (Quaternion{}).IsUnit() {
		t.Fatal("zero quaternion reported as unit")
	}
}

func TestMglConversion(t *testing.T) {
	q := Quaternion{0.1, 0.2, 0.3, 0.4}
	if back := quatFromMgl(q.mgl()); back != q {
		t.Fatalf("quaternion conversion lost data: %+v", back)
	}
	if q.mgl().W != 0.4 {
		t.Fatalf("W misplaced: %+v", q.mgl())
	}
	v := Vec3{7, -8, 9}
	if back := vecFromMgl(v.mgl()); back != v {
		t.Fatalf("vector conversion lost data: %+v", back)
	}
}
