package scenegen

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrNonFinite is returned when a scene holds NaN or ±Inf, which JSON cannot represent.
var ErrNonFinite = errors.New("non-finite value")

// ErrInvalidUTF8 is returned for strings the encoder would rewrite with U+FFFD.
var ErrInvalidUTF8 = errors.New("invalid UTF-8")

// Camera is the single viewpoint of a scene. Fov is in degrees.
type Camera struct {
	Position Vec3       `json:"position"`
	Rotation Quaternion `json:"rotation"`
	Fov      Real       `json:"fov"`
}

type Light struct {
	Color     Vec3       `json:"color"`
	Intensity Real       `json:"intensity"`
	Position  Vec3       `json:"position"`
	Rotation  Quaternion `json:"rotation"`
	Scale     Vec3       `json:"scale"`
}

// SceneObject is a mesh instance. Mesh and Material name external assets.
type SceneObject struct {
	Mesh     string     `json:"mesh"`
	Material string     `json:"material"`
	Position Vec3       `json:"position"`
	Rotation Quaternion `json:"rotation"`
	Scale    Vec3       `json:"scale"`
}

// Scene is the serialization root. It owns all nested records.
type Scene struct {
	Name    string        `json:"name"`
	Camera  Camera        `json:"camera"`
	Lights  []Light       `json:"lights"`
	Objects []SceneObject `json:"objects"`
}

// Validate returns an error wrapping ErrNonFinite or ErrInvalidUTF8 naming
// the first field JSON cannot carry unchanged.
func (s Scene) Validate() error {
	if err := checkString("name", s.Name); err != nil {
		return err
	}
	c := s.Camera
	if err := checkVec("camera.position", c.Position); err != nil {
		return err
	}
	if err := checkQuat("camera.rotation", c.Rotation); err != nil {
		return err
	}
	if !isFinite(c.Fov) {
		return nonFinite("camera.fov", c.Fov)
	}
	for i, L := range s.Lights {
		p := fmt.Sprintf("lights[%d]", i)
		if err := checkVec(p+".color", L.Color); err != nil {
			return err
		}
		if !isFinite(L.Intensity) {
			return nonFinite(p+".intensity", L.Intensity)
		}
		if err := checkTransform(p, L.Position, L.Rotation, L.Scale); err != nil {
			return err
		}
	}
	for i, o := range s.Objects {
		p := fmt.Sprintf("objects[%d]", i)
		if err := checkString(p+".mesh", o.Mesh); err != nil {
			return err
		}
		if err := checkString(p+".material", o.Material); err != nil {
			return err
		}
		if err := checkTransform(p, o.Position, o.Rotation, o.Scale); err != nil {
			return err
		}
	}
	return nil
}

func checkTransform(prefix string, pos Vec3, rot Quaternion, scale Vec3) error {
	if err := checkVec(prefix+".position", pos); err != nil {
		return err
	}
	if err := checkQuat(prefix+".rotation", rot); err != nil {
		return err
	}
	return checkVec(prefix+".scale", scale)
}

func checkVec(field string, v Vec3) error {
	if v.finite() {
		return nil
	}
	for _, c := range []struct {
		k string
		x Real
	}{{"x", v.X}, {"y", v.Y}, {"z", v.Z}} {
		if !isFinite(c.x) {
			return nonFinite(field+"."+c.k, c.x)
		}
	}
	return nil
}

func checkQuat(field string, q Quaternion) error {
	if q.finite() {
		return nil
	}
	for _, c := range []struct {
		k string
		x Real
	}{{"x", q.X}, {"y", q.Y}, {"z", q.Z}, {"w", q.W}} {
		if !isFinite(c.x) {
			return nonFinite(field+"."+c.k, c.x)
		}
	}
	return nil
}

func checkString(field, v string) error {
	if utf8.ValidString(v) {
		return nil
	}
	return fmt.Errorf("%s = %q: %w", field, v, ErrInvalidUTF8)
}

func nonFinite(field string, x Real) error {
	return fmt.Errorf("%s = %v: %w", field, x, ErrNonFinite)
}
