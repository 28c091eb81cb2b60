package scenegen

// Build assembles a scene from cfg. Object i sits at column i%Columns and
// row i/Columns of the grid. Rotations are copied as given, never normalized.
func Build(cfg GenConfig) Scene {
	g := cfg.Grid
	n := imax(g.Count, 0)
	cols := imax(g.Columns, 1)

	if !cfg.Camera.Rotation.IsUnit() {
		DebugLog("camera rotation is not a unit quaternion (len=%f), keeping as-is", cfg.Camera.Rotation.Len())
	}
	if n > 0 && !g.Rotation.IsUnit() {
		DebugLog("grid rotation is not a unit quaternion (len=%f), keeping as-is", g.Rotation.Len())
	}

	lights := make([]Light, len(cfg.Lights))
	copy(lights, cfg.Lights)

	objects := make([]SceneObject, 0, n)
	for i := 0; i < n; i++ {
		cell := Vec3{Real(i % cols), Real(i / cols), 0}
		objects = append(objects, SceneObject{
			Mesh:     g.Mesh,
			Material: g.Material,
			Position: g.Origin.Add(cell.Mul(g.Spacing)),
			Rotation: g.Rotation,
			Scale:    g.Scale,
		})
	}
	DebugLog("Built scene %s: %d lights, %d objects", cfg.Name, len(lights), len(objects))

	return Scene{
		Name:    cfg.Name,
		Camera:  cfg.Camera,
		Lights:  lights,
		Objects: objects,
	}
}
