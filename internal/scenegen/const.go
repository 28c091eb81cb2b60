package scenegen

type Real = float64

// Reference generation parameters.
const (
	SceneName     = "scene_08"
	SceneOut      = "scene_08.json"
	GridCount     = 100
	GridColumns   = 10
	GridSpacing   = 5.0
	GridMesh      = "cube"
	GridMaterial  = "DiffuseColorMaterial"
	CameraFov     = 60.0
	JSONIndent    = "    "
	unitTolerance = 1e-6 // |len(q) - 1| below this counts as a unit quaternion
)
