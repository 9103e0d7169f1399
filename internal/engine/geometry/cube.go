package geometry

// cubeCorners lists the 36 corners (12 triangles) of a cube spanning [-1, 1].
var cubeCorners = [...][3]float32{
	// -Z
	{-1, 1, -1}, {-1, -1, -1}, {1, -1, -1},
	{1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
	// -X
	{-1, -1, 1}, {-1, -1, -1}, {-1, 1, -1},
	{-1, 1, -1}, {-1, 1, 1}, {-1, -1, 1},
	// +X
	{1, -1, -1}, {1, -1, 1}, {1, 1, 1},
	{1, 1, 1}, {1, 1, -1}, {1, -1, -1},
	// +Z
	{-1, -1, 1}, {-1, 1, 1}, {1, 1, 1},
	{1, 1, 1}, {1, -1, 1}, {-1, -1, 1},
	// +Y
	{-1, 1, -1}, {1, 1, -1}, {1, 1, 1},
	{1, 1, 1}, {-1, 1, 1}, {-1, 1, -1},
	// -Y
	{-1, -1, -1}, {-1, -1, 1}, {1, -1, -1},
	{1, -1, -1}, {-1, -1, 1}, {1, -1, 1},
}

// CubeVertexCount is the number of corners returned by CubePositions.
const CubeVertexCount = len(cubeCorners)

// CubePositions returns a flat xyz array for a cube centred on the origin
// with the given half extent.
func CubePositions(halfExtent float32) []float32 {
	out := make([]float32, 0, CubeVertexCount*3)
	for _, c := range cubeCorners {
		out = append(out, c[0]*halfExtent, c[1]*halfExtent, c[2]*halfExtent)
	}
	return out
}

// SkyboxVertices is the cube drawn around the camera for the cubemap.
func SkyboxVertices() []float32 {
	return CubePositions(1)
}

// BoxVertices is the unit box primitive (side length 1).
func BoxVertices() []float32 {
	return CubePositions(0.5)
}
