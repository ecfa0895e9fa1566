package main

// cubeVertices is the shared unit-cube template uploaded once and drawn
// for every block. Layout per vertex: position (3), normal (3), uv (2).
var cubeVertices = []float32{
	// Front face (+Z)
	-0.5, -0.5, 0.5, 0, 0, 1, 0, 1,
	0.5, -0.5, 0.5, 0, 0, 1, 1, 1,
	0.5, 0.5, 0.5, 0, 0, 1, 1, 0,
	-0.5, -0.5, 0.5, 0, 0, 1, 0, 1,
	0.5, 0.5, 0.5, 0, 0, 1, 1, 0,
	-0.5, 0.5, 0.5, 0, 0, 1, 0, 0,

	// Back face (-Z)
	-0.5, -0.5, -0.5, 0, 0, -1, 1, 1,
	-0.5, 0.5, -0.5, 0, 0, -1, 1, 0,
	0.5, 0.5, -0.5, 0, 0, -1, 0, 0,
	-0.5, -0.5, -0.5, 0, 0, -1, 1, 1,
	0.5, 0.5, -0.5, 0, 0, -1, 0, 0,
	0.5, -0.5, -0.5, 0, 0, -1, 0, 1,

	// Left face (-X)
	-0.5, -0.5, -0.5, -1, 0, 0, 0, 1,
	-0.5, -0.5, 0.5, -1, 0, 0, 1, 1,
	-0.5, 0.5, 0.5, -1, 0, 0, 1, 0,
	-0.5, -0.5, -0.5, -1, 0, 0, 0, 1,
	-0.5, 0.5, 0.5, -1, 0, 0, 1, 0,
	-0.5, 0.5, -0.5, -1, 0, 0, 0, 0,

	// Right face (+X)
	0.5, -0.5, -0.5, 1, 0, 0, 1, 1,
	0.5, 0.5, -0.5, 1, 0, 0, 1, 0,
	0.5, 0.5, 0.5, 1, 0, 0, 0, 0,
	0.5, -0.5, -0.5, 1, 0, 0, 1, 1,
	0.5, 0.5, 0.5, 1, 0, 0, 0, 0,
	0.5, -0.5, 0.5, 1, 0, 0, 0, 1,

	// Top face (+Y)
	-0.5, 0.5, -0.5, 0, 1, 0, 0, 0,
	-0.5, 0.5, 0.5, 0, 1, 0, 0, 1,
	0.5, 0.5, 0.5, 0, 1, 0, 1, 1,
	-0.5, 0.5, -0.5, 0, 1, 0, 0, 0,
	0.5, 0.5, 0.5, 0, 1, 0, 1, 1,
	0.5, 0.5, -0.5, 0, 1, 0, 1, 0,

	// Bottom face (-Y)
	-0.5, -0.5, -0.5, 0, -1, 0, 0, 0,
	0.5, -0.5, -0.5, 0, -1, 0, 1, 0,
	0.5, -0.5, 0.5, 0, -1, 0, 1, 1,
	-0.5, -0.5, -0.5, 0, -1, 0, 0, 0,
	0.5, -0.5, 0.5, 0, -1, 0, 1, 1,
	-0.5, -0.5, 0.5, 0, -1, 0, 0, 1,
}

// cubeVertexCount is how many vertices one block draw submits.
const cubeVertexCount = 36

// cubeVertexStride is the per-vertex float count in cubeVertices.
const cubeVertexStride = 8
