package mesh

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/painscape/painscape/pkg/math"
)

// ParseOBJ reads a Wavefront OBJ file and returns a mesh. Only geometry is
// consumed: "v" positions and "f" faces (fan-triangulated when they have
// more than three corners). Texture coordinates, stored normals, groups and
// materials are skipped; normals are recomputed from the triangles.
func ParseOBJ(filename string) (*Mesh, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening OBJ: %w", err)
	}
	defer file.Close()

	m := &Mesh{}
	scanner := bufio.NewScanner(file)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(strings.TrimSpace(scanner.Text()))
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("OBJ line %d: vertex needs 3 coordinates", lineNo)
			}
			x, errX := strconv.ParseFloat(fields[1], 32)
			y, errY := strconv.ParseFloat(fields[2], 32)
			z, errZ := strconv.ParseFloat(fields[3], 32)
			if errX != nil || errY != nil || errZ != nil {
				return nil, fmt.Errorf("OBJ line %d: bad vertex coordinates", lineNo)
			}
			m.Positions = append(m.Positions, math.Vec3{X: float32(x), Y: float32(y), Z: float32(z)})

		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("OBJ line %d: face needs at least 3 corners", lineNo)
			}
			corners := make([]uint32, 0, len(fields)-1)
			for _, ref := range fields[1:] {
				idx, err := resolveOBJIndex(ref, len(m.Positions))
				if err != nil {
					return nil, fmt.Errorf("OBJ line %d: %w", lineNo, err)
				}
				corners = append(corners, idx)
			}
			// Fan triangulation for quads and n-gons
			for i := 1; i+1 < len(corners); i++ {
				m.Indices = append(m.Indices, corners[0], corners[i], corners[i+1])
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading OBJ: %w", err)
	}

	m.RecomputeNormals()
	return m, nil
}

// resolveOBJIndex parses a face corner reference ("7", "7/2", "7//3",
// "7/2/3" or a negative relative index) into a zero-based vertex index.
func resolveOBJIndex(ref string, vertexCount int) (uint32, error) {
	if slash := strings.IndexByte(ref, '/'); slash >= 0 {
		ref = ref[:slash]
	}
	idx, err := strconv.Atoi(ref)
	if err != nil {
		return 0, fmt.Errorf("bad face index %q", ref)
	}
	if idx < 0 {
		idx = vertexCount + idx + 1
	}
	if idx < 1 || idx > vertexCount {
		return 0, fmt.Errorf("face index %d out of range (1..%d)", idx, vertexCount)
	}
	return uint32(idx - 1), nil
}
