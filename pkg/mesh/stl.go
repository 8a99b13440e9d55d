package mesh

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/painscape/painscape/pkg/math"
)

// ParseSTL reads an STL file and returns a welded mesh. ASCII and binary
// formats are detected automatically.
//
// STL stores independent triangles with no shared vertices, which would make
// every triangle its own classification island. Identical positions are
// welded into shared vertices so seams and region boundaries behave the same
// as for indexed formats. Stored facet normals are discarded and recomputed.
func ParseSTL(filename string) (*Mesh, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening STL: %w", err)
	}
	defer file.Close()

	// ASCII files start with "solid "; binary files have an arbitrary header
	header := make([]byte, 6)
	n, err := file.Read(header)
	if err != nil {
		return nil, fmt.Errorf("reading STL header: %w", err)
	}
	if _, err := file.Seek(0, 0); err != nil {
		return nil, fmt.Errorf("rewinding STL: %w", err)
	}

	var w welder
	if n >= 5 && strings.HasPrefix(string(header[:5]), "solid") {
		err = parseASCIISTL(file, &w)
	} else {
		err = parseBinarySTL(file, &w)
	}
	if err != nil {
		return nil, err
	}

	m := w.mesh()
	m.RecomputeNormals()
	return m, nil
}

// welder deduplicates vertex positions while accumulating triangles.
type welder struct {
	positions []math.Vec3
	indices   []uint32
	lookup    map[math.Vec3]uint32
}

func (w *welder) add(p math.Vec3) uint32 {
	if w.lookup == nil {
		w.lookup = make(map[math.Vec3]uint32)
	}
	if idx, ok := w.lookup[p]; ok {
		return idx
	}
	idx := uint32(len(w.positions))
	w.positions = append(w.positions, p)
	w.lookup[p] = idx
	return idx
}

func (w *welder) addTriangle(a, b, c math.Vec3) {
	w.indices = append(w.indices, w.add(a), w.add(b), w.add(c))
}

func (w *welder) mesh() *Mesh {
	return &Mesh{Positions: w.positions, Indices: w.indices}
}

func parseASCIISTL(reader io.Reader, w *welder) error {
	scanner := bufio.NewScanner(reader)
	var verts []math.Vec3

	for scanner.Scan() {
		fields := strings.Fields(strings.TrimSpace(scanner.Text()))
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "vertex":
			if len(fields) >= 4 {
				x, _ := strconv.ParseFloat(fields[1], 32)
				y, _ := strconv.ParseFloat(fields[2], 32)
				z, _ := strconv.ParseFloat(fields[3], 32)
				verts = append(verts, math.Vec3{X: float32(x), Y: float32(y), Z: float32(z)})
			}
		case "endfacet":
			if len(verts) == 3 {
				w.addTriangle(verts[0], verts[1], verts[2])
			}
			verts = verts[:0]
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading ASCII STL: %w", err)
	}
	return nil
}

func parseBinarySTL(reader io.Reader, w *welder) error {
	header := make([]byte, 80)
	if _, err := io.ReadFull(reader, header); err != nil {
		return fmt.Errorf("reading binary STL header: %w", err)
	}

	var triangleCount uint32
	if err := binary.Read(reader, binary.LittleEndian, &triangleCount); err != nil {
		return fmt.Errorf("reading triangle count: %w", err)
	}

	for i := uint32(0); i < triangleCount; i++ {
		// normal + 3 vertices + attribute count
		var rec struct {
			Normal  [3]float32
			V       [3][3]float32
			AttrLen uint16
		}
		if err := binary.Read(reader, binary.LittleEndian, &rec); err != nil {
			return fmt.Errorf("reading triangle %d: %w", i, err)
		}

		w.addTriangle(
			math.Vec3{X: rec.V[0][0], Y: rec.V[0][1], Z: rec.V[0][2]},
			math.Vec3{X: rec.V[1][0], Y: rec.V[1][1], Z: rec.V[1][2]},
			math.Vec3{X: rec.V[2][0], Y: rec.V[2][1], Z: rec.V[2][2]},
		)
	}

	return nil
}
