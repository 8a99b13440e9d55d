// Package renderer provides OpenGL rendering for the head viewport.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/painscape/painscape/internal/engine/shader"
	"github.com/painscape/painscape/internal/logger"
	"github.com/painscape/painscape/pkg/math"
	"github.com/painscape/painscape/pkg/mesh"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// Renderer draws the base head and its translucent region overlays.
type Renderer struct {
	config Config

	program    uint32
	uView      int32
	uProj      int32
	uColor     int32
	uAlpha     int32
	uLit       int32
	uViewPos   int32
	geometries []*Geometry
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
	}

	// Initialize OpenGL
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	// Log OpenGL info
	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	// Depth test for the opaque head, blending for the overlays
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.ClearColor(0.10, 0.10, 0.13, 1.0)

	program, err := shader.CompileProgram(headVertexShader, headFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	r.program = program
	r.uView = shader.GetUniform(program, "uView")
	r.uProj = shader.GetUniform(program, "uProj")
	r.uColor = shader.GetUniform(program, "uColor")
	r.uAlpha = shader.GetUniform(program, "uAlpha")
	r.uLit = shader.GetUniform(program, "uLit")
	r.uViewPos = shader.GetUniform(program, "uViewPos")

	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	for _, g := range r.geometries {
		g.destroy()
	}
	r.geometries = nil
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Begin starts a new frame with the given camera matrices.
func (r *Renderer) Begin(view, proj math.Mat4, viewPos math.Vec3) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.uView, 1, false, view.Ptr())
	gl.UniformMatrix4fv(r.uProj, 1, false, proj.Ptr())
	gl.Uniform3f(r.uViewPos, viewPos.X, viewPos.Y, viewPos.Z)
}

// End finishes the current frame.
func (r *Renderer) End() {
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

// DrawLit draws geometry with Lambert shading, used for the base head.
func (r *Renderer) DrawLit(g *Geometry, color [3]float32, alpha float32) {
	r.draw(g, color, alpha, true)
}

// DrawFlat draws geometry with flat unlit color, used for overlays whose
// color already carries the meaning.
func (r *Renderer) DrawFlat(g *Geometry, color [3]float32, alpha float32) {
	r.draw(g, color, alpha, false)
}

func (r *Renderer) draw(g *Geometry, color [3]float32, alpha float32, lit bool) {
	gl.Uniform3f(r.uColor, color[0], color[1], color[2])
	gl.Uniform1f(r.uAlpha, alpha)
	litVal := int32(0)
	if lit {
		litVal = 1
	}
	gl.Uniform1i(r.uLit, litVal)

	gl.BindVertexArray(g.vao)
	gl.DrawElements(gl.TRIANGLES, g.indexCount, gl.UNSIGNED_INT, nil)
}

// Geometry is a mesh resident on the GPU: interleaved position+normal VBO
// plus an index buffer.
type Geometry struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

// Upload copies a mesh into GPU buffers. The renderer owns the geometry and
// frees it on Close; callers may also free early with Destroy.
func (r *Renderer) Upload(m *mesh.Mesh) (*Geometry, error) {
	if m.VertexCount() == 0 || m.TriangleCount() == 0 {
		return nil, fmt.Errorf("uploading empty mesh")
	}

	// Interleave position and normal
	vertices := make([]float32, 0, m.VertexCount()*6)
	for i, p := range m.Positions {
		n := m.Normals[i]
		vertices = append(vertices, p.X, p.Y, p.Z, n.X, n.Y, n.Z)
	}

	g := &Geometry{indexCount: int32(len(m.Indices))}

	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)

	gl.GenBuffers(1, &g.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	gl.GenBuffers(1, &g.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, unsafe.Pointer(&m.Indices[0]), gl.STATIC_DRAW)

	// Position attribute (location = 0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 6*4, nil)
	gl.EnableVertexAttribArray(0)

	// Normal attribute (location = 1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, 6*4, unsafe.Pointer(uintptr(3*4)))
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)

	r.geometries = append(r.geometries, g)
	logger.Debug("geometry uploaded",
		zap.Uint32("vao", g.vao),
		zap.Int("vertices", m.VertexCount()),
		zap.Int("triangles", m.TriangleCount()),
	)
	return g, nil
}

// Destroy frees the geometry's GPU buffers.
func (g *Geometry) Destroy() {
	g.destroy()
}

func (g *Geometry) destroy() {
	if g.vao != 0 {
		gl.DeleteVertexArrays(1, &g.vao)
		g.vao = 0
	}
	if g.vbo != 0 {
		gl.DeleteBuffers(1, &g.vbo)
		g.vbo = 0
	}
	if g.ebo != 0 {
		gl.DeleteBuffers(1, &g.ebo)
		g.ebo = 0
	}
}

const headVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;

uniform mat4 uView;
uniform mat4 uProj;

out vec3 vNormal;
out vec3 vWorldPos;

void main() {
	gl_Position = uProj * uView * vec4(aPos, 1.0);
	vNormal = aNormal;
	vWorldPos = aPos;
}
`

const headFragmentShader = `
#version 410 core

in vec3 vNormal;
in vec3 vWorldPos;

uniform vec3 uColor;
uniform float uAlpha;
uniform int uLit;
uniform vec3 uViewPos;

out vec4 FragColor;

void main() {
	vec3 color = uColor;
	if (uLit == 1) {
		vec3 n = normalize(vNormal);
		vec3 lightDir = normalize(uViewPos - vWorldPos);
		float diffuse = max(dot(n, lightDir), 0.0);
		color = uColor * (0.35 + 0.65 * diffuse);
	}
	FragColor = vec4(color, uAlpha);
}
`
