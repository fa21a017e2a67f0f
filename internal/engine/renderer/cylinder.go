package renderer

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/lathe-sim/internal/engine/shader"
	"github.com/Faultbox/lathe-sim/internal/engine/texture"
	"github.com/Faultbox/lathe-sim/internal/lathe"
	"github.com/Faultbox/lathe-sim/internal/logger"
	"github.com/Faultbox/lathe-sim/pkg/math"
)

const cylinderVertexShader = `#version 410 core

layout (location = 0) in vec3 aPosition;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in vec2 aTexCoord;

uniform mat4 uProjection;
uniform mat4 uModel;

out vec3 vWorldPos;
out vec3 vNormal;
out vec3 vTangent;
out vec2 vTexCoord;

void main() {
    mat3 rot = mat3(uModel);
    vec4 world = uModel * vec4(aPosition, 1.0);
    vWorldPos = world.xyz;
    vNormal = rot * aNormal;
    // Normals are radial, so the circumferential direction is the tangent.
    vTangent = rot * vec3(-aNormal.y, aNormal.x, 0.0);
    vTexCoord = aTexCoord;
    gl_Position = uProjection * world;
}
`

const cylinderFragmentShader = `#version 410 core

const float PI = 3.14159265359;

in vec3 vWorldPos;
in vec3 vNormal;
in vec3 vTangent;
in vec2 vTexCoord;

uniform sampler2D uAlbedo;
uniform sampler2D uNormalMap;
uniform sampler2D uMetallicMap;
uniform sampler2D uRoughnessMap;
uniform sampler2D uAOMap;

uniform vec3 uLightPos[2];
uniform vec3 uLightColor[2];
uniform vec3 uViewDir;

out vec4 FragColor;

float distributionGGX(vec3 N, vec3 H, float roughness) {
    float a = roughness * roughness;
    float a2 = a * a;
    float NdotH = max(dot(N, H), 0.0);
    float d = NdotH * NdotH * (a2 - 1.0) + 1.0;
    return a2 / (PI * d * d);
}

float geometrySchlickGGX(float NdotV, float roughness) {
    float k = (roughness + 1.0) * (roughness + 1.0) / 8.0;
    return NdotV / (NdotV * (1.0 - k) + k);
}

vec3 fresnelSchlick(float cosTheta, vec3 F0) {
    return F0 + (1.0 - F0) * pow(clamp(1.0 - cosTheta, 0.0, 1.0), 5.0);
}

void main() {
    vec3 albedo = pow(texture(uAlbedo, vTexCoord).rgb, vec3(2.2));
    float metallic = texture(uMetallicMap, vTexCoord).r;
    float roughness = max(texture(uRoughnessMap, vTexCoord).r, 0.05);
    float ao = texture(uAOMap, vTexCoord).r;

    vec3 N0 = normalize(vNormal);
    vec3 T = normalize(vTangent - dot(vTangent, N0) * N0);
    mat3 TBN = mat3(T, cross(N0, T), N0);
    vec3 N = normalize(TBN * (texture(uNormalMap, vTexCoord).xyz * 2.0 - 1.0));
    vec3 V = normalize(-uViewDir);

    vec3 F0 = mix(vec3(0.04), albedo, metallic);
    vec3 Lo = vec3(0.0);
    for (int i = 0; i < 2; i++) {
        vec3 L = normalize(uLightPos[i] - vWorldPos);
        vec3 H = normalize(V + L);
        float dist = length(uLightPos[i] - vWorldPos);
        vec3 radiance = uLightColor[i] / (dist * dist);

        float NdotL = max(dot(N, L), 0.0);
        float NdotV = max(dot(N, V), 0.0);
        float G = geometrySchlickGGX(NdotV, roughness) * geometrySchlickGGX(NdotL, roughness);
        vec3 F = fresnelSchlick(max(dot(H, V), 0.0), F0);
        vec3 specular = distributionGGX(N, H, roughness) * G * F / (4.0 * NdotV * NdotL + 0.0001);
        vec3 kD = (vec3(1.0) - F) * (1.0 - metallic);

        Lo += (kD * albedo / PI + specular) * radiance * NdotL;
    }

    vec3 color = vec3(0.03) * albedo * ao + Lo;
    color = color / (color + vec3(1.0));
    FragColor = vec4(pow(color, vec3(1.0 / 2.2)), 1.0);
}
`

// Material map slots, in texture unit order.
const (
	MapAlbedo = iota
	MapNormal
	MapMetallic
	MapRoughness
	MapAO
	MaterialMaps
)

var materialSamplers = [MaterialMaps]string{
	"uAlbedo", "uNormalMap", "uMetallicMap", "uRoughnessMap", "uAOMap",
}

// Material holds uploaded texture IDs indexed by map slot.
type Material [MaterialMaps]uint32

// PointLight is a light in scene space.
type PointLight struct {
	Position [3]float32
	Color    [3]float32
}

// Lights are the two point lights in front of the workpiece, one high on
// the left and one low on the right.
var Lights = [2]PointLight{
	{Position: [3]float32{-0.8, 0.8, 1.5}, Color: [3]float32{4, 4, 4}},
	{Position: [3]float32{1.0, -0.6, 1.2}, Color: [3]float32{2.5, 2.5, 2.5}},
}

// viewDir is the ortho camera's look direction.
var viewDir = [3]float32{0, 0, -1}

// Cylinder holds the GPU copy of the workpiece mesh. The index buffer is
// uploaded once; vertices are rewritten in place as the profile is cut.
type Cylinder struct {
	program    *shader.Program
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
	material   Material
}

var _ lathe.VertexWriter = (*Cylinder)(nil)

// NewCylinder uploads the mesh.
func NewCylinder(mesh *lathe.Mesh) (*Cylinder, error) {
	uniforms := append([]string{"uProjection", "uModel", "uViewDir", "uLightPos[0]", "uLightColor[0]"},
		materialSamplers[:]...)
	prog, err := shader.New(cylinderVertexShader, cylinderFragmentShader, uniforms...)
	if err != nil {
		return nil, err
	}
	c := &Cylinder{program: prog, indexCount: int32(len(mesh.Indices))}

	gl.GenVertexArrays(1, &c.vao)
	gl.BindVertexArray(c.vao)

	gl.GenBuffers(1, &c.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, c.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Vertices)*lathe.VertexSize,
		unsafe.Pointer(&mesh.Vertices[0]), gl.DYNAMIC_DRAW)

	gl.GenBuffers(1, &c.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, c.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4,
		unsafe.Pointer(&mesh.Indices[0]), gl.STATIC_DRAW)

	stride := int32(lathe.VertexSize)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 12)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, 24)
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)

	logger.Debug("cylinder uploaded",
		zap.Int("vertices", len(mesh.Vertices)),
		zap.Int("indices", len(mesh.Indices)),
	)
	return c, nil
}

// WriteVertices overwrites a contiguous run of vertices starting at offset.
func (c *Cylinder) WriteVertices(offset int, vertices []lathe.Vertex) {
	if len(vertices) == 0 {
		return
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, c.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, offset*lathe.VertexSize,
		len(vertices)*lathe.VertexSize, unsafe.Pointer(&vertices[0]))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// SetMaterial swaps the surface maps. The previous textures are released.
func (c *Cylinder) SetMaterial(m Material) {
	c.deleteMaterial()
	c.material = m
}

func (c *Cylinder) deleteMaterial() {
	for i, id := range c.material {
		texture.Delete(id)
		c.material[i] = 0
	}
}

// lightArrays flattens the lights for vec3 array uniforms.
func lightArrays(lights []PointLight) (pos, col []float32) {
	for _, l := range lights {
		pos = append(pos, l.Position[:]...)
		col = append(col, l.Color[:]...)
	}
	return pos, col
}

// Draw renders the mesh with the given projection and model matrices.
func (c *Cylinder) Draw(projection, model math.Mat4) {
	c.program.Use()
	gl.UniformMatrix4fv(c.program.Uniform("uProjection"), 1, false, projection.Ptr())
	gl.UniformMatrix4fv(c.program.Uniform("uModel"), 1, false, model.Ptr())
	gl.Uniform3fv(c.program.Uniform("uViewDir"), 1, &viewDir[0])

	pos, col := lightArrays(Lights[:])
	gl.Uniform3fv(c.program.Uniform("uLightPos[0]"), int32(len(Lights)), &pos[0])
	gl.Uniform3fv(c.program.Uniform("uLightColor[0]"), int32(len(Lights)), &col[0])

	for unit, id := range c.material {
		gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
		gl.BindTexture(gl.TEXTURE_2D, id)
		gl.Uniform1i(c.program.Uniform(materialSamplers[unit]), int32(unit))
	}

	gl.BindVertexArray(c.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, c.indexCount, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
	gl.ActiveTexture(gl.TEXTURE0)
}

// Close releases the buffers, the textures and the program.
func (c *Cylinder) Close() {
	c.deleteMaterial()
	if c.vao != 0 {
		gl.DeleteVertexArrays(1, &c.vao)
	}
	if c.vbo != 0 {
		gl.DeleteBuffers(1, &c.vbo)
	}
	if c.ebo != 0 {
		gl.DeleteBuffers(1, &c.ebo)
	}
	c.program.Delete()
}
