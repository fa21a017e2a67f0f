package renderer

const flatVertexShader = `#version 410 core

layout (location = 0) in vec2 aPosition;

uniform mat4 uProjection;
uniform mat4 uModel;
uniform float uPointSize;

void main() {
    gl_PointSize = uPointSize;
    gl_Position = uProjection * uModel * vec4(aPosition, 0.0, 1.0);
}
`

const flatFragmentShader = `#version 410 core

uniform vec4 uColor;

out vec4 FragColor;

void main() {
    FragColor = uColor;
}
`

var flatUniforms = []string{"uProjection", "uModel", "uPointSize", "uColor"}
