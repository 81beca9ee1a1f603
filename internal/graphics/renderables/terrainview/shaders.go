package terrainview

const vertShaderSrc = `#version 410 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in vec2 aUV;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;

out vec3 fragNormal;
out vec3 fragWorldPos;
out vec2 fragUV;

void main() {
    vec4 worldPos = model * vec4(aPos, 1.0);
    fragWorldPos = worldPos.xyz;
    fragNormal = mat3(model) * aNormal;
    fragUV = aUV;
    gl_Position = projection * view * worldPos;
}
`

const fragShaderSrc = `#version 410 core
in vec3 fragNormal;
in vec3 fragWorldPos;
in vec2 fragUV;

uniform sampler2D colorMap;
uniform vec3 lightDir;
uniform vec3 cameraPos;
uniform float fogStart;
uniform float fogEnd;
uniform vec3 fogColor;

out vec4 outColor;

void main() {
    vec3 base = texture(colorMap, fragUV).rgb;

    vec3 n = normalize(fragNormal);
    float diffuse = max(dot(n, normalize(-lightDir)), 0.0);
    vec3 lit = base * (0.35 + 0.65 * diffuse);

    float dist = length(fragWorldPos - cameraPos);
    float fog = clamp((dist - fogStart) / (fogEnd - fogStart), 0.0, 1.0);
    outColor = vec4(mix(lit, fogColor, fog), 1.0);
}
`
