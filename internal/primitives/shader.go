package primitives

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"space-lab/internal/palette"
)

// loadLitShader returns a shader doing directional light, ambient, a tight metallic
// highlight and an emissive term. Same vertex attributes as raylib meshes:
// vertexPosition, vertexTexCoord, vertexNormal.
func loadLitShader() rl.Shader {
	return rl.LoadShaderFromMemory(litVS, litFS)
}

const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragPosition;
out vec2 fragTexCoord;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragTexCoord = vertexTexCoord;
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = matProjection * matView * worldPos;
}
`
	litFS = `#version 330
in vec3 fragPosition;
in vec2 fragTexCoord;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 lightDir;
uniform vec4 ambient;
uniform vec3 lightColor;
uniform float lightIntensity;
uniform float specularPower;
uniform float specularStrength;
uniform vec3 emissive;
out vec4 finalColor;
void main() {
  vec4 tint = colDiffuse;
  vec3 N = normalize(fragNormal);
  vec3 L = normalize(lightDir);
  vec3 V = normalize(viewPos - fragPosition);
  float NdotL = max(dot(N, L), 0.0);
  vec3 diffuse = tint.rgb * NdotL * lightColor * lightIntensity;
  vec3 amb = ambient.rgb * tint.rgb;
  vec3 H = normalize(L + V);
  float NdotH = max(dot(N, H), 0.0);
  float spec = pow(NdotH, specularPower) * specularStrength;
  vec3 specular = mix(lightColor, tint.rgb, 0.8) * spec * (NdotL > 0.0 ? 1.0 : 0.0);
  finalColor = vec4(min(amb + diffuse + specular + emissive, vec3(1.0)), tint.a);
}
`
)

// defaultAmbient is the ambient term (dim so shadowed areas aren't pure black).
var defaultAmbient = [4]float32{0.3, 0.32, 0.36, 1.0}

// defaultLightColor is a soft warm-white for the directional light.
var defaultLightColor = [3]float32{1.0, 0.98, 0.95}

const (
	defaultLightIntensity = float32(0.8)
	// Tight, bright highlight tinted by the albedo reads as polished metal.
	defaultSpecularPower    = float32(64.0)
	defaultSpecularStrength = float32(0.6)
)

// shaderLocs caches uniform locations; -1 means the uniform was optimized out.
type shaderLocs struct {
	viewPos, lightDir, ambient, lightColor  int32
	lightIntensity, specPower, specStrength int32
	emissive                                int32
}

func lookupLocs(shader rl.Shader) shaderLocs {
	return shaderLocs{
		viewPos:        rl.GetShaderLocation(shader, "viewPos"),
		lightDir:       rl.GetShaderLocation(shader, "lightDir"),
		ambient:        rl.GetShaderLocation(shader, "ambient"),
		lightColor:     rl.GetShaderLocation(shader, "lightColor"),
		lightIntensity: rl.GetShaderLocation(shader, "lightIntensity"),
		specPower:      rl.GetShaderLocation(shader, "specularPower"),
		specStrength:   rl.GetShaderLocation(shader, "specularStrength"),
		emissive:       rl.GetShaderLocation(shader, "emissive"),
	}
}

// setLitShaderUniforms sets lighting and the part's emissive glow (cgo-safe: local arrays).
func (r *Registry) setLitShaderUniforms(color palette.RGBA, emissive float32) {
	shader := r.mtl.Shader
	if !rl.IsShaderValid(shader) {
		return
	}
	viewPos := [3]float32{r.viewPos[0], r.viewPos[1], r.viewPos[2]}
	lightDir := [3]float32{r.lightDir[0], r.lightDir[1], r.lightDir[2]}
	amb := defaultAmbient
	lightColor := defaultLightColor
	glow := [3]float32{
		float32(color.R) / 255 * emissive,
		float32(color.G) / 255 * emissive,
		float32(color.B) / 255 * emissive,
	}
	set3 := func(loc int32, v []float32) {
		if loc >= 0 {
			rl.SetShaderValueV(shader, loc, v, rl.ShaderUniformVec3, 1)
		}
	}
	set1 := func(loc int32, v float32) {
		if loc >= 0 {
			rl.SetShaderValue(shader, loc, []float32{v}, rl.ShaderUniformFloat)
		}
	}
	set3(r.locs.viewPos, viewPos[:])
	set3(r.locs.lightDir, lightDir[:])
	if r.locs.ambient >= 0 {
		rl.SetShaderValueV(shader, r.locs.ambient, amb[:], rl.ShaderUniformVec4, 1)
	}
	set3(r.locs.lightColor, lightColor[:])
	set1(r.locs.lightIntensity, defaultLightIntensity)
	set1(r.locs.specPower, defaultSpecularPower)
	set1(r.locs.specStrength, defaultSpecularStrength)
	set3(r.locs.emissive, glow[:])
}
