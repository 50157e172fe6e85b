package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// bloomFS smears bright fragments over their neighborhood and adds the
// result back onto the source, approximating a bloom around the light trails.
const bloomFS = `#version 330

in vec2 fragTexCoord;
in vec4 fragColor;

uniform sampler2D texture0;
uniform vec4 colDiffuse;
uniform vec2 resolution;
uniform float intensity;

out vec4 finalColor;

const float samples = 5.0;
const float quality = 2.5;

void main()
{
    vec4 sum = vec4(0);
    vec2 sizeFactor = vec2(1.0)/resolution*quality;
    vec4 source = texture(texture0, fragTexCoord);

    const int range = 2;
    for (int x = -range; x <= range; x++)
    {
        for (int y = -range; y <= range; y++)
        {
            sum += texture(texture0, fragTexCoord + vec2(x, y)*sizeFactor);
        }
    }

    finalColor = ((sum/(samples*samples)) * intensity + source)*colDiffuse;
}
`

// GlowRenderer captures the scene into an offscreen target and composites it
// back through the bloom shader. Must be created after the raylib window.
type GlowRenderer struct {
	target        rl.RenderTexture2D
	shader        rl.Shader
	resolutionLoc int32
	intensityLoc  int32
	width, height int32
}

// NewGlowRenderer allocates the offscreen target and loads the bloom shader.
func NewGlowRenderer(width, height int32) *GlowRenderer {
	g := &GlowRenderer{
		target: rl.LoadRenderTexture(width, height),
		shader: rl.LoadShaderFromMemory("", bloomFS),
		width:  width,
		height: height,
	}
	g.resolutionLoc = rl.GetShaderLocation(g.shader, "resolution")
	g.intensityLoc = rl.GetShaderLocation(g.shader, "intensity")
	rl.SetShaderValue(g.shader, g.resolutionLoc, []float32{float32(width), float32(height)}, rl.ShaderUniformVec2)
	return g
}

// Begin redirects drawing into the offscreen target.
func (g *GlowRenderer) Begin(clear rl.Color) {
	rl.BeginTextureMode(g.target)
	rl.ClearBackground(clear)
}

// End stops offscreen capture.
func (g *GlowRenderer) End() {
	rl.EndTextureMode()
}

// Composite draws the captured scene to the screen through the bloom shader.
func (g *GlowRenderer) Composite(intensity float32) {
	rl.SetShaderValue(g.shader, g.intensityLoc, []float32{intensity}, rl.ShaderUniformFloat)

	rl.BeginShaderMode(g.shader)
	// Render textures are stored upside down; flip on draw.
	src := rl.Rectangle{X: 0, Y: 0, Width: float32(g.width), Height: -float32(g.height)}
	rl.DrawTextureRec(g.target.Texture, src, rl.Vector2{}, rl.White)
	rl.EndShaderMode()
}

// Resize reallocates the target for new window dimensions.
func (g *GlowRenderer) Resize(width, height int32) {
	if width == g.width && height == g.height {
		return
	}
	rl.UnloadRenderTexture(g.target)
	g.target = rl.LoadRenderTexture(width, height)
	g.width = width
	g.height = height
	rl.SetShaderValue(g.shader, g.resolutionLoc, []float32{float32(width), float32(height)}, rl.ShaderUniformVec2)
}

// Unload releases GPU resources.
func (g *GlowRenderer) Unload() {
	rl.UnloadRenderTexture(g.target)
	rl.UnloadShader(g.shader)
}
