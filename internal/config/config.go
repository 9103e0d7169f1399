// Package config handles viewer configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

// ErrInvalid wraps validation failures returned by Load.
var ErrInvalid = errors.New("invalid config")

// Config holds all viewer settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Camera  CameraConfig  `yaml:"camera"`
	Paths   PathsConfig   `yaml:"paths"`
	Scene   SceneConfig   `yaml:"scene"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings.
// A zero width or height in fullscreen mode means the desktop resolution.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// CameraConfig holds the initial fly camera state and its tuning constants.
// Angles are in degrees.
type CameraConfig struct {
	Position    [3]float32 `yaml:"position"`
	Yaw         float32    `yaml:"yaw"`
	Pitch       float32    `yaml:"pitch"`
	Speed       float32    `yaml:"speed"`
	Sensitivity float32    `yaml:"sensitivity"`
	FOV         float32    `yaml:"fov"`
	Near        float32    `yaml:"near"`
	Far         float32    `yaml:"far"`
}

// ShaderPair names a vertex/fragment source pair on disk.
type ShaderPair struct {
	Vertex   string `yaml:"vertex"`
	Fragment string `yaml:"fragment"`
}

// PathsConfig holds every file the viewer reads at startup.
type PathsConfig struct {
	SkyboxShader ShaderPair `yaml:"skybox_shader"`
	ModelShader  ShaderPair `yaml:"model_shader"`
	BoxShader    ShaderPair `yaml:"box_shader"`
	Model        string     `yaml:"model"`
	TextureRoot  string     `yaml:"texture_root"`
	// SkyboxFaces are ordered east, west, up, down, north, south (+X,-X,+Y,-Y,+Z,-Z).
	SkyboxFaces []string `yaml:"skybox_faces"`
	// ScreenshotDir receives F12 captures.
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// SceneConfig holds what gets drawn each frame.
type SceneConfig struct {
	ShowBox    bool       `yaml:"show_box"`
	ModelScale float32    `yaml:"model_scale"`
	ClearColor [4]float32 `yaml:"clear_color"`
	FlipUVs    bool       `yaml:"flip_uvs"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config matching the stock media layout.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "OpenGL Skybox",
			Width:      0,
			Height:     0,
			Fullscreen: true,
			VSync:      true,
		},
		Camera: CameraConfig{
			Position:    [3]float32{0, 0, 3},
			Yaw:         -90,
			Pitch:       0,
			Speed:       5,
			Sensitivity: 0.1,
			FOV:         45,
			Near:        0.1,
			Far:         100,
		},
		Paths: PathsConfig{
			SkyboxShader: ShaderPair{Vertex: "shaders/skybox.vert", Fragment: "shaders/skybox.frag"},
			ModelShader:  ShaderPair{Vertex: "shaders/simple_diffuse.vert", Fragment: "shaders/simple_diffuse.frag"},
			BoxShader:    ShaderPair{Vertex: "shaders/solid.vert", Fragment: "shaders/solid.frag"},
			Model:        "media/models/plane.gltf",
			TextureRoot:  "media/textures",
			SkyboxFaces: []string{
				"media/skybox/clouds1_east.bmp",
				"media/skybox/clouds1_west.bmp",
				"media/skybox/clouds1_up.bmp",
				"media/skybox/clouds1_down.bmp",
				"media/skybox/clouds1_north.bmp",
				"media/skybox/clouds1_south.bmp",
			},
			ScreenshotDir: "screenshots",
		},
		Scene: SceneConfig{
			ShowBox:    false,
			ModelScale: 1,
			ClearColor: [4]float32{0, 0, 0, 1},
			FlipUVs:    false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var err error

	if c.Window.Width < 0 || c.Window.Height < 0 {
		err = multierr.Append(err, fmt.Errorf("window: negative size %dx%d", c.Window.Width, c.Window.Height))
	}

	if c.Camera.Speed <= 0 {
		err = multierr.Append(err, fmt.Errorf("camera: speed must be positive, got %g", c.Camera.Speed))
	}
	if c.Camera.Sensitivity <= 0 {
		err = multierr.Append(err, fmt.Errorf("camera: sensitivity must be positive, got %g", c.Camera.Sensitivity))
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		err = multierr.Append(err, fmt.Errorf("camera: fov must be in (0, 180), got %g", c.Camera.FOV))
	}
	if c.Camera.Near <= 0 || c.Camera.Near >= c.Camera.Far {
		err = multierr.Append(err, fmt.Errorf("camera: need 0 < near < far, got near=%g far=%g", c.Camera.Near, c.Camera.Far))
	}

	err = multierr.Append(err, c.Paths.validate())

	if c.Scene.ModelScale <= 0 {
		err = multierr.Append(err, fmt.Errorf("scene: model_scale must be positive, got %g", c.Scene.ModelScale))
	}

	return err
}

func (p *PathsConfig) validate() error {
	var err error
	for name, path := range map[string]string{
		"skybox_shader.vertex":   p.SkyboxShader.Vertex,
		"skybox_shader.fragment": p.SkyboxShader.Fragment,
		"model_shader.vertex":    p.ModelShader.Vertex,
		"model_shader.fragment":  p.ModelShader.Fragment,
		"box_shader.vertex":      p.BoxShader.Vertex,
		"box_shader.fragment":    p.BoxShader.Fragment,
		"model":                  p.Model,
		"texture_root":           p.TextureRoot,
	} {
		if path == "" {
			err = multierr.Append(err, fmt.Errorf("paths: %s is empty", name))
		}
	}

	if len(p.SkyboxFaces) != 6 {
		err = multierr.Append(err, fmt.Errorf("paths: skybox_faces needs 6 entries, got %d", len(p.SkyboxFaces)))
	}
	for i, face := range p.SkyboxFaces {
		if face == "" {
			err = multierr.Append(err, fmt.Errorf("paths: skybox_faces[%d] is empty", i))
		}
	}
	return err
}
