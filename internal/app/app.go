// Package app wires the viewer together and runs the render loop.
package app

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/skyview/internal/assets/importer"
	"github.com/Faultbox/skyview/internal/assets/model"
	"github.com/Faultbox/skyview/internal/config"
	"github.com/Faultbox/skyview/internal/engine/camera"
	"github.com/Faultbox/skyview/internal/engine/debug"
	"github.com/Faultbox/skyview/internal/engine/geometry"
	"github.com/Faultbox/skyview/internal/engine/input"
	"github.com/Faultbox/skyview/internal/engine/mesh"
	"github.com/Faultbox/skyview/internal/engine/renderer"
	"github.com/Faultbox/skyview/internal/engine/shader"
	"github.com/Faultbox/skyview/internal/engine/skybox"
	"github.com/Faultbox/skyview/internal/engine/texture"
	"github.com/Faultbox/skyview/internal/engine/window"
	"github.com/Faultbox/skyview/internal/logger"
)

// App is the viewer instance. It owns every GPU object it creates.
type App struct {
	cfg *config.Config

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	state    *input.State
	camera   *camera.FlyCamera

	skyboxShader *shader.Program
	modelShader  *shader.Program
	boxShader    *shader.Program

	skybox   *skybox.Skybox
	box      *mesh.PositionBuffer
	model    *mesh.Mesh
	textures *texture.Cache
	blank    texture.Texture

	modelMatrix mgl32.Mat4
	screenshots *debug.ScreenshotCapture

	release releaseStack
}

// New acquires the window, GL state, shaders and scene. If any step fails,
// everything acquired so far is released before the error is returned.
func New(cfg *config.Config) (*App, error) {
	logger.Info("initializing viewer",
		zap.String("title", cfg.Window.Title),
		zap.Bool("fullscreen", cfg.Window.Fullscreen),
		zap.String("model", cfg.Paths.Model),
	)

	a := &App{
		cfg:         cfg,
		input:       input.New(),
		state:       input.NewState(),
		modelMatrix: mgl32.Scale3D(cfg.Scene.ModelScale, cfg.Scene.ModelScale, cfg.Scene.ModelScale),
		screenshots: debug.NewScreenshotCapture(cfg.Paths.ScreenshotDir, "skyview"),
	}

	if err := a.init(); err != nil {
		if rerr := a.release.releaseAll(); rerr != nil {
			logger.Warn("cleanup after failed start", zap.Error(rerr))
		}
		return nil, err
	}

	logger.Info("viewer initialized", zap.Int("resources", a.release.len()))
	return a, nil
}

func (a *App) init() error {
	var err error

	a.window, err = window.New(window.Config{
		Title:      a.cfg.Window.Title,
		Width:      a.cfg.Window.Width,
		Height:     a.cfg.Window.Height,
		Fullscreen: a.cfg.Window.Fullscreen,
		VSync:      a.cfg.Window.VSync,
	})
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	a.release.push("window", a.window.Close)

	// Renderer AFTER window, since the OpenGL context must exist
	width, height := a.window.GetSize()
	a.renderer, err = renderer.New(renderer.Config{
		Width:      width,
		Height:     height,
		ClearColor: a.cfg.Scene.ClearColor,
	})
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}

	if a.skyboxShader, err = a.loadShader("skybox shader", a.cfg.Paths.SkyboxShader); err != nil {
		return err
	}
	if a.modelShader, err = a.loadShader("model shader", a.cfg.Paths.ModelShader); err != nil {
		return err
	}

	a.skybox, err = skybox.New(a.cfg.Paths.SkyboxFaces)
	if err != nil {
		return err
	}
	a.release.push("skybox", a.skybox.Delete)

	if a.cfg.Scene.ShowBox {
		if a.boxShader, err = a.loadShader("box shader", a.cfg.Paths.BoxShader); err != nil {
			return err
		}
		a.box, err = mesh.NewPositionBuffer(geometry.BoxVertices())
		if err != nil {
			return fmt.Errorf("box: %w", err)
		}
		a.release.push("box", a.box.Delete)
	}

	a.textures = texture.NewCache()
	a.release.pushErr("textures", a.textures.Close)

	// Models without a lightmap sample plain white instead.
	a.blank = texture.Solid(color.RGBA{255, 255, 255, 255})
	a.release.push("blank lightmap", a.blank.Delete)

	loader := &model.Loader{
		Importer:      importer.NewGLTF(),
		Textures:      a.textures,
		TextureRoot:   a.cfg.Paths.TextureRoot,
		FlipUVs:       a.cfg.Scene.FlipUVs,
		BlankLightmap: a.blank.ID,
	}
	g, err := loader.Load(a.cfg.Paths.Model)
	if err != nil {
		return fmt.Errorf("failed to load model: %w", err)
	}
	a.model, err = mesh.New(g)
	if err != nil {
		return fmt.Errorf("failed to upload model: %w", err)
	}
	a.release.push("model", a.model.Delete)

	logger.Info("model ready",
		zap.Int32("indices", a.model.IndexCount()),
		zap.Int("triangles", g.TriangleCount()),
		zap.Int("textures", a.textures.Len()),
	)

	a.camera = newCamera(a.cfg.Camera)
	return nil
}

func (a *App) loadShader(name string, pair config.ShaderPair) (*shader.Program, error) {
	p, err := shader.Load(pair.Vertex, pair.Fragment)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	a.release.push(name, p.Delete)
	return p, nil
}

func newCamera(cfg config.CameraConfig) *camera.FlyCamera {
	c := camera.New(mgl32.Vec3(cfg.Position), cfg.Yaw, cfg.Pitch)
	c.Speed = cfg.Speed
	c.Sensitivity = cfg.Sensitivity
	c.FOV = cfg.FOV
	c.Near = cfg.Near
	c.Far = cfg.Far
	return c
}

// Close releases every GPU object in reverse acquisition order, then the window.
func (a *App) Close() error {
	logger.Info("closing viewer")
	return a.release.releaseAll()
}
