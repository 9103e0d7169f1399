package app

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/skyview/internal/engine/debug"
	"github.com/Faultbox/skyview/internal/logger"
)

// Run renders frames until quit or Escape. Close is checked only at the top
// of each iteration, so a frame in flight always completes.
func (a *App) Run() error {
	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting render loop")

	for !a.state.CloseRequested() {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		a.input.Update()
		for _, e := range a.input.Events() {
			a.state.Apply(e)
		}

		a.update(float32(dt))
		a.render()
		if a.input.IsKeyPressed(sdl.SCANCODE_F12) {
			a.captureScreenshot()
		}
		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps",
				zap.Int("count", frameCount),
				zap.String("dt", fmt.Sprintf("%.2fms", dt*1000)),
				zap.Float32s("camera", a.camera.Position[:]),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	logger.Info("render loop finished")
	return nil
}

// update applies this frame's input to the viewport and camera.
func (a *App) update(dt float32) {
	if _, _, resized := a.state.TakeResize(); resized {
		a.renderer.Resize(a.window.GetSize())
	}
	if x, y, moved := a.state.TakeCursor(); moved {
		a.camera.Look(x, y)
	}
	a.camera.Move(a.state.Arrows(), dt)
}

// render draws the skybox, the model and the optional box.
func (a *App) render() {
	a.renderer.Begin()

	view := a.camera.ViewMatrix()
	projection := a.camera.Projection(a.renderer.Aspect())

	a.skybox.Draw(a.skyboxShader, a.camera.SkyboxView(), projection)

	a.modelShader.Use()
	a.modelShader.SetMat4("model", a.modelMatrix)
	a.modelShader.SetMat4("view", view)
	a.modelShader.SetMat4("projection", projection)
	a.model.Draw(a.modelShader)

	if a.box != nil {
		a.boxShader.Use()
		a.boxShader.SetMat4("model", mgl32.Ident4())
		a.boxShader.SetMat4("view", view)
		a.boxShader.SetMat4("projection", projection)
		a.box.Draw()
	}
}

// captureScreenshot saves the frame just rendered, before the swap.
func (a *App) captureScreenshot() {
	width, height := a.window.GetSize()
	name, err := a.screenshots.CaptureFromPixels(debug.ReadBackBuffer(width, height), width, height)
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("file", name))
}
