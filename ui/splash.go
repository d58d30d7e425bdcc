package ui

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/dixieflatline76/Quill/config"
	"github.com/dixieflatline76/Quill/util/log"
)

// addVersionWatermark adds a version watermark to the given image.
func (qa *App) addVersionWatermark(img image.Image) (image.Image, error) {
	versionString := fmt.Sprintf("Version: %s", config.AppVersion)

	// Create a watermark image
	watermark := imaging.New(img.Bounds().Dx(), img.Bounds().Dy(), color.Transparent)

	col := color.RGBA{200, 200, 200, 220}

	// Calculate the width of the text
	bounds, _ := font.BoundString(basicfont.Face7x13, versionString)
	textWidth := bounds.Max.X.Ceil()

	point := fixed.Point26_6{
		X: fixed.Int26_6((img.Bounds().Dx() - textWidth - 10) * 64), // Offset from right edge, accounting for text width
		Y: fixed.Int26_6((img.Bounds().Dy() - 10) * 64),             // Offset from bottom edge
	}

	d := &font.Drawer{
		Dst:  watermark,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  point,
	}
	d.DrawString(versionString)

	// Overlay the watermark
	dst := imaging.Overlay(img, watermark, image.Pt(0, 0), 1)
	return dst, nil
}

// CreateSplashScreen creates a splash screen for the application. Splash
// display is best effort; drivers without splash support just skip it.
func (qa *App) CreateSplashScreen() {
	drv, ok := qa.app.Driver().(desktop.Driver)
	if !ok {
		log.Println("Splash screen not supported")
		return
	}

	splashWindow := drv.CreateSplashWindow()

	splashImg, err := qa.assetMgr.GetImage("splash.png")
	if err != nil {
		log.Printf("Failed to load splash image: %v", err)
		return
	}

	watermarkSplashImg, err := qa.addVersionWatermark(splashImg)
	if err == nil {
		splashImg = watermarkSplashImg
	}

	img := canvas.NewImageFromImage(splashImg)
	img.FillMode = canvas.ImageFillOriginal

	splashWindow.SetContent(img)
	splashWindow.Resize(fyne.NewSize(300, 120))
	splashWindow.CenterOnScreen()
	splashWindow.Show()

	// Hide the splash screen after a few seconds
	go func() {
		time.Sleep(aboutSplashTime * time.Second)
		fyne.Do(func() {
			splashWindow.Close()
		})
	}()
}
