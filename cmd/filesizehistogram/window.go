package main

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// show opens a window with the chart and blocks until it is closed.
func show(title string, img image.Image) {
	a := app.New()
	w := a.NewWindow(title)

	c := canvas.NewImageFromImage(img)
	c.FillMode = canvas.ImageFillContain

	b := img.Bounds()
	c.SetMinSize(fyne.NewSize(float32(b.Dx())/2, float32(b.Dy())/2))

	w.SetContent(c)
	w.Resize(fyne.NewSize(float32(b.Dx()), float32(b.Dy())))
	w.ShowAndRun()
}

// withCaption draws text in the bottom-left corner of the image.
func withCaption(img image.Image, text string) image.Image {
	if img == nil || strings.TrimSpace(text) == "" {
		return img
	}

	b := img.Bounds()
	rgba := image.NewRGBA(b)
	draw.Draw(rgba, b, img, b.Min, draw.Src)

	face := basicfont.Face7x13
	dr := &font.Drawer{
		Dst:  rgba,
		Src:  image.NewUniform(color.RGBA{R: 96, G: 96, B: 96, A: 255}),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(b.Min.X + 8), Y: fixed.I(b.Max.Y - 6)},
	}
	dr.DrawString(text)

	return rgba
}
