package ui

import (
	"go-tankr/internal/camera"
	"go-tankr/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Anchor — объект, над которым висит подпись
type Anchor interface {
	Position() (float64, float64)
}

// Caption — имя танка над корпусом.
type Caption struct {
	target Anchor
	face   font.Face

	Text  string
	X, Y  float64
	Alive bool
}

func NewCaption(target Anchor, label string) *Caption {
	c := &Caption{target: target, face: basicfont.Face7x13, Text: label, Alive: true}
	c.Update()
	return c
}

// Update держит подпись по центру над танком.
func (c *Caption) Update() {
	if !c.Alive {
		return
	}
	x, y := c.target.Position()
	width := font.MeasureString(c.face, c.Text).Ceil()
	c.X = x - float64(width)/2
	c.Y = y - config.CaptionOffsetY
}

func (c *Caption) Kill() {
	c.Alive = false
}

func (c *Caption) Draw(screen *ebiten.Image, cam *camera.Camera) {
	if !c.Alive {
		return
	}
	sx, sy := cam.WorldToScreen(c.X, c.Y)
	text.Draw(screen, c.Text, c.face, int(sx), int(sy), config.TextLightColor)
}
