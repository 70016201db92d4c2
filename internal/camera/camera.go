package camera

import "github.com/hajimehoshi/ebiten/v2"

// Camera — центр обзора в мировых координатах
type Camera struct {
	X, Y          float64
	Width, Height float64 // размер экрана
}

func New(width, height float64) *Camera {
	return &Camera{Width: width, Height: height}
}

// CenterOn ставит камеру в точку без сглаживания
func (c *Camera) CenterOn(x, y float64) {
	c.X, c.Y = x, y
}

// WorldToScreen переводит мировые координаты в экранные
func (c *Camera) WorldToScreen(x, y float64) (float64, float64) {
	return x - c.X + c.Width/2, y - c.Y + c.Height/2
}

// ScreenToWorld переводит экранные координаты в мировые
func (c *Camera) ScreenToWorld(x, y float64) (float64, float64) {
	return x + c.X - c.Width/2, y + c.Y - c.Height/2
}

// GeoM — матрица для отрисовки мира с учётом камеры
func (c *Camera) GeoM() ebiten.GeoM {
	var m ebiten.GeoM
	m.Translate(c.Width/2-c.X, c.Height/2-c.Y)
	return m
}
