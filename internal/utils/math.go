// internal/utils/math.go
package utils

import "math"

// DegToRad переводит градусы в радианы
func DegToRad(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// RadToDeg переводит радианы в градусы
func RadToDeg(radians float64) float64 {
	return radians * 180 / math.Pi
}

// VelocityFromAngle возвращает вектор скорости заданной величины
// вдоль угла в градусах (0 — вправо, 90 — вниз, ось Y экрана).
func VelocityFromAngle(angle, speed float64) (float64, float64) {
	rad := DegToRad(angle)
	return math.Cos(rad) * speed, math.Sin(rad) * speed
}

// PointFromAngle смещает точку (x, y) на radius вдоль угла в градусах.
func PointFromAngle(x, y, radius, angle float64) (float64, float64) {
	dx, dy := VelocityFromAngle(angle, radius)
	return x + dx, y + dy
}

// AngleTo возвращает угол в радианах от (fromX, fromY) к (toX, toY)
func AngleTo(fromX, fromY, toX, toY float64) float64 {
	return math.Atan2(toY-fromY, toX-fromX)
}

// WrapDegrees приводит угол к диапазону [0, 360)
func WrapDegrees(angle float64) float64 {
	angle = math.Mod(angle, 360)
	if angle < 0 {
		angle += 360
	}
	return angle
}

// Clamp ограничивает v отрезком [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
