package utils

import "math"

// EuclideanDistance вычисляет расстояние между двумя точками на плоскости
func EuclideanDistance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// ClampPixelRatio приводит device pixel ratio к диапазону (0, max], 0 и отрицательные значения считаются 1
func ClampPixelRatio(dpr, max float64) float64 {
	if dpr <= 0 || math.IsNaN(dpr) {
		return 1
	}
	if dpr > max {
		return max
	}
	return dpr
}
