// internal/utils/math.go
package utils

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
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

// Ratio возвращает part/whole, ограниченное [0, 1]; при whole <= 0 — ноль
func Ratio(part, whole int) float64 {
	if whole <= 0 {
		return 0
	}
	return Clamp(float64(part)/float64(whole), 0, 1)
}
