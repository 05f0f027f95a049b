// pkg/geom/rect.go
package geom

// Rect - осевой прямоугольник (хитбокс). X, Y - левый верхний угол.
type Rect struct {
	X, Y float64
	W, H float64
}

// NewRect создаёт прямоугольник по левому верхнему углу и размерам.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// NewRectCentered создаёт прямоугольник с центром в (cx, cy).
func NewRectCentered(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center возвращает центр прямоугольника.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// SetLeft двигает прямоугольник так, чтобы левый край оказался в x.
func (r *Rect) SetLeft(x float64) { r.X = x }

// SetRight двигает прямоугольник так, чтобы правый край оказался в x.
func (r *Rect) SetRight(x float64) { r.X = x - r.W }

// SetTop двигает прямоугольник так, чтобы верхний край оказался в y.
func (r *Rect) SetTop(y float64) { r.Y = y }

// SetBottom двигает прямоугольник так, чтобы нижний край оказался в y.
func (r *Rect) SetBottom(y float64) { r.Y = y - r.H }

// Translate сдвигает прямоугольник на (dx, dy).
func (r *Rect) Translate(dx, dy float64) {
	r.X += dx
	r.Y += dy
}

// Moved возвращает копию, сдвинутую на (dx, dy).
func (r Rect) Moved(dx, dy float64) Rect {
	r.Translate(dx, dy)
	return r
}

// Intersects сообщает, перекрываются ли два прямоугольника.
// Касание краями перекрытием не считается.
func (r Rect) Intersects(o Rect) bool {
	if r.X >= o.Right() || o.X >= r.Right() {
		return false
	}
	if r.Y >= o.Bottom() || o.Y >= r.Bottom() {
		return false
	}
	return true
}

// Inflate увеличивает прямоугольник на dw по ширине и dh по высоте, сохраняя центр.
func (r Rect) Inflate(dw, dh float64) Rect {
	return Rect{X: r.X - dw/2, Y: r.Y - dh/2, W: r.W + dw, H: r.H + dh}
}

// Contains проверяет, лежит ли точка внутри прямоугольника.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}
