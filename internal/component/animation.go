package component

// Animation - покадровый счётчик. Индекс кадра растёт на Step за тик
// и сбрасывается в 0, дойдя до Frames.
type Animation struct {
	Frames int
	Step   float64
	ticks  int
}

// NewAnimation создаёт анимацию из frames кадров со скоростью step кадра за тик.
func NewAnimation(frames int, step float64) Animation {
	return Animation{Frames: frames, Step: step}
}

// Advance продвигает анимацию на один тик.
// Возвращает true, если анимация дошла до конца и началась заново.
func (a *Animation) Advance() bool {
	a.ticks++
	// Индекс считается умножением, а не суммированием: 20*0.2 даёт ровно 4.
	if float64(a.ticks)*a.Step >= float64(a.Frames)-1e-9 {
		a.ticks = 0
		return true
	}
	return false
}

// Reset возвращает анимацию к первому кадру.
func (a *Animation) Reset() {
	a.ticks = 0
}

// Frame возвращает индекс текущего кадра в диапазоне [0, Frames).
func (a Animation) Frame() int {
	f := int(float64(a.ticks) * a.Step)
	if f >= a.Frames {
		f = a.Frames - 1
	}
	if f < 0 {
		f = 0
	}
	return f
}
