package system

import "time"

// IntervalTimer срабатывает, когда с прошлого срабатывания накопилось Interval времени.
// Проверяется раз за тик, поэтому срабатывание запаздывает не больше чем на кадр.
type IntervalTimer struct {
	Interval time.Duration
	elapsed  time.Duration
}

func NewIntervalTimer(interval time.Duration) *IntervalTimer {
	return &IntervalTimer{Interval: interval}
}

// Tick добавляет dt и сообщает, сработал ли таймер.
func (t *IntervalTimer) Tick(dt time.Duration) bool {
	t.elapsed += dt
	if t.Interval > 0 && t.elapsed >= t.Interval {
		t.elapsed = 0
		return true
	}
	return false
}

// Reset обнуляет накопленное время.
func (t *IntervalTimer) Reset() {
	t.elapsed = 0
}
