// internal/utils/timer.go
package utils

// Timer накапливает время кадров и срабатывает раз в Interval секунд.
type Timer struct {
	interval   float64
	passedTime float64
}

func NewTimer(interval float64) *Timer {
	if interval <= 0 {
		interval = 1.0
	}
	return &Timer{interval: interval}
}

func (t *Timer) SetInterval(interval float64) {
	t.interval = interval
}

func (t *Timer) Interval() float64 {
	return t.interval
}

// Restart обнуляет накопленное время.
func (t *Timer) Restart() {
	t.passedTime = 0
}

func (t *Timer) PassedTime() float64 {
	return t.passedTime
}

// Remaining — сколько осталось до срабатывания (не меньше нуля).
func (t *Timer) Remaining() float64 {
	return max(0, t.interval-t.passedTime)
}

// HasTimePassed добавляет deltaTime и возвращает true, если интервал истёк.
// Остаток сверх интервала сохраняется.
func (t *Timer) HasTimePassed(deltaTime float64) bool {
	t.passedTime += deltaTime
	if t.passedTime >= t.interval {
		t.passedTime -= t.interval
		return true
	}
	return false
}
