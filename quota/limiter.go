package quota

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"ai-marketing/config"
)

// ErrQuotaExhausted 는 일일 한도가 소진되어 원격 호출을 건너뛰어야 할 때 사용한다.
var ErrQuotaExhausted = errors.New("quota: daily generation limit reached")

// Limiter 는 원격 LLM 생성 호출에 대한 분당/일일 한도를 관리한다.
// 인메모리로 동작하며 프로세스가 재시작되면 카운터가 초기화된다.
type Limiter struct {
	mu sync.Mutex

	dailyLimit int
	usedToday  int
	dayKey     string

	// perMinute 가 nil 이면 분당 제한이 없다.
	perMinute *rate.Limiter

	now func() time.Time
}

// NewLimiter 는 generation_quota 설정으로 Limiter 를 만든다.
// 0 이하의 값은 해당 방향의 제한을 두지 않는다.
func NewLimiter(q config.QuotaConfig) *Limiter {
	l := &Limiter{now: time.Now}
	if q.RequestsPerMinute > 0 {
		l.perMinute = rate.NewLimiter(rate.Every(time.Minute/time.Duration(q.RequestsPerMinute)), 1)
	}
	if q.RequestsPerDay > 0 {
		l.dailyLimit = q.RequestsPerDay
	}
	return l
}

// WaitAndReserve 는 원격 호출 직전에 한도를 적용한다.
//   - 일일 한도 초과: (false, nil). 호출자는 원격 호출을 건너뛴다.
//   - 대기 중 컨텍스트 취소 또는 마감 초과: (false, err).
func (l *Limiter) WaitAndReserve(ctx context.Context) (bool, error) {
	if l == nil {
		return true, nil
	}
	if l.exhausted() {
		return false, nil
	}
	if l.perMinute != nil {
		if err := l.perMinute.Wait(ctx); err != nil {
			return false, err
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.rollDay()
	if l.dailyLimit > 0 && l.usedToday >= l.dailyLimit {
		return false, nil
	}
	l.usedToday++
	return true, nil
}

func (l *Limiter) exhausted() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.rollDay()
	return l.dailyLimit > 0 && l.usedToday >= l.dailyLimit
}

// rollDay 는 UTC 날짜가 바뀌면 일일 카운터를 초기화한다. mu 를 잡은 상태에서 호출한다.
func (l *Limiter) rollDay() {
	key := l.now().UTC().Format("2006-01-02")
	if l.dayKey != key {
		l.dayKey = key
		l.usedToday = 0
	}
}

// Used 는 오늘 예약된 호출 수를 반환한다.
func (l *Limiter) Used() int {
	if l == nil {
		return 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.usedToday
}
