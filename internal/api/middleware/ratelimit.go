package middleware

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-BoxBooking/internal/api/handlers"
)

const (
	msgRateLimited        = "слишком много запросов, попробуйте позже"
	msgRateLimiterFailure = "сервис временно недоступен"
)

// Counter счетчик запросов в окне: возвращает номер запроса в текущем окне
type Counter interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

var fixedWindowScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

// RedisCounter счетчик фиксированного окна в Redis, общий для всех экземпляров сервиса
type RedisCounter struct {
	rdb redis.Scripter
}

// NewRedisCounter создает счетчик поверх клиента Redis
func NewRedisCounter(rdb redis.Scripter) *RedisCounter {
	return &RedisCounter{rdb: rdb}
}

// Incr увеличивает счетчик ключа, первое увеличение выставляет срок жизни окна
func (c *RedisCounter) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	ms := window.Milliseconds()
	if ms <= 0 {
		ms = time.Minute.Milliseconds()
	}

	res, err := fixedWindowScript.Run(ctx, c.rdb, []string{key}, ms).Result()
	if err != nil {
		return 0, err
	}

	switch v := res.(type) {
	case int64:
		return v, nil
	case string:
		return strconv.ParseInt(v, 10, 64)
	default:
		return 0, fmt.Errorf("unexpected redis script result type %T", res)
	}
}

// RateLimiter ограничение частоты запросов по адресу клиента
type RateLimiter struct {
	counter    Counter
	limit      int
	window     time.Duration
	prefix     string
	failOpen   bool
	trustProxy bool
	logger     Logger
}

// NewRateLimiter создает ограничитель: не больше limit запросов за window.
// failOpen пропускает запросы, когда счетчик недоступен.
// trustProxy берет адрес клиента из X-Forwarded-For, включать только за своим прокси.
func NewRateLimiter(
	counter Counter,
	limit int,
	window time.Duration,
	prefix string,
	failOpen bool,
	trustProxy bool,
	logger Logger,
) *RateLimiter {
	if limit <= 0 {
		limit = 60
	}
	if window <= 0 {
		window = time.Minute
	}
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = "rl"
	}
	return &RateLimiter{
		counter:    counter,
		limit:      limit,
		window:     window,
		prefix:     prefix,
		failOpen:   failOpen,
		trustProxy: trustProxy,
		logger:     logger,
	}
}

// Middleware HTTP middleware ограничителя
func (rl *RateLimiter) Middleware() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			client := rl.clientKey(r)

			count, err := rl.counter.Incr(r.Context(), rl.prefix+":"+client, rl.window)
			if err != nil {
				rl.logger.Warn("RateLimiter: counter error for client=%s: %v", client, err)
				if rl.failOpen {
					next.ServeHTTP(w, r)
					return
				}
				handlers.RespondError(w, http.StatusServiceUnavailable, msgRateLimiterFailure)
				return
			}

			if count > int64(rl.limit) {
				rl.logger.Warn("RateLimiter: limit exceeded for client=%s %s %s: count=%d",
					client, r.Method, r.URL.Path, count)
				w.Header().Set("Retry-After", strconv.Itoa(int(rl.window.Seconds())))
				handlers.RespondError(w, http.StatusTooManyRequests, msgRateLimited)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientKey адрес клиента: адрес соединения,
// за доверенным прокси первый адрес X-Forwarded-For
func (rl *RateLimiter) clientKey(r *http.Request) string {
	if rl.trustProxy {
		if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
			parts := strings.Split(forwarded, ",")
			if ip := strings.TrimSpace(parts[0]); ip != "" {
				return ip
			}
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil {
		return host
	}
	return r.RemoteAddr
}
