package bluedart

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"service/internal/entities"
	"service/pkg/breaker"
	"service/pkg/breaker/gobreaker_adapter"
	retrierconfig "service/pkg/retrier"
	"service/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "bluedart"
	tokenKey    = "bluedart:jwt_token"
)

const (
	loginPath    = "/v1/login"
	waybillPath  = "/v1/waybill/generate"
	trackingPath = "/v1/tracking/"
	cancelPath   = "/v1/waybill/cancel"
)

const (
	initialInterval = 200 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 5 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

const (
	breakerMaxRequests         = 3
	breakerInterval            = 60 * time.Second
	breakerTimeout             = 30 * time.Second
	breakerConsecutiveFailures = 5
)

// Gateway инкапсулирует протокол BlueDart: аутентификацию с кешированием
// токена, генерацию накладной, запрос трекинга и отмену. Наружу отдает
// только доменные типы и типизированные ошибки перевозчика.
type Gateway struct {
	cfg     Config
	client  httpDoer
	tokens  tokenStore
	breaker circuitBreaker
	retrier retrier
}

func New(cfg Config, client httpDoer, tokens tokenStore) *Gateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryableCarrierError,
	}

	breakerConfig := breaker.Config{
		Name:                serviceName,
		MaxRequests:         breakerMaxRequests,
		Interval:            breakerInterval,
		Timeout:             breakerTimeout,
		ConsecutiveFailures: breakerConsecutiveFailures,
	}

	return &Gateway{
		cfg:     cfg,
		client:  client,
		tokens:  tokens,
		breaker: gobreaker_adapter.New(breakerConfig),
		retrier: backoff_adapter.New(retryConfig),
	}
}

func (g *Gateway) CreateWaybill(ctx context.Context, req entities.WaybillRequest) (*entities.Waybill, error) {
	token, err := g.authenticate(ctx)
	if err != nil {
		return nil, err
	}

	payload := toWaybillRequest(g.cfg.Shipper, req)

	var waybill *entities.Waybill
	err = g.executeWithMetrics(ctx, "CreateWaybill", func(ctx context.Context) error {
		body, statusCode, err := g.doJSON(ctx, http.MethodPost, waybillPath, token, payload)
		if err != nil {
			return err
		}

		var resp waybillResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return &entities.CarrierError{Message: fmt.Sprintf("malformed waybill response: %v", err)}
		}

		// HTTP 200 с IsError=true — все равно отказ: решает флаг
		// перевозчика, а не транспортный статус.
		if err := interpretResponse(statusCode, resp.IsError, waybillErrorMessage(&resp)); err != nil {
			return err
		}

		if resp.AWBNo == "" {
			return &entities.CarrierError{Message: "carrier returned empty AWB number"}
		}

		waybill = &entities.Waybill{
			AWBNo:      resp.AWBNo,
			TrackingID: resp.TokenNumber,
			Raw:        body,
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("gateway bluedart, create waybill: %w", err)
	}

	return waybill, nil
}

func (g *Gateway) QueryTracking(ctx context.Context, awbNo string) (*entities.TrackingSnapshot, error) {
	token, err := g.authenticate(ctx)
	if err != nil {
		return nil, err
	}

	var snapshot *entities.TrackingSnapshot
	err = g.executeWithMetrics(ctx, "QueryTracking", func(ctx context.Context) error {
		body, statusCode, err := g.doJSON(ctx, http.MethodGet, trackingPath+awbNo, token, nil)
		if err != nil {
			return err
		}

		var resp trackingResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return &entities.CarrierError{Message: fmt.Sprintf("malformed tracking response: %v", err)}
		}

		if err := interpretResponse(statusCode, resp.IsError, resp.ErrorMessage); err != nil {
			return err
		}

		snapshot = toTrackingSnapshot(&resp, body)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("gateway bluedart, query tracking %s: %w", awbNo, err)
	}

	return snapshot, nil
}

func (g *Gateway) CancelWaybill(ctx context.Context, awbNo string) error {
	token, err := g.authenticate(ctx)
	if err != nil {
		return err
	}

	err = g.executeWithMetrics(ctx, "CancelWaybill", func(ctx context.Context) error {
		body, statusCode, err := g.doJSON(ctx, http.MethodPost, cancelPath, token, cancelRequest{AWBNo: awbNo})
		if err != nil {
			return err
		}

		var resp cancelResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return &entities.CarrierError{Message: fmt.Sprintf("malformed cancel response: %v", err)}
		}

		return interpretResponse(statusCode, resp.IsError, resp.ErrorMessage)
	})
	if err != nil {
		return fmt.Errorf("gateway bluedart, cancel waybill %s: %w", awbNo, err)
	}

	return nil
}

// authenticate возвращает кешированный токен, пока тот не истек,
// иначе выполняет логин и кеширует результат с TTL из конфига.
func (g *Gateway) authenticate(ctx context.Context) (string, error) {
	if cached, ok, err := g.tokens.Get(ctx, tokenKey); err == nil && ok {
		return string(cached), nil
	}

	payload := loginRequest{
		LicenseKey: g.cfg.LicenseKey,
		LoginID:    g.cfg.LoginID,
	}

	var token string
	err := g.executeWithMetrics(ctx, "Login", func(ctx context.Context) error {
		body, statusCode, err := g.doJSON(ctx, http.MethodPost, loginPath, "", payload)
		if err != nil {
			return err
		}

		var resp loginResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return &entities.CarrierError{Message: fmt.Sprintf("malformed login response: %v", err)}
		}

		if statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden || resp.IsError {
			return &entities.CarrierAuthError{Message: nonEmpty(resp.ErrorMessage, "carrier rejected credentials")}
		}
		if err := interpretResponse(statusCode, false, ""); err != nil {
			return err
		}
		if resp.JWTToken == "" {
			return &entities.CarrierAuthError{Message: "carrier returned empty token"}
		}

		token = resp.JWTToken
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("gateway bluedart, login: %w", err)
	}

	// Ошибка кеша не мешает использовать свежий токен: просто на
	// следующем вызове будет повторный логин.
	_ = g.tokens.Set(ctx, tokenKey, []byte(token), g.cfg.TokenTTL)

	return token, nil
}

func (g *Gateway) doJSON(ctx context.Context, method, path, token string, payload interface{}) ([]byte, int, error) {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, 0, &entities.CarrierError{Message: fmt.Sprintf("encode request: %v", err)}
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.cfg.BaseURL+path, body)
	if err != nil {
		return nil, 0, &entities.CarrierError{Message: fmt.Sprintf("build request: %v", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("JWTToken", token)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, 0, &entities.CarrierUnavailableError{Message: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, &entities.CarrierUnavailableError{Message: err.Error()}
	}

	return raw, resp.StatusCode, nil
}

// executeWithMetrics оборачивает вызов перевозчика ретраером и circuit
// breaker'ом и снимает метрики длительности и повторов.
func (g *Gateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return g.breaker.Execute(func() error {
			return fn(ctx)
		})
	})
	if errors.Is(err, breaker.ErrOpen) {
		err = &entities.CarrierUnavailableError{Message: "carrier circuit breaker is open"}
	}

	outcome := errOutcome(err)
	CarrierRequestDuration.WithLabelValues(serviceName, method, outcome).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		CarrierRetriesTotal.WithLabelValues(serviceName, method, outcome).Inc()
	}

	return err
}

// interpretResponse сводит транспортный статус и флаг ошибки перевозчика
// к типизированной доменной ошибке.
func interpretResponse(statusCode int, isError bool, message string) error {
	switch {
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		return &entities.CarrierAuthError{Message: nonEmpty(message, fmt.Sprintf("carrier returned HTTP %d", statusCode))}
	case statusCode == http.StatusTooManyRequests || statusCode >= http.StatusInternalServerError:
		return &entities.CarrierUnavailableError{Message: nonEmpty(message, fmt.Sprintf("carrier returned HTTP %d", statusCode))}
	case isError:
		return classifyCarrierMessage(message)
	case statusCode < http.StatusOK || statusCode >= http.StatusMultipleChoices:
		return &entities.CarrierError{Message: nonEmpty(message, fmt.Sprintf("carrier returned HTTP %d", statusCode))}
	default:
		return nil
	}
}

// classifyCarrierMessage — сопоставление текста ошибки перевозчика с
// тегированными вариантами. Подстрочный поиск живет только здесь.
func classifyCarrierMessage(message string) error {
	lower := strings.ToLower(message)

	switch {
	case strings.Contains(lower, "availablebalance"),
		strings.Contains(lower, "availableamountforbooking"),
		strings.Contains(lower, "insufficient balance"):
		return &entities.CarrierBalanceError{Message: message}
	case strings.Contains(lower, "unauthorized"),
		strings.Contains(lower, "credential"),
		strings.Contains(lower, "licence key"),
		strings.Contains(lower, "license key"),
		strings.Contains(lower, "token expired"),
		strings.Contains(lower, "invalid token"):
		return &entities.CarrierAuthError{Message: message}
	case strings.Contains(lower, "econnrefused"),
		strings.Contains(lower, "etimedout"),
		strings.Contains(lower, "timeout"),
		strings.Contains(lower, "connection reset"),
		strings.Contains(lower, "temporarily unavailable"),
		strings.Contains(lower, "service unavailable"):
		return &entities.CarrierUnavailableError{Message: message}
	default:
		return &entities.CarrierError{Message: nonEmpty(message, "unknown carrier failure")}
	}
}

func isRetryableCarrierError(err error) bool {
	if errors.Is(err, breaker.ErrOpen) {
		return false
	}
	var unavailable *entities.CarrierUnavailableError
	return errors.As(err, &unavailable)
}

func waybillErrorMessage(resp *waybillResponse) string {
	if resp.ErrorMessage != "" {
		return resp.ErrorMessage
	}
	parts := make([]string, 0, len(resp.Status))
	for _, s := range resp.Status {
		if s.StatusInformation != "" {
			parts = append(parts, s.StatusInformation)
		}
	}
	return strings.Join(parts, "; ")
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
