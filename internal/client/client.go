// Package client 是診所 API 的 Go 客戶端：探測 API 埠、保存購物車，
// API 無法使用時將寫入暫存於本機並可稍後同步
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"healthcare-clinic/internal/chatbot"
	"healthcare-clinic/internal/dto"
	"healthcare-clinic/internal/model"
)

const (
	DefaultHost         = "localhost"
	DefaultProbeTimeout = 1200 * time.Millisecond
)

// DefaultPorts 與伺服器的埠號遞補順序一致
var DefaultPorts = []int{3000, 3001, 3002}

// ErrAPIUnreachable 所有候選埠的健康檢查都失敗
var ErrAPIUnreachable = errors.New("API not reachable")

// StatusError 是 API 回應非 2xx 的錯誤
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: status %d", e.Status)
	}
	return fmt.Sprintf("api: status %d: %s", e.Status, e.Message)
}

type Client struct {
	storage      *Storage
	http         *http.Client
	host         string
	ports        []int
	probeTimeout time.Duration
	token        string
	bot          *chatbot.Responder
	now          func() time.Time

	// queueMu 保護三個離線暫存列表的讀改寫
	queueMu sync.Mutex

	mu      sync.Mutex
	baseURL string
	catalog []model.Medicine
	cart    []CartItem
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithHost 設定探測的主機名稱，預設 localhost
func WithHost(host string) Option {
	return func(c *Client) { c.host = host }
}

func WithPorts(ports ...int) Option {
	return func(c *Client) { c.ports = ports }
}

func WithProbeTimeout(d time.Duration) Option {
	return func(c *Client) { c.probeTimeout = d }
}

// WithBaseURL 直接指定 API 位址並略過探測
func WithBaseURL(base string) Option {
	return func(c *Client) { c.baseURL = base }
}

// WithToken 讓管理員相關請求帶上 bearer token
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// New 從 storage 還原 api_base 與購物車
func New(storage *Storage, opts ...Option) *Client {
	c := &Client{
		storage:      storage,
		http:         &http.Client{},
		host:         DefaultHost,
		ports:        DefaultPorts,
		probeTimeout: DefaultProbeTimeout,
		bot:          chatbot.New(),
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.baseURL == "" {
		var cached string
		if storage.Get(KeyAPIBase, &cached) {
			c.baseURL = cached
		}
	}
	if !storage.Get(KeyCart, &c.cart) {
		c.cart = nil
	}
	return c
}

// BaseURL 回傳快取的 API 位址，沒有時依序探測候選埠
func (c *Client) BaseURL(ctx context.Context) (string, error) {
	c.mu.Lock()
	base := c.baseURL
	c.mu.Unlock()
	if base != "" {
		return base, nil
	}

	for _, port := range c.ports {
		candidate := "http://" + net.JoinHostPort(c.host, strconv.Itoa(port))
		if !c.probe(ctx, candidate) {
			continue
		}
		c.mu.Lock()
		c.baseURL = candidate
		c.mu.Unlock()
		if err := c.storage.Set(KeyAPIBase, candidate); err != nil {
			return "", err
		}
		return candidate, nil
	}
	return "", ErrAPIUnreachable
}

// ResetBaseURL 清除快取，下次請求重新探測
func (c *Client) ResetBaseURL() error {
	c.mu.Lock()
	c.baseURL = ""
	c.mu.Unlock()
	return c.storage.Delete(KeyAPIBase)
}

func (c *Client) probe(ctx context.Context, base string) bool {
	ctx, cancel := context.WithTimeout(ctx, c.probeTimeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"/api/health", nil)
	if err != nil {
		return false
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

// do 送出 JSON 請求，非 2xx 轉成 *StatusError
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	base, err := c.BaseURL(ctx)
	if err != nil {
		return err
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s: %w", path, err)
		}
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, base+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var httpErr dto.HTTPError
		_ = json.NewDecoder(resp.Body).Decode(&httpErr)
		return &StatusError{Status: resp.StatusCode, Message: httpErr.Message}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
