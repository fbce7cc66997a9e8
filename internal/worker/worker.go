package worker

import (
	"context"
	"sync"
)

// Task 是 pool 執行的工作單位，ctx 為建立 pool 時傳入的 context
type Task func(ctx context.Context)

// Pool 固定數量 goroutine 的工作池
type Pool interface {
	// Submit 在 ctx 結束後回傳 false，工作不會被執行
	Submit(Task) bool
	Stop()
}

// NewPool creates a pool with n workers. n<=0 defaults to 1.
func NewPool(ctx context.Context, n int) Pool {
	if n <= 0 {
		n = 1
	}
	p := &pool{ctx: ctx, jobs: make(chan Task)}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				if job != nil {
					job(p.ctx)
				}
			}
		}()
	}
	return p
}

type pool struct {
	ctx  context.Context
	jobs chan Task
	wg   sync.WaitGroup
}

func (p *pool) Submit(t Task) bool {
	select {
	case <-p.ctx.Done():
		return false
	case p.jobs <- t:
		return true
	}
}

func (p *pool) Stop() {
	close(p.jobs)
	p.wg.Wait()
}

// Each 以 n 個 worker 對 items 逐一呼叫 fn，回傳與 items 對應的錯誤
// ctx 結束後尚未送出的項目記為 ctx.Err()
func Each[T any](ctx context.Context, n int, items []T, fn func(ctx context.Context, item T) error) []error {
	errs := make([]error, len(items))
	p := NewPool(ctx, n)
	for i := range items {
		i := i
		if !p.Submit(func(ctx context.Context) { errs[i] = fn(ctx, items[i]) }) {
			errs[i] = ctx.Err()
		}
	}
	p.Stop()
	return errs
}
