package client

import (
	"context"

	"healthcare-clinic/internal/worker"
)

// SyncWorkers 同步時同時送出的請求數
const SyncWorkers = 4

// SyncReport 記錄本次送出成功的筆數與仍留在本機的筆數
type SyncReport struct {
	Consults     int
	Appointments int
	Payments     int
	Remaining    int
}

func (c *Client) enqueue(fn func(s *Storage) error) error {
	c.queueMu.Lock()
	defer c.queueMu.Unlock()
	return fn(c.storage)
}

// Sync 將離線暫存的紀錄重送到 API，成功的項目從本機移除
// 伺服器會重新指定 id、日期與交易編號
func (c *Client) Sync(ctx context.Context) (SyncReport, error) {
	var report SyncReport
	if _, err := c.BaseURL(ctx); err != nil {
		return report, err
	}

	c.queueMu.Lock()
	defer c.queueMu.Unlock()

	sent, left, err := replay(ctx, c.storage, KeyConsults, func(ctx context.Context, q QueuedConsult) error {
		return c.do(ctx, "POST", "/api/consults", q.CreateConsultRequest, nil)
	})
	report.Consults, report.Remaining = sent, report.Remaining+left
	if err != nil {
		return report, err
	}

	sent, left, err = replay(ctx, c.storage, KeyAppointments, func(ctx context.Context, q QueuedAppointment) error {
		return c.do(ctx, "POST", "/api/appointments", q.CreateAppointmentRequest, nil)
	})
	report.Appointments, report.Remaining = sent, report.Remaining+left
	if err != nil {
		return report, err
	}

	sent, left, err = replay(ctx, c.storage, KeyPayments, func(ctx context.Context, q QueuedPayment) error {
		return c.do(ctx, "POST", "/api/payments", q.CreatePaymentRequest, nil)
	})
	report.Payments, report.Remaining = sent, report.Remaining+left
	return report, err
}

// replay 送出 key 底下的每一筆，失敗的依原順序寫回
func replay[T any](ctx context.Context, s *Storage, key string, send func(context.Context, T) error) (sent, left int, err error) {
	var queued []T
	if !s.Get(key, &queued) || len(queued) == 0 {
		return 0, 0, nil
	}
	errs := worker.Each(ctx, SyncWorkers, queued, send)
	remaining := make([]T, 0, len(queued))
	for i, e := range errs {
		if e != nil {
			remaining = append(remaining, queued[i])
		}
	}
	if len(remaining) == 0 {
		err = s.Delete(key)
	} else {
		err = s.Set(key, remaining)
	}
	return len(queued) - len(remaining), len(remaining), err
}
