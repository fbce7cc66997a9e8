package main

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"syscall"
)

var netListen = net.Listen

// listen 依序嘗試 ports，只有「位址已被使用」會換下一個埠
func listen(host string, ports []int) (net.Listener, error) {
	var lastErr error
	for _, port := range ports {
		addr := net.JoinHostPort(host, strconv.Itoa(port))
		l, err := netListen("tcp", addr)
		if err == nil {
			return l, nil
		}
		if !errors.Is(err, syscall.EADDRINUSE) {
			return nil, fmt.Errorf("監聽 %s 失敗: %w", addr, err)
		}
		lastErr = err
	}
	return nil, fmt.Errorf("埠 %v 皆已被使用: %w", ports, lastErr)
}
