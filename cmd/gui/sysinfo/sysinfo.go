// Package sysinfo polls host statistics in the background so the System
// provider can answer from a cached snapshot.
package sysinfo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gigurra/guiinfo/cmd/gui/infoprov"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

// Collector gathers one snapshot. It may return a partial snapshot
// together with an error.
type Collector func(ctx context.Context, diskPath string) (infoprov.SystemSnapshot, error)

// Collect reads memory, cpu, disk and host values through gopsutil. The
// snapshot is valid when at least one source answered.
func Collect(ctx context.Context, diskPath string) (infoprov.SystemSnapshot, error) {
	var s infoprov.SystemSnapshot
	var errs []error

	if vm, err := mem.VirtualMemoryWithContext(ctx); err != nil {
		errs = append(errs, fmt.Errorf("memory: %w", err))
	} else {
		s.MemTotal, s.MemUsed = vm.Total, vm.Used
		s.MemFree = vm.Available
		s.Valid = true
	}

	if pct, err := cpu.PercentWithContext(ctx, 0, false); err != nil {
		errs = append(errs, fmt.Errorf("cpu: %w", err))
	} else if len(pct) > 0 {
		s.CPUPercent = pct[0]
		s.Valid = true
	}
	if n, err := cpu.CountsWithContext(ctx, true); err != nil {
		errs = append(errs, fmt.Errorf("cpu count: %w", err))
	} else {
		s.CPUCount = n
	}

	if du, err := disk.UsageWithContext(ctx, diskPath); err != nil {
		errs = append(errs, fmt.Errorf("disk %s: %w", diskPath, err))
	} else {
		s.DiskTotal, s.DiskFree, s.DiskUsed = du.Total, du.Free, du.Used
		s.Valid = true
	}

	if info, err := host.InfoWithContext(ctx); err != nil {
		errs = append(errs, fmt.Errorf("host: %w", err))
	} else {
		s.Hostname = info.Hostname
		s.Uptime = time.Duration(info.Uptime) * time.Second
		s.Valid = true
	}

	return s, errors.Join(errs...)
}

type Option func(*Poller)

func WithCollector(c Collector) Option { return func(p *Poller) { p.collect = c } }

func WithClock(now func() time.Time) Option { return func(p *Poller) { p.now = now } }

// Poller implements infoprov.SystemStats and infoprov.IdleTracker.
type Poller struct {
	interval time.Duration
	diskPath string
	collect  Collector
	now      func() time.Time

	mu        sync.Mutex
	snap      infoprov.SystemSnapshot
	lastInput time.Time
}

func New(interval time.Duration, diskPath string, opts ...Option) *Poller {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	if diskPath == "" {
		diskPath = "/"
	}
	p := &Poller{interval: interval, diskPath: diskPath, collect: Collect, now: time.Now}
	for _, opt := range opts {
		opt(p)
	}
	p.lastInput = p.now()
	return p
}

// Poll runs one collection and swaps the result in. A partial snapshot
// still replaces the old one.
func (p *Poller) Poll(ctx context.Context) error {
	s, err := p.collect(ctx, p.diskPath)
	if s.Valid {
		p.mu.Lock()
		p.snap = s
		p.mu.Unlock()
	}
	return err
}

// Start polls immediately and then every interval until ctx is done.
func (p *Poller) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()
		for {
			if err := p.Poll(ctx); err != nil && ctx.Err() == nil {
				slog.Debug("sysinfo: poll incomplete", "error", err)
			}
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
}

func (p *Poller) Snapshot() infoprov.SystemSnapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snap
}

// Touch records user input, resetting the idle time.
func (p *Poller) Touch() {
	p.mu.Lock()
	p.lastInput = p.now()
	p.mu.Unlock()
}

func (p *Poller) IdleTime() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.now().Sub(p.lastInput)
}

var (
	_ infoprov.SystemStats = (*Poller)(nil)
	_ infoprov.IdleTracker = (*Poller)(nil)
)
