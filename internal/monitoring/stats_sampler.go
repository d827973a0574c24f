package monitoring

import (
	"encoding/json"
	"sync"
	"time"

	ws "github.com/bizlingo/bizlingo-be/internal/websocket"
	"github.com/rs/zerolog/log"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"
)

// highCPUThreshold is the CPU percentage above which a warning is logged.
const highCPUThreshold = 90.0

// highCPUAlertCooldown limits how often the high-CPU warning repeats.
const highCPUAlertCooldown = 10 * time.Minute

// SystemStats is a point-in-time snapshot of host resource usage.
type SystemStats struct {
	CPUPercent    float64   `json:"cpuPercent"`
	MemoryPercent float64   `json:"memoryPercent"`
	MemoryUsedMB  uint64    `json:"memoryUsedMB"`
	DiskPercent   float64   `json:"diskPercent"`
	SampledAt     time.Time `json:"sampledAt"`
}

// StatsSampler periodically samples host stats, keeps the latest snapshot
// for the status endpoint and pushes updates to websocket clients.
type StatsSampler struct {
	hub    *ws.Hub
	ticker *time.Ticker
	done   chan bool

	mu           sync.RWMutex
	latest       SystemStats
	lastCPUAlert time.Time
}

// NewStatsSampler creates a new StatsSampler.
func NewStatsSampler(hub *ws.Hub) *StatsSampler {
	return &StatsSampler{
		hub:  hub,
		done: make(chan bool),
	}
}

// Run starts the periodic sampling loop.
func (s *StatsSampler) Run() {
	log.Info().Msg("Starting background stats sampler...")
	s.ticker = time.NewTicker(30 * time.Second)
	defer s.ticker.Stop()

	// Sample once immediately on start
	s.sample()

	for {
		select {
		case <-s.done:
			log.Info().Msg("Stopping background stats sampler.")
			return
		case <-s.ticker.C:
			s.sample()
		}
	}
}

// Stop halts the sampling loop.
func (s *StatsSampler) Stop() {
	s.done <- true
}

// Latest returns the most recent snapshot.
func (s *StatsSampler) Latest() SystemStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest
}

func (s *StatsSampler) sample() {
	stats := SystemStats{SampledAt: time.Now().UTC()}

	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		stats.CPUPercent = percents[0]
	} else if err != nil {
		log.Warn().Err(err).Msg("StatsSampler: failed to read CPU usage")
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		stats.MemoryPercent = vm.UsedPercent
		stats.MemoryUsedMB = vm.Used / 1024 / 1024
	} else {
		log.Warn().Err(err).Msg("StatsSampler: failed to read memory usage")
	}

	if du, err := disk.Usage("/"); err == nil {
		stats.DiskPercent = du.UsedPercent
	} else {
		log.Warn().Err(err).Msg("StatsSampler: failed to read disk usage")
	}

	s.mu.Lock()
	s.latest = stats
	alert := stats.CPUPercent >= highCPUThreshold && time.Since(s.lastCPUAlert) > highCPUAlertCooldown
	if alert {
		s.lastCPUAlert = time.Now()
	}
	s.mu.Unlock()

	if alert {
		log.Warn().Float64("cpu_percent", stats.CPUPercent).Msg("Host CPU usage is high")
	}

	if s.hub != nil {
		if msg, err := json.Marshal(ws.Message{Action: "system_stats", Payload: stats}); err == nil {
			s.hub.Broadcast <- msg
		}
	}
}
