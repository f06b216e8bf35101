// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

// Package diagnostics serves an optional, off-by-default HTTP dashboard
// charting a running emulation's per-frame CPU-cycle budget, DMA-clock
// debits and WSYNC stalls, for performance work during development. It is
// never imported by the core engine packages: a composer that wants to
// report to it posts one FrameStat per frame to a buffered channel, and
// everything past that point — aggregation, chart rendering, HTTP
// serving — runs on a background goroutine, off the frame-step hot path.
package diagnostics

import (
	"context"
	"net/http"
	"strconv"
	"sync"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/statsview"
	"github.com/rs/cors"
)

// FrameStat is one frame's worth of timing data, posted by a composer.
type FrameStat struct {
	Frame       int
	CPUCycles   int
	DMACycles   int
	WSYNCCycles int
}

// historyLimit bounds how many frames the chart keeps: enough to see a
// few seconds of NTSC frames without the page growing unbounded over a
// long debugging session.
const historyLimit = 600

// Server aggregates posted FrameStats and serves them as a line chart
// alongside statsview's runtime (goroutine/heap/GC) dashboard.
type Server struct {
	addr   string
	stats  chan FrameStat
	viewer *statsview.Viewer

	mu      sync.Mutex
	history []FrameStat

	httpServer *http.Server
	done       chan struct{}
}

// New builds a Server that will listen on addr once Start is called.
// Posting to a Server that is never started is harmless: the channel
// simply fills and subsequent posts are dropped.
func New(addr string) *Server {
	return &Server{
		addr:   addr,
		stats:  make(chan FrameStat, 64),
		viewer: statsview.New(statsview.WithAddr(addr)),
		done:   make(chan struct{}),
	}
}

// Pending reports how many posted FrameStats are buffered but not yet
// picked up by the drain goroutine started by Start. Exists so a composer
// embedding test can confirm Post reached the server without having to
// stand up the HTTP dashboard.
func (s *Server) Pending() int {
	return len(s.stats)
}

// Post submits a frame's stats for charting. Non-blocking: a composer
// calling this from its frame loop never stalls emulation waiting for
// the diagnostics goroutine to drain the channel, it just drops the
// sample if the buffer is momentarily full.
func (s *Server) Post(stat FrameStat) {
	select {
	case s.stats <- stat:
	default:
	}
}

// Start begins draining posted stats in the background and serves both
// statsview's runtime dashboard and this package's frame-stat chart on
// addr. Start returns once the listener is up; serving continues in a
// background goroutine until Stop is called.
func (s *Server) Start() error {
	go s.drain()
	go s.viewer.Start()

	mux := http.NewServeMux()
	mux.HandleFunc("/frames", s.serveFrameChart)

	handler := cors.New(cors.Options{AllowedOrigins: []string{"*"}}).Handler(mux)

	s.httpServer = &http.Server{Addr: s.addr, Handler: handler}
	go func() {
		_ = s.httpServer.ListenAndServe()
	}()
	return nil
}

// Stop shuts down the HTTP server and the background drain goroutine.
func (s *Server) Stop(ctx context.Context) error {
	close(s.done)
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) drain() {
	for {
		select {
		case stat := <-s.stats:
			s.mu.Lock()
			s.history = append(s.history, stat)
			if len(s.history) > historyLimit {
				s.history = s.history[len(s.history)-historyLimit:]
			}
			s.mu.Unlock()
		case <-s.done:
			return
		}
	}
}

func (s *Server) serveFrameChart(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	snapshot := make([]FrameStat, len(s.history))
	copy(snapshot, s.history)
	s.mu.Unlock()

	labels := make([]string, len(snapshot))
	cpu := make([]opts.LineData, len(snapshot))
	dma := make([]opts.LineData, len(snapshot))
	wsync := make([]opts.LineData, len(snapshot))
	for i, stat := range snapshot {
		labels[i] = strconv.Itoa(stat.Frame)
		cpu[i] = opts.LineData{Value: stat.CPUCycles}
		dma[i] = opts.LineData{Value: stat.DMACycles}
		wsync[i] = opts.LineData{Value: stat.WSYNCCycles}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Per-frame cycle accounting"}),
	)
	line.SetXAxis(labels).
		AddSeries("CPU cycles", cpu).
		AddSeries("DMA cycles", dma).
		AddSeries("WSYNC stall cycles", wsync)

	_ = line.Render(w)
}
