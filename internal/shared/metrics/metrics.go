package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

var (
	requestsTotal   atomic.Uint64
	requestsFailed  atomic.Uint64
	requestDuration = newHistogram([]float64{5, 10, 25, 50, 100, 250, 500, 1000, 5000})

	storeErrors = newCounterVec()
)

// ObserveRequest records one served HTTP request.
func ObserveRequest(status int, durationMs float64) {
	requestsTotal.Add(1)
	if status >= http.StatusInternalServerError {
		requestsFailed.Add(1)
	}
	if durationMs < 0 {
		durationMs = 0
	}
	requestDuration.Observe(durationMs)
}

// IncStoreError counts a failed store operation under op.
func IncStoreError(op string) {
	storeErrors.Inc(op)
}

// StoreErrors returns the failure count recorded for op.
func StoreErrors(op string) uint64 {
	return storeErrors.Get(op)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "http_requests_total", "Total HTTP requests served", requestsTotal.Load())
	writeCounter(&buf, "http_requests_failed_total", "HTTP requests answered with a 5xx status", requestsFailed.Load())
	writeHistogram(&buf, "http_request_duration_ms", "HTTP request duration in milliseconds", requestDuration.Snapshot())
	writeCounterVec(&buf, "store_errors_total", "Failed store operations", "op", storeErrors.Snapshot())
	return buf.String()
}

type counterVec struct {
	mu     sync.Mutex
	values map[string]uint64
}

func newCounterVec() *counterVec {
	return &counterVec{values: make(map[string]uint64)}
}

func (v *counterVec) Inc(label string) {
	v.mu.Lock()
	v.values[label]++
	v.mu.Unlock()
}

func (v *counterVec) Get(label string) uint64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.values[label]
}

func (v *counterVec) Snapshot() map[string]uint64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make(map[string]uint64, len(v.values))
	for k, n := range v.values {
		out[k] = n
	}
	return out
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

// Observe counts value into the first bucket whose bound it does not exceed.
func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
			return
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeCounterVec(buf *bytes.Buffer, name, help, label string, values map[string]uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(buf, "%s{%s=%q} %d\n", name, label, k, values[k])
	}
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
