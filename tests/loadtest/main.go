package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net"
	"net/http"
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

const (
	baseURL      = "http://127.0.0.1:8199"
	numWorkers   = 50
	testDuration = 10 * time.Second
	numPosts     = 200
)

var commentBodies = []string{
	"Great read!",
	"Thanks for sharing.",
	"Interesting take.",
	"Not sure I agree with this.",
	"Bookmarked for later.",
}

var httpClient = &http.Client{
	Timeout: 5 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        200,
		MaxIdleConnsPerHost: 200,
		IdleConnTimeout:     30 * time.Second,
		DialContext: (&net.Dialer{
			Timeout:   2 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
	},
}

type result struct {
	endpoint string
	status   int
	latency  time.Duration
	err      bool
}

type stats struct {
	count     int64
	errors    int64
	latencies []time.Duration
}

var (
	postIDs   []string
	postIDsMu sync.Mutex
)

func main() {
	fmt.Println("=== Editors Hub Load Test ===")
	fmt.Printf("Workers: %d | Duration: %s | Posts: %d\n\n", numWorkers, testDuration, numPosts)

	// Wait for server
	fmt.Print("Waiting for server... ")
	for i := 0; i < 30; i++ {
		resp, err := httpClient.Get(baseURL + "/health")
		if err == nil {
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			break
		}
		if i == 29 {
			fmt.Println("FAILED: server not responding")
			return
		}
		time.Sleep(200 * time.Millisecond)
	}
	fmt.Println("OK")

	// Log in once so like/bookmark endpoints accept requests
	if !login() {
		fmt.Println("FAILED: login rejected")
		return
	}

	// Phase 1: Seed posts
	fmt.Println("\n--- Phase 1: Seeding posts (POST /posts/create) ---")
	seedPosts()

	// Phase 2: Mixed engagement load
	fmt.Println("\n--- Phase 2: Mixed load (views, likes, comments, reads) ---")
	runPhase(testDuration, func(rng *rand.Rand) result {
		r := rng.Float64()
		switch {
		case r < 0.40:
			return doView(rng)
		case r < 0.55:
			return doLike(rng)
		case r < 0.70:
			return doComment(rng)
		case r < 0.85:
			return doGetPosts()
		default:
			return doGetAnalytics(rng)
		}
	})

	// Phase 3: Read-heavy dashboard load
	fmt.Println("\n--- Phase 3: Read-heavy load (90% GET) ---")
	runPhase(testDuration, func(rng *rand.Rand) result {
		r := rng.Float64()
		switch {
		case r < 0.10:
			return doView(rng)
		case r < 0.50:
			return doGetAnalytics(rng)
		case r < 0.75:
			return doGetSummary()
		default:
			return doGetPosts()
		}
	})
}

func login() bool {
	body, _ := json.Marshal(map[string]string{
		"username": "loadtester",
		"email":    "loadtester@example.com",
		"password": "loadtest123",
	})
	resp, err := httpClient.Post(baseURL+"/auth/login", "application/json", bytes.NewReader(body))
	if err != nil {
		return false
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return resp.StatusCode == 200
}

func seedPosts() {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := 0; i < numPosts; i++ {
		body, _ := json.Marshal(map[string]string{
			"title":   fmt.Sprintf("Load test post %d", i+1),
			"content": fmt.Sprintf("Synthetic content for post %d, seed %d.", i+1, rng.Int63()),
			"tags":    "loadtest,synthetic",
		})
		resp, err := httpClient.Post(baseURL+"/posts/create", "application/json", bytes.NewReader(body))
		if err != nil {
			continue
		}
		var created struct {
			ID string `json:"id"`
		}
		json.NewDecoder(resp.Body).Decode(&created)
		resp.Body.Close()
		if created.ID != "" {
			postIDsMu.Lock()
			postIDs = append(postIDs, created.ID)
			postIDsMu.Unlock()
		}
	}
	fmt.Printf("Seeded %d posts\n", len(postIDs))
}

func randomPostID(rng *rand.Rand) string {
	postIDsMu.Lock()
	defer postIDsMu.Unlock()
	if len(postIDs) == 0 {
		return "missing"
	}
	return postIDs[rng.Intn(len(postIDs))]
}

func runPhase(duration time.Duration, workFn func(rng *rand.Rand) result) {
	results := make(chan result, 10000)
	var wg sync.WaitGroup
	var totalOps atomic.Int64
	stop := make(chan struct{})

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			for {
				select {
				case <-stop:
					return
				default:
					r := workFn(rng)
					totalOps.Add(1)
					results <- r
				}
			}
		}(rand.Int63() + int64(i))
	}

	allResults := make(map[string]*stats)
	done := make(chan struct{})
	go func() {
		for r := range results {
			s, ok := allResults[r.endpoint]
			if !ok {
				s = &stats{}
				allResults[r.endpoint] = s
			}
			s.count++
			if r.err {
				s.errors++
			}
			s.latencies = append(s.latencies, r.latency)
		}
		close(done)
	}()

	time.Sleep(duration)
	close(stop)
	wg.Wait()
	close(results)
	<-done

	printResults(allResults, duration)
}

func printResults(allResults map[string]*stats, duration time.Duration) {
	var totalOps int64
	var totalErrors int64

	endpoints := make([]string, 0, len(allResults))
	for ep := range allResults {
		endpoints = append(endpoints, ep)
	}
	sort.Strings(endpoints)

	fmt.Printf("\n  %-26s %8s %6s %10s %10s %10s %10s\n",
		"Endpoint", "Reqs", "Errs", "Avg", "P50", "P95", "P99")
	fmt.Println("  " + repeat("-", 92))

	for _, ep := range endpoints {
		s := allResults[ep]
		totalOps += s.count
		totalErrors += s.errors

		sort.Slice(s.latencies, func(i, j int) bool {
			return s.latencies[i] < s.latencies[j]
		})

		avg := avgDuration(s.latencies)
		p50 := percentile(s.latencies, 0.50)
		p95 := percentile(s.latencies, 0.95)
		p99 := percentile(s.latencies, 0.99)

		fmt.Printf("  %-26s %8d %6d %10s %10s %10s %10s\n",
			ep, s.count, s.errors, fmtDur(avg), fmtDur(p50), fmtDur(p95), fmtDur(p99))
	}

	rps := float64(totalOps) / duration.Seconds()
	fmt.Println("  " + repeat("-", 92))
	fmt.Printf("  Total: %d reqs | Errors: %d (%.1f%%) | RPS: %.0f\n",
		totalOps, totalErrors, float64(totalErrors)/float64(totalOps)*100, rps)
}

func doEventPost(name, path, id string, extra map[string]string) result {
	payload := map[string]string{"id": id}
	for k, v := range extra {
		payload[k] = v
	}
	data, _ := json.Marshal(payload)
	start := time.Now()
	resp, err := httpClient.Post(baseURL+path, "application/json", bytes.NewReader(data))
	lat := time.Since(start)
	if err != nil {
		return result{name, 0, lat, true}
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return result{name, resp.StatusCode, lat, resp.StatusCode >= 400}
}

func doView(rng *rand.Rand) result {
	return doEventPost("POST /posts/view", "/posts/view", randomPostID(rng), nil)
}

func doLike(rng *rand.Rand) result {
	return doEventPost("POST /posts/like", "/posts/like", randomPostID(rng), nil)
}

func doComment(rng *rand.Rand) result {
	return doEventPost("POST /posts/comment", "/posts/comment", randomPostID(rng),
		map[string]string{"content": commentBodies[rng.Intn(len(commentBodies))]})
}

func doGetPosts() result {
	start := time.Now()
	resp, err := httpClient.Get(baseURL + "/posts")
	lat := time.Since(start)
	if err != nil {
		return result{"GET /posts", 0, lat, true}
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return result{"GET /posts", resp.StatusCode, lat, resp.StatusCode != 200}
}

func doGetAnalytics(rng *rand.Rand) result {
	url := baseURL + "/analytics"
	if rng.Float64() < 0.3 {
		url += "?source=news"
	}
	start := time.Now()
	resp, err := httpClient.Get(url)
	lat := time.Since(start)
	if err != nil {
		return result{"GET /analytics", 0, lat, true}
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return result{"GET /analytics", resp.StatusCode, lat, resp.StatusCode != 200}
}

func doGetSummary() result {
	start := time.Now()
	resp, err := httpClient.Get(baseURL + "/analytics/summary")
	lat := time.Since(start)
	if err != nil {
		return result{"GET /analytics/summary", 0, lat, true}
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return result{"GET /analytics/summary", resp.StatusCode, lat, resp.StatusCode != 200}
}

func avgDuration(d []time.Duration) time.Duration {
	if len(d) == 0 {
		return 0
	}
	var sum time.Duration
	for _, v := range d {
		sum += v
	}
	return sum / time.Duration(len(d))
}

func percentile(d []time.Duration, p float64) time.Duration {
	if len(d) == 0 {
		return 0
	}
	idx := int(float64(len(d)) * p)
	if idx >= len(d) {
		idx = len(d) - 1
	}
	return d[idx]
}

func fmtDur(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	}
	return fmt.Sprintf("%.1fms", float64(d.Microseconds())/1000.0)
}

func repeat(s string, n int) string {
	out := ""
	for i := 0; i < n; i++ {
		out += s
	}
	return out
}
