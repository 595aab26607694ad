package main

import (
	"flag"
	"fmt"
	"math/rand"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/cwbudde/cheb3d"
	"github.com/cwbudde/cheb3d/tensor"
)

const modeInverse = "inverse"

var backends = cheb3d.Backends()

type benchResult struct {
	np      int
	backend cheb3d.Backend
	nsPerOp float64
}

func main() {
	var (
		sizeList = flag.String("sizes", "9,17,33,65", "comma-separated points per axis (odd, >= 5)")
		iters    = flag.Int("iters", 20, "benchmark iterations")
		warmup   = flag.Int("warmup", 3, "warmup iterations")
		mode     = flag.String("mode", "forward", "benchmark mode: forward, inverse, roundtrip, all")
		seed     = flag.Int64("seed", 1, "rng seed")
		stats    = flag.Bool("stats", false, "print plan cache statistics per backend")
	)
	flag.Parse()

	sizes := parseSizes(*sizeList)
	if len(sizes) == 0 {
		fmt.Println("no sizes specified")
		return
	}

	rnd := rand.New(rand.NewSource(*seed))

	fmt.Printf("features %v\n", cheb3d.DetectFeatures())
	fmt.Printf("iters=%d warmup=%d\n", *iters, *warmup)
	fmt.Printf("%8s  %10s  %8s  %14s\n", "grid", "mode", "backend", "ns/op")

	caches := make(map[cheb3d.Backend]*cheb3d.Cache)
	for _, be := range backends {
		caches[be] = cheb3d.NewCache(cheb3d.CacheOptions{Backend: be})
	}

	for _, np := range sizes {
		for _, runMode := range resolveModes(*mode) {
			results := benchmarkSize(rnd, caches, np, *iters, *warmup, runMode)
			if len(results) == 0 {
				continue
			}

			sort.Slice(results, func(i, j int) bool {
				return results[i].nsPerOp < results[j].nsPerOp
			})

			for _, res := range results {
				fmt.Printf("%5d^3  %10s  %8v  %14.1f\n", res.np, runMode, res.backend, res.nsPerOp)
			}
		}
	}

	if *stats {
		fmt.Println()

		for _, be := range backends {
			fmt.Printf("%8v  %v\n", be, caches[be].Stats())
		}
	}
}

func benchmarkSize(rnd *rand.Rand, caches map[cheb3d.Backend]*cheb3d.Cache, np, iters, warmup int, mode string) []benchResult {
	src, err := tensor.New(np, np, np)
	if err != nil {
		fmt.Printf("size %d: %v\n", np, err)
		return nil
	}

	for i := range src.Data() {
		src.Data()[i] = 2*rnd.Float64() - 1
	}

	work := src.Clone()

	results := make([]benchResult, 0, len(backends))

	for _, be := range backends {
		tr := cheb3d.NewTransformer(caches[be])

		if err := caches[be].Prepare(np); err != nil {
			fmt.Printf("size %d %v: %v\n", np, be, err)
			continue
		}

		ok := true

		for range warmup {
			if err := runMode(tr, work, src, mode); err != nil {
				ok = false
				break
			}
		}

		if !ok {
			continue
		}

		runtime.GC()

		start := time.Now()

		for range iters {
			if err := runMode(tr, work, src, mode); err != nil {
				ok = false
				break
			}
		}

		if !ok {
			continue
		}

		elapsed := time.Since(start)

		results = append(results, benchResult{
			np:      np,
			backend: be,
			nsPerOp: float64(elapsed.Nanoseconds()) / float64(iters),
		})
	}

	return results
}

// runMode resets work from src and transforms it in place.
func runMode(tr *cheb3d.Transformer, work, src *tensor.Dense, mode string) error {
	work.CopyFrom(src)

	switch mode {
	case modeInverse:
		return tr.Inverse(work)
	case "roundtrip":
		if err := tr.Forward(work); err != nil {
			return err
		}

		return tr.Inverse(work)
	default:
		return tr.Forward(work)
	}
}

func resolveModes(mode string) []string {
	switch mode {
	case "all":
		return []string{"forward", "inverse", "roundtrip"}
	case "inverse", "roundtrip", "forward":
		return []string{mode}
	default:
		return []string{"forward"}
	}
}

func parseSizes(list string) []int {
	parts := strings.Split(list, ",")

	out := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		var n int

		_, err := fmt.Sscanf(part, "%d", &n)
		if err != nil || n <= 0 {
			continue
		}

		out = append(out, n)
	}

	return out
}
