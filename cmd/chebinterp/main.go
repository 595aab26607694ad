// Command chebinterp interpolates a tensor sampled on a uniform grid onto a
// Chebyshev grid and reports how well the spectral interpolant reproduces
// the input.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/cwbudde/cheb3d"
	"github.com/cwbudde/cheb3d/tensor"
)

func main() {
	var (
		in       = flag.String("in", "", "input tensor file (required)")
		out      = flag.String("out", "", "write the Chebyshev coefficients to this file")
		nx       = flag.Int("nx", 17, "Chebyshev points along x")
		ny       = flag.Int("ny", 17, "Chebyshev points along y")
		nz       = flag.Int("nz", 17, "Chebyshev points along z")
		xmin     = flag.Float64("xmin", -1, "lower x bound")
		xmax     = flag.Float64("xmax", 1, "upper x bound")
		ymin     = flag.Float64("ymin", -1, "lower y bound")
		ymax     = flag.Float64("ymax", 1, "upper y bound")
		zmin     = flag.Float64("zmin", -1, "lower z bound")
		zmax     = flag.Float64("zmax", 1, "upper z bound")
		backend  = flag.String("backend", "native", "real FFT backend: native, gonum, godsp")
		method   = flag.String("method", "quadratic", "interpolation: quadratic, linear")
		verbose  = flag.Bool("v", false, "print CPU features and plan cache statistics")
		capacity = flag.Int("cache", cheb3d.DefaultCacheCapacity, "plan cache capacity")
	)
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("chebinterp: ")

	if *in == "" {
		flag.Usage()
		os.Exit(2)
	}

	be, err := cheb3d.ParseBackend(*backend)
	if err != nil {
		log.Fatal(err)
	}

	opts, err := interpolationOptions(*method)
	if err != nil {
		log.Fatal(err)
	}

	src, err := tensor.Load(*in)
	if err != nil {
		log.Fatal(err)
	}

	cache := cheb3d.NewCache(cheb3d.CacheOptions{Capacity: *capacity, Backend: be})
	bounds := cheb3d.Bounds{{Min: *xmin, Max: *xmax}, {Min: *ymin, Max: *ymax}, {Min: *zmin, Max: *zmax}}

	f, err := cheb3d.NewWithOptions(*nx, *ny, *nz, cheb3d.Options{Cache: cache, Bounds: bounds})
	if err != nil {
		log.Fatal(err)
	}

	sd := src.Dims()
	grids := [3][]float64{
		uniformGrid(sd.NX, bounds[cheb3d.X]),
		uniformGrid(sd.NY, bounds[cheb3d.Y]),
		uniformGrid(sd.NZ, bounds[cheb3d.Z]),
	}

	if err := f.InterpolateFromWithOptions(src, grids[0], grids[1], grids[2], opts); err != nil {
		log.Fatal(err)
	}

	maxDiff, err := compare(f, src, grids)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("source   %v (%v)\n", sd, opts.Method)
	fmt.Printf("target   %v\n", f)
	fmt.Printf("max|diff| %.6e\n", maxDiff)

	if *out != "" {
		coefs, err := f.Coefficients()
		if err != nil {
			log.Fatal(err)
		}

		if err := coefs.Save(*out); err != nil {
			log.Fatal(err)
		}

		fmt.Printf("coefficients written to %s\n", *out)
	}

	if *verbose {
		fmt.Printf("features %v\n", cheb3d.DetectFeatures())
		fmt.Printf("cache    %v\n", cache.Stats())
	}
}

func interpolationOptions(name string) (cheb3d.InterpolationOptions, error) {
	switch name {
	case "quadratic":
		return cheb3d.InterpolationOptions{Method: cheb3d.Quadratic}, nil
	case "linear":
		return cheb3d.InterpolationOptions{Method: cheb3d.Linear}, nil
	default:
		return cheb3d.InterpolationOptions{}, fmt.Errorf("unknown interpolation method %q", name)
	}
}

// uniformGrid spaces n points evenly over iv. A single point sits at 0.
func uniformGrid(n int, iv cheb3d.Interval) []float64 {
	if n == 1 {
		return []float64{0}
	}

	g := make([]float64, n)
	for i := range g {
		g[i] = iv.Min + iv.Span()*float64(i)/float64(n-1)
	}

	g[n-1] = iv.Max

	return g
}

// compare evaluates f at every source point and returns the largest
// absolute difference from the source samples. Axes on which f has a
// single node are evaluated at 0.
func compare(f *cheb3d.Function, src *tensor.Dense, grids [3][]float64) (float64, error) {
	d := f.Dims()
	coord := func(axis cheb3d.Axis, n int, v float64) float64 {
		if n == 1 {
			return 0
		}

		return math.Max(f.Bounds()[axis].Min, math.Min(f.Bounds()[axis].Max, v))
	}

	var maxDiff float64

	for i, x := range grids[0] {
		for j, y := range grids[1] {
			for k, z := range grids[2] {
				v, err := f.EvalAt(coord(cheb3d.X, d.NX, x), coord(cheb3d.Y, d.NY, y), coord(cheb3d.Z, d.NZ, z))
				if err != nil {
					return 0, err
				}

				maxDiff = math.Max(maxDiff, math.Abs(v-src.At(i, j, k)))
			}
		}
	}

	return maxDiff, nil
}
