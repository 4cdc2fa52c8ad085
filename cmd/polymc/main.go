// polymc estimates the definite integral of a polynomial over a closed
// interval with rejection-sampling Monte Carlo, and optionally renders a
// chart of the sampling rectangle and the classified samples.
//
// The polynomial, interval and sample count are read interactively:
//
//	$ polymc -runs 10 -workers 4 -chart out.png
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/montanaflynn/stats"

	"github.com/jmlaurent/polymc/integrate"
	"github.com/jmlaurent/polymc/poly"
)

var l = log.New(os.Stderr, "", 0)

func check(err error) {
	if err != nil {
		l.Fatal(err)
	}
}

func main() {

	var (
		chart   = flag.String("chart", "", "write a PNG chart of the run to this path")
		runs    = flag.Int("runs", 1, "number of independent estimator runs")
		workers = flag.Int("workers", 1, "number of sampling goroutines (0 selects NumCPU)")
		seed    = flag.String("seed", "", "seed string for deterministic runs (empty uses process randomness)")
	)
	flag.Parse()

	in := bufio.NewScanner(os.Stdin)

	p := promptPolynomial(in)
	a, b := promptInterval(in)
	n := promptSamples(in)

	opts := []integrate.Option{integrate.WithWorkers(*workers)}
	if *seed != "" {
		opts = append(opts, integrate.WithKey([]byte(*seed)))
	}

	e, err := integrate.NewEstimator(p, a, b, opts...)
	check(err)

	exact, _ := integrate.Exact(p, a, b).Float64()

	fmt.Printf("\nP(x) = %s\n", p)
	fmt.Printf("Interval: [%g, %g], samples: %d\n", a, b, n)
	fmt.Printf("Exact integral: %.6f\n", exact)

	values := make([]float64, *runs)
	var last integrate.Result
	for i := range values {
		last, err = e.Estimate(n)
		check(err)
		values[i] = last.Value
	}

	fmt.Printf("Monte Carlo estimate: %.4f\n", values[len(values)-1])

	if *runs > 1 {
		mean, _ := stats.Mean(values)
		median, _ := stats.Median(values)
		stddev, _ := stats.StandardDeviation(values)
		fmt.Printf("Over %d runs: mean %.4f, median %.4f, stddev %.4f\n", *runs, mean, median, stddev)
	}

	if *chart != "" {
		check(renderChart(*chart, p, last))
		fmt.Printf("Chart written to %s\n", *chart)
	}
}

// promptPolynomial reads the degree and then one coefficient per term,
// constant term first.
func promptPolynomial(in *bufio.Scanner) poly.Polynomial {

	degree := promptInt(in, "Polynomial degree: ", func(d int) error {
		if d < 0 {
			return fmt.Errorf("the degree must be >= 0")
		}
		return nil
	})

	coeffs := make([]float64, degree+1)
	for i := range coeffs {
		coeffs[i] = promptFloat(in, fmt.Sprintf("Coefficient of x^%d: ", i))
	}

	return poly.New(coeffs)
}

// promptInterval reads a then b, re-prompting until b > a.
func promptInterval(in *bufio.Scanner) (a, b float64) {
	for {
		a = promptFloat(in, "Lower bound a: ")
		b = promptFloat(in, "Upper bound b: ")
		if b > a {
			return
		}
		l.Println("b must be strictly greater than a")
	}
}

// promptSamples reads the sample count, re-prompting until it is positive.
func promptSamples(in *bufio.Scanner) int {
	return promptInt(in, "Number of samples: ", func(n int) error {
		if n <= 0 {
			return fmt.Errorf("the number of samples must be strictly positive")
		}
		return nil
	})
}

func promptInt(in *bufio.Scanner, prompt string, validate func(int) error) int {
	for {
		fmt.Print(prompt)
		if !in.Scan() {
			l.Fatal("no more input")
		}
		v, err := strconv.Atoi(strings.TrimSpace(in.Text()))
		if err == nil {
			err = validate(v)
		}
		if err == nil {
			return v
		}
		l.Println(err)
	}
}

func promptFloat(in *bufio.Scanner, prompt string) float64 {
	for {
		fmt.Print(prompt)
		if !in.Scan() {
			l.Fatal("no more input")
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(in.Text()), 64)
		if err == nil {
			return v
		}
		l.Println(err)
	}
}
