package experiments

import (
	"math"
	"time"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Summary describes a sample of move times.
type Summary struct {
	Count  int
	Mean   time.Duration
	StdDev time.Duration
}

// Interval is a mean with the half-width of its confidence interval.
type Interval struct {
	Mean      float64
	HalfWidth float64
}

func (i Interval) Low() float64  { return i.Mean - i.HalfWidth }
func (i Interval) High() float64 { return i.Mean + i.HalfWidth }

// zVal returns the two-tailed Z-value for a confidence level in percent.
func zVal(confidence float64) float64 {
	dist := distuv.Normal{
		Mu:    0,
		Sigma: 1,
	}
	return dist.Quantile((1 + confidence/100) / 2)
}

// meanStdDev treats samples of fewer than two values as having no spread.
func meanStdDev(x []float64) (mean, std float64) {
	switch len(x) {
	case 0:
		return 0, 0
	case 1:
		return x[0], 0
	}
	return stat.MeanStdDev(x, nil)
}

func summarize(secs []float64) Summary {
	mean, std := meanStdDev(secs)
	return Summary{
		Count:  len(secs),
		Mean:   time.Duration(mean * float64(time.Second)),
		StdDev: time.Duration(std * float64(time.Second)),
	}
}

// meanInterval uses the normal approximation of the sample mean.
func meanInterval(x []float64, confidence float64) Interval {
	mean, std := meanStdDev(x)
	if len(x) < 2 {
		return Interval{Mean: mean}
	}
	return Interval{Mean: mean, HalfWidth: zVal(confidence) * std / math.Sqrt(float64(len(x)))}
}
