package irt

import "math"

// Estimator computes ability estimates from response sequences.
// It precomputes a fixed quadrature grid at construction; estimation
// itself is pure, bounded computation with no failure modes — numerical
// degeneracy falls back to the caller's current estimate.
type Estimator struct {
	cfg  Config
	grid []float64
}

// NewEstimator creates an Estimator with a quadrature grid of
// cfg.QuadraturePoints evenly spaced over [ThetaMin, ThetaMax].
func NewEstimator(cfg Config) *Estimator {
	n := cfg.QuadraturePoints
	if n < 2 {
		n = 2
	}
	grid := make([]float64, n)
	step := (cfg.ThetaMax - cfg.ThetaMin) / float64(n-1)
	for i := range grid {
		grid[i] = cfg.ThetaMin + float64(i)*step
	}
	return &Estimator{cfg: cfg, grid: grid}
}

// Config returns the estimator's configuration.
func (e *Estimator) Config() Config {
	return e.cfg
}

// EstimateEAP returns the Expected A Posteriori ability estimate: the
// mean of the posterior distribution over the quadrature grid, with a
// normal prior. With no responses it returns current unchanged. A
// degenerate posterior (zero or non-finite mass) also falls back to
// current rather than failing.
func (e *Estimator) EstimateEAP(responses []Response, current float64) float64 {
	if len(responses) == 0 {
		return current
	}

	// Unnormalized log posterior at each grid point.
	logW := make([]float64, len(e.grid))
	maxLogW := math.Inf(-1)
	for i, theta := range e.grid {
		lw := safeLog(normalPDF(theta, e.cfg.PriorMean, e.cfg.PriorStd)) +
			LogLikelihood(theta, responses)
		logW[i] = lw
		if lw > maxLogW {
			maxLogW = lw
		}
	}
	if !isFinite(maxLogW) {
		return current
	}

	// Log-sum-exp stabilization: shift by the max before exponentiating.
	var sumW, sumTW float64
	for i, theta := range e.grid {
		w := math.Exp(logW[i] - maxLogW)
		sumW += w
		sumTW += theta * w
	}
	if sumW <= 0 || !isFinite(sumW) {
		return current
	}

	return clamp(sumTW/sumW, e.cfg.ThetaMin, e.cfg.ThetaMax)
}

// EstimateMLE returns the maximum-likelihood ability estimate via
// Newton-Raphson. Provided as an alternative estimator; EAP is what
// the learner state uses.
func (e *Estimator) EstimateMLE(responses []Response, initial float64) float64 {
	if len(responses) == 0 {
		return initial
	}

	const (
		maxIterations = 20
		tolerance     = 0.001
	)

	theta := initial
	for range maxIterations {
		var first, second float64

		for _, r := range responses {
			a := r.Params.Discrimination
			c := r.Params.Guessing

			exponent := -a * (theta - r.Params.Difficulty)
			if math.Abs(exponent) > maxExponent {
				continue
			}

			prob := ProbabilityCorrect(theta, r.Params)
			pStar := (prob - c) / (1 - c)

			if r.Correct {
				first += a * (1 - pStar)
			} else {
				first -= a * pStar
			}
			second -= a * a * pStar * (1 - pStar)
		}

		if second == 0 {
			break
		}

		delta := -first / second
		theta = clamp(theta+delta, e.cfg.ThetaMin, e.cfg.ThetaMax)

		if math.Abs(delta) < tolerance {
			break
		}
	}

	return theta
}

// UpdateTheta produces a new ability estimate after one fresh
// observation. recentHistory holds prior same-topic responses, oldest
// first; only the most recent HistoryWindow of them participate, plus
// the new observation. With fewer than MinAnswers total observations
// the current theta is returned unchanged (clamped) — single-response
// volatility damping.
func (e *Estimator) UpdateTheta(current float64, params ItemParams, correct bool, recentHistory []Response) float64 {
	window := recentHistory
	if len(window) > e.cfg.HistoryWindow {
		window = window[len(window)-e.cfg.HistoryWindow:]
	}

	responses := make([]Response, 0, len(window)+1)
	responses = append(responses, window...)
	responses = append(responses, Response{Params: params, Correct: correct})

	if len(responses) < e.cfg.MinAnswers {
		return clamp(current, e.cfg.ThetaMin, e.cfg.ThetaMax)
	}

	return e.EstimateEAP(responses, current)
}

func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}
