// Package irt implements the 3-parameter logistic (3PL) item response
// model and ability (theta) estimation over it.
//
// The 3PL model relates a learner's latent ability theta to the
// probability of answering an item correctly:
//
//	P(theta) = c + (1 - c) / (1 + e^(-a(theta - b)))
//
// where a is the item's discrimination, b its difficulty, and c its
// guessing floor.
package irt

import "math"

// maxExponent bounds the logistic exponent before exponentiation.
// Beyond it the probability has saturated to c or 1 anyway.
const maxExponent = 500

// logEpsilon floors probabilities before taking logs.
const logEpsilon = 1e-10

// ItemParams holds the 3PL parameters of a single item.
type ItemParams struct {
	Discrimination float64 // a > 0
	Difficulty     float64 // b
	Guessing       float64 // c in [0, 1)
}

// Response is a single observed answer: the parameters of the item at
// the time it was answered, and whether the answer was correct.
type Response struct {
	Params  ItemParams
	Correct bool
}

// ProbabilityCorrect returns P(correct | theta, item) under the 3PL
// model, always in [0, 1].
func ProbabilityCorrect(theta float64, p ItemParams) float64 {
	exponent := -p.Discrimination * (theta - p.Difficulty)

	// Saturated tails: far below difficulty only guessing remains,
	// far above the item is a near-certainty.
	if exponent > maxExponent {
		return p.Guessing
	}
	if exponent < -maxExponent {
		return 1.0
	}

	prob := p.Guessing + (1-p.Guessing)/(1+math.Exp(exponent))
	return clamp(prob, 0, 1)
}

// Information returns the Fisher information the item carries about
// theta. Items are most informative when their difficulty sits near
// the learner's ability; the guards return 0 where the response
// probability is so extreme that the variance term degenerates.
func Information(theta float64, p ItemParams) float64 {
	prob := ProbabilityCorrect(theta, p)
	if prob <= 0.001 || prob >= 0.999 {
		return 0
	}

	exponent := -p.Discrimination * (theta - p.Difficulty)
	if math.Abs(exponent) > maxExponent {
		return 0
	}

	expTerm := math.Exp(exponent)
	denom := (1 + expTerm) * (1 + expTerm)
	if denom == 0 {
		return 0
	}

	// P'(theta) = a(1-c)e^(-a(theta-b)) / (1+e^(-a(theta-b)))^2
	pPrime := p.Discrimination * (1 - p.Guessing) * expTerm / denom

	info := pPrime * pPrime / (prob * (1 - prob))
	return math.Max(0, info)
}

// LogLikelihood returns the log-likelihood of the observed responses
// at ability theta, assuming local independence given theta.
func LogLikelihood(theta float64, responses []Response) float64 {
	var ll float64
	for _, r := range responses {
		prob := ProbabilityCorrect(theta, r.Params)
		if r.Correct {
			ll += safeLog(prob)
		} else {
			ll += safeLog(1 - prob)
		}
	}
	return ll
}

// normalPDF evaluates the normal density at x.
func normalPDF(x, mean, std float64) float64 {
	variance := std * std
	coeff := 1.0 / math.Sqrt(2*math.Pi*variance)
	exponent := -((x - mean) * (x - mean)) / (2 * variance)
	return coeff * math.Exp(exponent)
}

// safeLog floors its argument at logEpsilon before taking the log.
func safeLog(x float64) float64 {
	return math.Log(math.Max(x, logEpsilon))
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
