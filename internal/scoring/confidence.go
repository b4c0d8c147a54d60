package scoring

// #region constants

// MinTopScoreForHighConfidence is the top score below which confidence is
// capped low regardless of separation.
const MinTopScoreForHighConfidence = 3

// #endregion

// #region confidence

// ComputeConfidence blends normalized magnitude with separation from the
// runner-up. A business scoring high on two competing industries is not
// confidently classified even though its raw top score is high.
func ComputeConfidence(cands []Candidate) float64 {
	if len(cands) == 0 {
		return 0
	}
	top := float64(cands[0].Score)
	if top <= 0 {
		return 0
	}

	if cands[0].Score < MinTopScoreForHighConfidence {
		c := top / 8
		if c > 0.35 {
			c = 0.35
		}
		return c
	}

	second := 0.0
	if len(cands) > 1 {
		second = float64(cands[1].Score)
	}

	magnitude := top / 10
	if magnitude > 1 {
		magnitude = 1
	}

	den := top
	if den < 1 {
		den = 1
	}
	separation := (top - second) / den
	if separation < 0 {
		separation = 0
	}
	if separation > 1 {
		separation = 1
	}

	conf := 0.55*magnitude + 0.45*separation
	if conf < 0 {
		conf = 0
	}
	if conf > 1 {
		conf = 1
	}
	return conf
}

// #endregion
