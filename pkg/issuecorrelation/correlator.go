package issuecorrelation

// ViolationMetadata describes the minimal metadata required to correlate violations
// of two scans of the same code.
type ViolationMetadata struct {
	RuleID   string
	Filename string
	Line     int
	Column   int
	// Match is the offending class, e.g. "font-light".
	Match string
	// SnippetHash fingerprints the source line; see SnippetHash.
	SnippetHash string
}

// Match pairs a known violation with the new violation correlated to it.
type Match struct {
	Known ViolationMetadata
	New   ViolationMetadata
}

// Correlator accepts slices of new and known violations and computes correlations
// between them. Every known violation matches at most one new violation and vice versa,
// so a class that is repeated after the baseline was taken is still reported.
type Correlator struct {
	NewIssues   []ViolationMetadata
	KnownIssues []ViolationMetadata

	// internal indexes populated by Process()
	knownToNew map[int]int
	newToKnown map[int]int

	processed bool
}

// NewCorrelator constructs a Correlator with the provided slices of new and
// known violations. The correlator is inert until Process() is called.
func NewCorrelator(newIssues, knownIssues []ViolationMetadata) *Correlator {
	return &Correlator{
		NewIssues:   newIssues,
		KnownIssues: knownIssues,
	}
}

// Process computes correlations using three ordered stages. Once a known or
// new violation has been matched in an earlier stage it is excluded from later stages:
// 1) ruleid+filename+match+line+column
// 2) ruleid+filename+match+snippethash
// 3) ruleid+filename+match+line
// Process is idempotent.
func (c *Correlator) Process() {
	if c.processed {
		return
	}
	c.knownToNew = make(map[int]int)
	c.newToKnown = make(map[int]int)

	for _, stage := range []int{1, 2, 3} {
		for ki, k := range c.KnownIssues {
			if _, matched := c.knownToNew[ki]; matched {
				continue
			}
			for ni, n := range c.NewIssues {
				if _, matched := c.newToKnown[ni]; matched {
					continue
				}
				if matchStage(k, n, stage) {
					c.knownToNew[ki] = ni
					c.newToKnown[ni] = ki
					break
				}
			}
		}
	}

	c.processed = true
}

// matchStage applies the specified stage matching rules. RuleID, Filename and Match
// must be present and equal for every stage.
func matchStage(a, b ViolationMetadata, stage int) bool {
	if a.RuleID == "" || a.Filename == "" || a.Match == "" {
		return false
	}
	if a.RuleID != b.RuleID || a.Filename != b.Filename || a.Match != b.Match {
		return false
	}

	switch stage {
	case 1:
		return a.Line == b.Line && a.Column == b.Column
	case 2:
		return a.SnippetHash != "" && a.SnippetHash == b.SnippetHash
	case 3:
		return a.Line == b.Line
	default:
		return false
	}
}

// MatchedNew reports whether the new violation at index i correlates to a known one.
// If Process() has not yet been run it will be invoked.
func (c *Correlator) MatchedNew(i int) bool {
	if !c.processed {
		c.Process()
	}
	_, ok := c.newToKnown[i]
	return ok
}

// UnmatchedKnown returns the subset of known violations that were not correlated
// to any new violation, i.e. the ones that were fixed. If Process() has not yet been run it will be invoked.
func (c *Correlator) UnmatchedKnown() []ViolationMetadata {
	if !c.processed {
		c.Process()
	}

	var out []ViolationMetadata
	for ki, k := range c.KnownIssues {
		if _, ok := c.knownToNew[ki]; !ok {
			out = append(out, k)
		}
	}
	return out
}

// Matches returns the correlated pairs in the order of the known violations.
// If Process() has not been run it will be invoked.
func (c *Correlator) Matches() []Match {
	if !c.processed {
		c.Process()
	}

	var out []Match
	for ki, k := range c.KnownIssues {
		if ni, ok := c.knownToNew[ki]; ok {
			out = append(out, Match{Known: k, New: c.NewIssues[ni]})
		}
	}
	return out
}
