package govdata

// Category is the enhancement-CSV classification for one title.
type Category struct {
	HighLevelCategory string
	TopicSubject      string
}

// CategoryIndex maps exact proposal title to its category. Transient:
// built once per run, never persisted.
type CategoryIndex map[string]Category

// UnknownCategory is assigned when a title has no enhancement row.
var UnknownCategory = Category{HighLevelCategory: "Unknown", TopicSubject: "Unknown"}

// ChainDataset accumulates one chain's transformed output. It is the
// explicit per-chain state threaded through the normalizer and
// returned to the writer; nothing in the pipeline mutates state
// outside an instance of this struct.
type ChainDataset struct {
	ChainID    string
	Proposals  []Proposal
	Validators []Validator
	Votes      []Vote

	// byVoter dedups validators by the canonical voter identity while
	// keeping Validators in first-insertion order.
	byVoter map[string]int
}

// NewChainDataset returns an empty accumulator for chainID.
func NewChainDataset(chainID string) *ChainDataset {
	return &ChainDataset{
		ChainID: chainID,
		byVoter: make(map[string]int),
	}
}

// RegisterValidator records a validator the first time its voter
// identity is seen and reports whether it was new.
func (d *ChainDataset) RegisterValidator(v Validator) bool {
	if _, ok := d.byVoter[v.ValidatorAddress]; ok {
		return false
	}
	d.byVoter[v.ValidatorAddress] = len(d.Validators)
	d.Validators = append(d.Validators, v)
	return true
}
