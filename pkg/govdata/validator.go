package govdata

// Validator is an on-chain identity that cast at least one vote.
// The voter field of the first vote seen for an identity wins; later
// votes never overwrite a registered validator.
type Validator struct {
	ValidatorAddress string `json:"validator_address"`          // Canonical identity (the vote's voter field)
	OperatorAddress  string `json:"operator_address,omitempty"` // validatorAddress from the vote export, when present
	Moniker          string `json:"moniker"`
	ChainID          string `json:"chain_id"`
}

// Vote is one (proposal, voter) pair from a proposal's embedded vote
// list. ValidatorAddress matches Validator.ValidatorAddress.
type Vote struct {
	ProposalID       string `json:"proposal_id"`
	ValidatorAddress string `json:"validator_address"`
	VoteOption       string `json:"vote_option"`
	VotingPower      string `json:"voting_power"`
}
