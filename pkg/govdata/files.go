package govdata

// Per-chain output file names under the data root. The query server
// serves these verbatim.
const (
	ProposalsFile   = "proposals.json"
	ProposalsV2File = "proposals_v2.json"
	ValidatorsFile  = "validators.json"
	VotesFile       = "votes.json"
)
