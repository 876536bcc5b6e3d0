package pipeline

import (
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/govlens-network/govlens/pkg/csvio"
	"github.com/govlens-network/govlens/pkg/govdata"
	"github.com/govlens-network/govlens/pkg/metrics"
)

// embeddedVote is one entry of a proposal row's JSON-encoded votes
// column. votingPower is kept raw because exports carry it either as
// a number or a quoted string.
type embeddedVote struct {
	Voter            string          `json:"voter"`
	ValidatorAddress string          `json:"validatorAddress"`
	Moniker          string          `json:"moniker"`
	Option           string          `json:"option"`
	VotingPower      json.RawMessage `json:"votingPower"`
}

const voteOptionPrefix = "VOTE_OPTION_"

// TransformChain runs the first-pass normalization for one chain's
// proposal rows and returns the accumulated dataset. All state lives
// in the returned accumulator.
//
// Per row: category lookup by exact title (Unknown/Unknown on miss),
// embedded vote JSON parse (warn and continue with no votes on
// failure), validator registration keyed by the vote's voter field,
// and an option tally. A parsed vote without an option is an error
// and aborts the chain.
func TransformChain(chainID string, rows []csvio.Record, cats govdata.CategoryIndex, logger *zap.Logger) (*govdata.ChainDataset, error) {
	ds := govdata.NewChainDataset(chainID)

	for _, rec := range rows {
		id := rec["id"]
		title := rec["title"]

		cat, ok := cats[title]
		if !ok {
			cat = govdata.UnknownCategory
		}

		votes, err := parseVotes(rec["votes"])
		if err != nil {
			// Recoverable: the proposal is still emitted, with zero
			// voters and an empty tally.
			logger.Warn("unparseable votes payload, emitting proposal without votes",
				zap.String("chain", chainID),
				zap.String("proposal", id),
				zap.Error(err))
			metrics.VoteParseFailures.WithLabelValues(chainID).Inc()
			votes = nil
		}

		tally := govdata.Tally{}
		for _, v := range votes {
			// No voter identity: drop the vote without poisoning the
			// rest of the proposal's list.
			if v.Voter == "" {
				continue
			}

			ds.RegisterValidator(govdata.Validator{
				ValidatorAddress: v.Voter,
				OperatorAddress:  v.ValidatorAddress,
				Moniker:          v.Moniker,
				ChainID:          chainID,
			})

			if v.Option == "" {
				return nil, fmt.Errorf("chain %s proposal %s: vote by %s has no option", chainID, id, v.Voter)
			}
			tally[tallyKey(v.Option)]++

			ds.Votes = append(ds.Votes, govdata.Vote{
				ProposalID:       id,
				ValidatorAddress: v.Voter,
				VoteOption:       v.Option,
				VotingPower:      rawString(v.VotingPower),
			})
		}

		// The export has no type column; both taxonomy fields come
		// from the enhancement lookup.
		ds.Proposals = append(ds.Proposals, govdata.Proposal{
			ProposalID:       id,
			ChainID:          chainID,
			Title:            title,
			Type:             cat.HighLevelCategory,
			Topic:            cat.TopicSubject,
			Status:           rec["status"],
			SubmitTime:       rec["submit_time"],
			FinalTallyResult: tally,
		})
	}

	metrics.ProposalsProcessed.WithLabelValues(chainID).Add(float64(len(ds.Proposals)))
	metrics.VotesProcessed.WithLabelValues(chainID).Add(float64(len(ds.Votes)))

	return ds, nil
}

func parseVotes(raw string) ([]embeddedVote, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	var votes []embeddedVote
	if err := json.Unmarshal([]byte(raw), &votes); err != nil {
		return nil, fmt.Errorf("decode votes: %w", err)
	}
	return votes, nil
}

// tallyKey normalizes VOTE_OPTION_YES -> yes_count.
func tallyKey(option string) string {
	return strings.ToLower(strings.TrimPrefix(option, voteOptionPrefix)) + "_count"
}

// rawString unquotes a raw JSON scalar, so 42, "42" and 42.5 all come
// out as their plain text form.
func rawString(raw json.RawMessage) string {
	s := strings.TrimSpace(string(raw))
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		var out string
		if err := json.Unmarshal(raw, &out); err == nil {
			return out
		}
	}
	return s
}
