package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PipelineRuns counts full pipeline executions by result (ok|error).
	PipelineRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "govlens_pipeline_runs_total",
		Help: "Full transform+reclassify runs, labeled by result.",
	}, []string{"result"})

	// ProposalsProcessed counts proposals emitted per chain.
	ProposalsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "govlens_proposals_processed_total",
		Help: "Proposals emitted by the transform pass.",
	}, []string{"chain"})

	// VotesProcessed counts vote records emitted per chain.
	VotesProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "govlens_votes_processed_total",
		Help: "Vote records emitted by the transform pass.",
	}, []string{"chain"})

	// VoteParseFailures counts proposals whose embedded vote JSON did
	// not parse and were emitted with an empty vote list.
	VoteParseFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "govlens_vote_parse_failures_total",
		Help: "Proposals with unparseable embedded vote JSON.",
	}, []string{"chain"})

	// ChainFailures counts chains whose transform aborted.
	ChainFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "govlens_chain_failures_total",
		Help: "Chains whose transform pass aborted before writing.",
	}, []string{"chain"})

	// HTTPRequests counts query-server requests by route and status.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "govlens_http_requests_total",
		Help: "Query server requests by route and status code.",
	}, []string{"route", "status"})
)
