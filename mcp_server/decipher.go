package mcp_server

import "context"

// DecipherRequest defines the input for the cryptogram solve operation.
type DecipherRequest struct {
	CipherText string `json:"cipherText"`
	Limit      int    `json:"limit,omitempty"`
	Reorder    []int  `json:"reorder,omitempty"`
}

// DecipherPhraseResult is one fully-assigned candidate plaintext phrase.
type DecipherPhraseResult struct {
	Phrase string `json:"phrase"`
}

// DecipherResponse defines the output for the cryptogram solve operation.
type DecipherResponse struct {
	SolutionCount int                    `json:"solutionCount"`
	Phrases       []DecipherPhraseResult `json:"phrases"`
	Overflowed    bool                   `json:"overflowed"`
}

// DecipherService defines the interface for cryptogram solving operations,
// backed by a dictionary loaded once at server startup.
type DecipherService interface {
	Solve(ctx context.Context, req *DecipherRequest) (*DecipherResponse, error)
}
