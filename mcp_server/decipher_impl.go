package mcp_server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/busarovalex/puzzle_helper/cmd"
	"github.com/busarovalex/puzzle_helper/internal/decipher"
)

const defaultDecipherLimit = 10000
const maxDecipherRenderedPhrases = 50

type decipherServiceImpl struct {
	vocabulary *decipher.Vocabulary
	index      *decipher.VocabularyIndex
}

// NewDecipherService builds a DecipherService over a Vocabulary already
// loaded at server startup, building its VocabularyIndex once here rather
// than loading the dictionary per request.
func NewDecipherService(vocabulary *decipher.Vocabulary) DecipherService {
	return &decipherServiceImpl{
		vocabulary: vocabulary,
		index:      decipher.NewVocabularyIndex(vocabulary),
	}
}

func (s *decipherServiceImpl) Solve(ctx context.Context, req *DecipherRequest) (*DecipherResponse, error) {
	cipher, err := decipher.NewCipherText(req.CipherText)
	if err != nil {
		return nil, err
	}

	if len(req.Reorder) > 0 {
		if err := cipher.Reorder(req.Reorder); err != nil {
			return nil, err
		}
	}

	limit := req.Limit
	if limit <= 0 {
		limit = defaultDecipherLimit
	}

	solution, overflowed, err := decipher.Solve(s.vocabulary, s.index, cipher, limit, nil)
	if err != nil {
		return nil, err
	}

	phrases := cmd.RenderSolution(s.vocabulary, cipher, solution.PartialSolutions(), maxDecipherRenderedPhrases)
	resp := &DecipherResponse{
		SolutionCount: len(solution.PartialSolutions()),
		Phrases:       make([]DecipherPhraseResult, len(phrases)),
		Overflowed:    overflowed,
	}
	for i, phrase := range phrases {
		resp.Phrases[i] = DecipherPhraseResult{Phrase: phrase}
	}
	return resp, nil
}

// HandleDecipherSolve provides an HTTP handler for the cryptogram solve
// operation, mirroring HandleCaesarShift's shape.
func HandleDecipherSolve(service DecipherService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Only POST method is supported", http.StatusMethodNotAllowed)
			return
		}

		var req DecipherRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		resp, err := service.Solve(r.Context(), &req)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}
}
