//go:build mcp

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/busarovalex/puzzle_helper/cmd"
	"github.com/busarovalex/puzzle_helper/internal/decipher"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// CaesarInput defines the input for the Caesar cipher tool.
type CaesarInput struct {
	Text string `json:"text" jsonschema:"The text to shift through all 25 Caesar cipher rotations"`
}

// CaesarOutput defines the output for the Caesar cipher tool.
type CaesarOutput struct {
	Shifts []CaesarShiftOutput `json:"shifts" jsonschema:"All 25 Caesar cipher shifts of the input text"`
}

// CaesarShiftOutput represents a single shifted result.
type CaesarShiftOutput struct {
	Shift       int    `json:"shift" jsonschema:"The shift amount (1-25)"`
	ShiftedText string `json:"shiftedText" jsonschema:"The text shifted by this amount"`
}

// DecipherInput defines the input for the cryptogram solver tool.
type DecipherInput struct {
	CipherText string `json:"cipherText" jsonschema:"The ciphered phrase to solve, one substitution shared across all words"`
	Limit      int    `json:"limit,omitempty" jsonschema:"Maximum number of solutions to collect (default: 10000)"`
	Reorder    []int  `json:"reorder,omitempty" jsonschema:"1-based permutation of the derived condition order"`
}

// DecipherOutput defines the output for the cryptogram solver tool.
type DecipherOutput struct {
	SolutionCount int      `json:"solutionCount" jsonschema:"Number of distinct full solutions found"`
	Phrases       []string `json:"phrases" jsonschema:"Rendered plaintext candidates, capped for display"`
	Overflowed    bool     `json:"overflowed" jsonschema:"True if the search stopped after reaching the solution limit"`
}

// PuzzleHelperServer holds the shared state for the MCP server.
type PuzzleHelperServer struct {
	vocabulary *decipher.Vocabulary
	index      *decipher.VocabularyIndex
}

func main() {
	var dictionaryFile string
	var port string
	var transport string

	flag.StringVar(&dictionaryFile, "dictionary", "", "path to the dictionary file (required for the decipher tool)")
	flag.StringVar(&port, "port", "8080", "port to listen on for HTTP MCP server")
	flag.StringVar(&transport, "transport", "stdio", "transport type: 'stdio' for Claude Desktop or 'http' for Kubernetes")
	flag.Parse()

	server := &PuzzleHelperServer{}

	if dictionaryFile != "" {
		server.vocabulary = cmd.LoadVocabulary(dictionaryFile)
		server.index = decipher.NewVocabularyIndex(server.vocabulary)
		log.Println("Dictionary loaded successfully")
	} else {
		log.Println("Warning: --dictionary not provided. The decipher tool will not be available.")
	}

	mcpServer := mcp.NewServer(&mcp.Implementation{
		Name:    "puzzle-helper",
		Version: "1.0.0",
	}, nil)

	// Always add Caesar tool (no dependencies)
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "caesar_shift",
		Description: "Performs all 25 Caesar cipher rotations on the input text. Useful for quickly testing all possible Caesar cipher decryptions.",
	}, server.handleCaesar)

	// Add decipher tool if a dictionary is loaded
	if server.vocabulary != nil {
		mcp.AddTool(mcpServer, &mcp.Tool{
			Name:        "decipher_solve",
			Description: "Solves a monoalphabetic substitution cryptogram against a dictionary, enumerating every substitution consistent with the ciphered phrase.",
		}, server.handleDecipher)
	}

	switch transport {
	case "stdio":
		log.Println("Starting puzzle-helper MCP server on stdio...")
		if err := mcpServer.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
			log.Fatalf("Server error: %v", err)
		}

	case "http":
		httpHandler := mcp.NewStreamableHTTPHandler(
			func(r *http.Request) *mcp.Server {
				return mcpServer
			},
			nil,
		)

		http.Handle("/mcp", httpHandler)

		http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("ok"))
		})

		http.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("ready"))
		})

		addr := ":" + port
		log.Printf("Starting puzzle-helper MCP server on http://0.0.0.0%s/mcp\n", addr)
		if err := http.ListenAndServe(addr, nil); err != nil {
			log.Fatalf("Server error: %v", err)
		}

	default:
		log.Fatalf("Unknown transport: %s (use 'stdio' or 'http')", transport)
	}
}

// handleCaesar processes Caesar cipher shift requests.
func (s *PuzzleHelperServer) handleCaesar(ctx context.Context, req *mcp.CallToolRequest, input CaesarInput) (*mcp.CallToolResult, CaesarOutput, error) {
	if input.Text == "" {
		return nil, CaesarOutput{}, fmt.Errorf("text is required")
	}

	results := cmd.PerformCaesarShifts(input.Text)

	output := CaesarOutput{
		Shifts: make([]CaesarShiftOutput, len(results)),
	}
	for i, r := range results {
		output.Shifts[i] = CaesarShiftOutput{
			Shift:       r.Shift,
			ShiftedText: r.ShiftedText,
		}
	}

	var textBuilder strings.Builder
	for _, shift := range output.Shifts {
		textBuilder.WriteString(fmt.Sprintf("%2d: %s\n", shift.Shift, shift.ShiftedText))
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: textBuilder.String()},
		},
	}, output, nil
}

// handleDecipher processes cryptogram solve requests.
func (s *PuzzleHelperServer) handleDecipher(ctx context.Context, req *mcp.CallToolRequest, input DecipherInput) (*mcp.CallToolResult, DecipherOutput, error) {
	if input.CipherText == "" {
		return nil, DecipherOutput{}, fmt.Errorf("cipherText is required")
	}

	cipher, err := decipher.NewCipherText(strings.ToLower(input.CipherText))
	if err != nil {
		return nil, DecipherOutput{}, err
	}

	if len(input.Reorder) > 0 {
		if err := cipher.Reorder(input.Reorder); err != nil {
			return nil, DecipherOutput{}, err
		}
	}

	limit := input.Limit
	if limit <= 0 {
		limit = 10000
	}

	solution, overflowed, err := decipher.Solve(s.vocabulary, s.index, cipher, limit, nil)
	if err != nil {
		return nil, DecipherOutput{}, err
	}

	phrases := cmd.RenderSolution(s.vocabulary, cipher, solution.PartialSolutions(), 50)
	output := DecipherOutput{
		SolutionCount: len(solution.PartialSolutions()),
		Phrases:       phrases,
		Overflowed:    overflowed,
	}

	var textBuilder strings.Builder
	if output.SolutionCount == 0 {
		textBuilder.WriteString("No solutions found.\n")
	} else {
		textBuilder.WriteString(fmt.Sprintf("Found %d solution(s):\n\n", output.SolutionCount))
		for i, phrase := range output.Phrases {
			textBuilder.WriteString(fmt.Sprintf("%d: %s\n", i+1, phrase))
		}
	}
	if output.Overflowed {
		textBuilder.WriteString(fmt.Sprintf("\nwarning: stopped after reaching the limit of %d solutions; more may exist\n", limit))
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: textBuilder.String()},
		},
	}, output, nil
}
