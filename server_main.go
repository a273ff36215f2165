//go:build http

package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/busarovalex/puzzle_helper/cmd"
	"github.com/busarovalex/puzzle_helper/mcp_server"
)

func main() {
	var dictionaryFile string

	flag.StringVar(&dictionaryFile, "dictionary", "", "path to the dictionary file (required for the decipher service)")
	flag.Parse()

	if dictionaryFile == "" {
		fmt.Println("Error: --dictionary flag is required for the MCP server's decipher service")
		os.Exit(1)
	}

	vocabulary := cmd.LoadVocabulary(dictionaryFile)

	http.HandleFunc("/caesar/shift", mcp_server.HandleCaesarShift)

	decipherService := mcp_server.NewDecipherService(vocabulary)
	http.HandleFunc("/decipher/solve", mcp_server.HandleDecipherSolve(decipherService))

	log.Println("Starting MCP server on :8080")
	err := http.ListenAndServe(":8080", nil)
	if err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
