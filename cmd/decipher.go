/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/busarovalex/puzzle_helper/internal/decipher"
)

var (
	decipherLimit       int
	decipherReorder     string
	decipherVerbose     bool
	decipherStats       bool
	decipherMaxRendered int
)

// decipherCmd implements the cryptogram constraint solver: given a closed
// vocabulary and a ciphered phrase, it enumerates every substitution
// consistent with the phrase and renders the resulting plaintext candidates.
var decipherCmd = &cobra.Command{
	Use:   "decipher CIPHERTEXT...",
	Short: "Solve a monoalphabetic substitution cryptogram against a dictionary",
	Long: `decipher treats every word of the arguments as one ciphered word of a single
phrase, all sharing one unknown letter-for-letter substitution, and searches
a dictionary for every consistent assignment of dictionary words to ciphered
words.

Example:
   puzzle_helper cryptogram decipher --dictionary words.txt "ol vhh"`,
	Args: cobra.MinimumNArgs(1),
	Run:  runDecipher,
}

func init() {
	decipherCmd.Flags().StringVarP(&dictionaryFile, "dictionary", "d", "", "path to a dictionary file, or - for stdin")
	decipherCmd.Flags().IntVar(&decipherLimit, "limit", 10000, "maximum number of solutions to collect before stopping")
	decipherCmd.Flags().StringVar(&decipherReorder, "reorder", "", "comma-separated 1-based permutation of the derived condition order")
	decipherCmd.Flags().BoolVar(&decipherVerbose, "verbose", false, "log search progress every 10% and print the derived conditions")
	decipherCmd.Flags().BoolVar(&decipherStats, "stats", false, "print a length/word-count histogram of the loaded dictionary")
	decipherCmd.Flags().IntVar(&decipherMaxRendered, "max-rendered", 50, "maximum number of rendered phrases to print")
	decipherCmd.MarkFlagRequired("dictionary")
}

func runDecipher(cmd *cobra.Command, args []string) {
	limit := decipherLimit
	if viper.IsSet("solver.limit") && !cmd.Flags().Changed("limit") {
		limit = viper.GetInt("solver.limit")
	}

	vocabulary := LoadVocabulary(dictionaryFile)
	index := decipher.NewVocabularyIndex(vocabulary)

	if decipherStats {
		fmt.Println(vocabulary)
	}

	phrase := strings.ToLower(strings.Join(args, " "))
	cipher, err := decipher.NewCipherText(phrase)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	reorder := decipherReorder
	if reorder == "" {
		reorder = viper.GetString("solver.reorder")
	}
	if reorder != "" {
		permutation, err := parseReorder(reorder)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if err := cipher.Reorder(permutation); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	var progress decipher.ProgressFunc
	if decipherVerbose {
		fmt.Print(cipher)
		reported := -1
		progress = func(fraction float64) {
			tenth := int(fraction * 10)
			if tenth != reported {
				reported = tenth
				log.Printf("decipher: %d%% of the first condition explored", tenth*10)
			}
		}
	}

	solution, overflowed, err := decipher.Solve(vocabulary, index, cipher, limit, progress)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	partials := solution.PartialSolutions()
	fmt.Printf("%d solution(s) found\n", len(partials))
	phrases := RenderSolution(vocabulary, cipher, partials, decipherMaxRendered)
	if len(phrases) > 0 {
		fmt.Println(FormatPhrases(phrases))
	}
	if overflowed {
		fmt.Fprintf(os.Stderr, "warning: stopped after reaching the limit of %d solutions; more may exist\n", limit)
	}
}

// parseReorder turns a comma-separated string of 1-based indices into an int
// slice, the form decipher.CipherText.Reorder expects.
func parseReorder(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	result := make([]int, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid --reorder value %q: %w", part, err)
		}
		result[i] = n
	}
	return result, nil
}
