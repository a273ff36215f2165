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

import "github.com/busarovalex/puzzle_helper/internal/decipher"

// LoadVocabulary reads the given dictionary files (or "-" for stdin) through
// feedDictionaryPaths and builds a Vocabulary from the result. Exported so
// long-lived hosts (the MCP and HTTP servers) can build a Vocabulary once at
// startup and share it across requests.
func LoadVocabulary(files ...string) *decipher.Vocabulary {
	words := make([]string, 0, 1<<16)
	feed := make(chan string)
	go feedDictionaryPaths(feed, files...)
	for word := range feed {
		words = append(words, word)
	}
	return decipher.NewVocabulary(words)
}
