/*
Package lexmach provides an adapter to use the lexmachine scanner generator with
the pgen parser driver.

For more information on lexmachine, see e.g.
https://hackthology.com/how-to-tokenize-complex-strings-with-lexmachine.html

Lexmachine has to be initialized by providing keywords and regular expressions.
Package lexmach is opinionated on how to do the setup of lexmachine.
Clients who need more liberty in how to create the scanner should use their
own wrapper code to fit lexmachine into the scanner.Tokenizer interface.

	var literals []string       // The tokens representing literal strings
	var keywords []string       // The keyword tokens
	var tokenIds map[string]int // A map from the token names to their int IDs

	init := func(lexer *lexmachine.Lexer) {
		// lexmach.Skip      ignores the scanned match
		// lexmach.MakeToken wraps a scanned match into a pgen.Token
	}

Token ids have to match the token types of the grammar tables, as the driver
classifies tokens by type and lexeme. Having that, clients use `NewLMAdapter` to wrap
lexmachine into a scanner.Tokenizer. NewLMAdapter will return an error if compiling
the DFA failed.

	LM, err := NewLMAdapter(init, literals, keywords, tokenIds)

A scanner is instantiated for each concrete input sequence.

	scan, err := LM.Scanner("input string to tokenize")

________________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexmach
