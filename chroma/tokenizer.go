// Package chroma provides syntax highlighting using the chroma library.
package chroma

import (
	"errors"

	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/fwojciec/diffselect"
)

// Compile-time interface verification.
var _ diffselect.Tokenizer = (*Tokenizer)(nil)

// StyleFunc maps chroma token types to diffselect styles.
type StyleFunc func(chromalib.TokenType) diffselect.Style

// Tokenizer extracts syntax tokens using chroma.
type Tokenizer struct {
	styleFunc StyleFunc
}

// NewTokenizer creates a new chroma-based tokenizer with the given style
// function. Use StyleFromPalette to derive one from a theme palette.
func NewTokenizer(styleFunc StyleFunc) (*Tokenizer, error) {
	if styleFunc == nil {
		return nil, errors.New("chroma: styleFunc cannot be nil")
	}
	return &Tokenizer{styleFunc: styleFunc}, nil
}

// Tokenize splits source code into syntax-highlighted tokens for the
// given language. Returns nil if the language is not supported, and an
// empty slice for empty source.
func (t *Tokenizer) Tokenize(language, source string) []diffselect.Token {
	if source == "" {
		return []diffselect.Token{}
	}

	lexer := lexers.Get(language)
	if lexer == nil {
		return nil
	}
	lexer = chromalib.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return nil
	}

	var tokens []diffselect.Token
	for tok := iterator(); tok != chromalib.EOF; tok = iterator() {
		tokens = append(tokens, diffselect.Token{
			Text:  tok.Value,
			Style: t.styleFunc(tok.Type),
		})
	}
	return tokens
}

// StyleFromPalette returns a StyleFunc that maps chroma token types to
// the palette's syntax colors.
func StyleFromPalette(p diffselect.Palette) StyleFunc {
	return func(tt chromalib.TokenType) diffselect.Style {
		switch tt {
		// Type keywords (handled separately from other keywords)
		case chromalib.KeywordType:
			return diffselect.Style{Foreground: p.Type, Bold: true}

		// Keywords
		case chromalib.Keyword, chromalib.KeywordConstant, chromalib.KeywordDeclaration,
			chromalib.KeywordNamespace, chromalib.KeywordPseudo, chromalib.KeywordReserved:
			return diffselect.Style{Foreground: p.Keyword, Bold: true}

		// Comments
		case chromalib.Comment, chromalib.CommentHashbang, chromalib.CommentMultiline,
			chromalib.CommentPreproc, chromalib.CommentPreprocFile, chromalib.CommentSingle,
			chromalib.CommentSpecial:
			return diffselect.Style{Foreground: p.Comment}

		// Strings
		case chromalib.String, chromalib.StringAffix, chromalib.StringBacktick, chromalib.StringChar,
			chromalib.StringDelimiter, chromalib.StringDoc, chromalib.StringDouble,
			chromalib.StringEscape, chromalib.StringHeredoc, chromalib.StringInterpol,
			chromalib.StringOther, chromalib.StringRegex, chromalib.StringSingle,
			chromalib.StringSymbol:
			return diffselect.Style{Foreground: p.String}

		// Numbers
		case chromalib.Number, chromalib.NumberBin, chromalib.NumberFloat, chromalib.NumberHex,
			chromalib.NumberInteger, chromalib.NumberIntegerLong, chromalib.NumberOct:
			return diffselect.Style{Foreground: p.Number}

		// Operators
		case chromalib.Operator, chromalib.OperatorWord:
			return diffselect.Style{Foreground: p.Operator}

		// Function names
		case chromalib.NameFunction, chromalib.NameFunctionMagic:
			return diffselect.Style{Foreground: p.Function}

		// Constants
		case chromalib.NameConstant:
			return diffselect.Style{Foreground: p.Constant}

		// Punctuation
		case chromalib.Punctuation:
			return diffselect.Style{Foreground: p.Punctuation}

		default:
			return diffselect.Style{}
		}
	}
}
