// Package token provides tokenization of object notation text.
//
// [Tokenize] turns bytes into a flat []Token, each carrying a [Pos] that
// can report line and column.  [Quote] and [Unquote] implement the string
// escaping shared by the parser, the encoder and variable serialization.
package token
