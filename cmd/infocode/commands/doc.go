// Package commands defines the infocode CLI.
//
// Commands
//
//   - fano      Shannon–Fano and Huffman codes of one text, with metrics
//   - hamming   Hamming(7,4) protection of a text's bytes, with bit flips
//   - analyze   every input of the configuration file, in parallel, with
//     one CSV per input and one workbook sheet per input
//
// # Implementation
//
// The root command loads the YAML configuration and builds the zap logger
// before any subcommand runs; subcommands share them through package
// variables and write tables to the command's output stream.
package commands
