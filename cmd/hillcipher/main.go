// Package main provides the hillcipher command line interface: thin glue
// that collects the key, source text, fill letter and optional custom
// alphabet, runs the cipher core and renders the resulting report.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/hillcipher/hill"
)

var (
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11")) // yellow
	resultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12")) // blue
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

func main() {
	cmd := &cli.Command{
		Name:    "hillcipher",
		Usage:   "Cipher and decipher text using the Hill's cipher method",
		Version: "1.0.0",
		Commands: []*cli.Command{
			{
				Name:  "cipher",
				Usage: "Cipher a given source text",
				Flags: []cli.Flag{
					keyFlag("Key to cipher the source text"),
					sourceFlag("Source text to cipher"),
					fillFlag("Source text's fill letter", true),
					namespaceFlag("Custom namespace for the base of the algorithm"),
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runCipher(cmd)
				},
			},
			{
				Name:  "decipher",
				Usage: "Decipher a given source text",
				Flags: []cli.Flag{
					keyFlag("Key to decipher the source text"),
					sourceFlag("Ciphered source text"),
					fillFlag("Known source text's fill letter", false),
					namespaceFlag("Known namespace used to cipher the source text"),
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runDecipher(cmd)
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%s %s\n", errorStyle.Render("error:"), err)
		os.Exit(1)
	}
}

func keyFlag(usage string) cli.Flag {
	return &cli.StringFlag{Name: "key", Aliases: []string{"k"}, Usage: usage, Required: true}
}

func sourceFlag(usage string) cli.Flag {
	return &cli.StringFlag{Name: "source", Aliases: []string{"s"}, Usage: usage, Required: true}
}

func fillFlag(usage string, required bool) cli.Flag {
	return &cli.StringFlag{Name: "fill-letter", Aliases: []string{"f"}, Usage: usage, Required: required}
}

func namespaceFlag(usage string) cli.Flag {
	return &cli.StringFlag{Name: "namespace", Aliases: []string{"n"}, Usage: usage}
}

// collectOptions translates flag values into core options. The fill letter
// flag, when present, must hold exactly one character.
func collectOptions(cmd *cli.Command) ([]hill.Option, error) {
	var opts []hill.Option
	if fill := cmd.String("fill-letter"); fill != "" {
		runes := []rune(fill)
		if len(runes) != 1 {
			return nil, errors.New("the fill letter must be a single character")
		}
		opts = append(opts, hill.WithFillLetter(runes[0]))
	}
	if ns := cmd.String("namespace"); ns != "" {
		opts = append(opts, hill.WithAlphabet(ns))
	}

	return opts, nil
}

func runCipher(cmd *cli.Command) error {
	opts, err := collectOptions(cmd)
	if err != nil {
		return err
	}
	report, err := hill.Cipher(cmd.String("key"), cmd.String("source"), opts...)
	if err != nil {
		return err
	}
	printReport(report)

	return nil
}

func runDecipher(cmd *cli.Command) error {
	opts, err := collectOptions(cmd)
	if err != nil {
		return err
	}
	report, err := hill.Decipher(cmd.String("key"), cmd.String("source"), opts...)
	if err != nil {
		return err
	}
	printReport(report)

	return nil
}

// printReport renders the report the way the tool has always shown it:
// yellow labels, blue result line, "Default namespace" when none was
// supplied.
func printReport(report *hill.Report) {
	namespace := report.Alphabet
	if namespace == "" {
		namespace = "Default namespace"
	}
	fmt.Printf("  %s: %s\n", labelStyle.Render("Used key"), report.UsedKey)
	fmt.Printf("  %s: %s\n", labelStyle.Render("Source text"), report.SourceText)
	fmt.Printf("  %s: %s\n", resultStyle.Render("Result text"), report.ResultText)
	fmt.Printf("  %s: %t\n", labelStyle.Render("Filled?"), report.Filled)
	fmt.Printf("  %s: %s\n", labelStyle.Render("Namespace"), namespace)
}
